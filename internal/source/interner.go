package source

// StringID is a handle to an interned string. NoStringID maps to "".
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates identifier names and literal texts for one tree.
type Interner struct {
	strs  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		strs:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the ID for s, adding it on first sight.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	// own copy so the lexer's source buffer can be released
	cpy := string([]byte(s))
	id := StringID(len(in.strs))
	in.strs = append(in.strs, cpy)
	in.index[cpy] = id
	return id
}

// Find returns the ID of s without interning it.
func (in *Interner) Find(s string) (StringID, bool) {
	id, ok := in.index[s]
	return id, ok
}

// Lookup returns the string for id.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) >= len(in.strs) {
		return "", false
	}
	return in.strs[id], true
}

// MustLookup is Lookup that panics on an unknown id.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Len counts interned strings including the empty string.
func (in *Interner) Len() int {
	return len(in.strs)
}
