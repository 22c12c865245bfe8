package token

import "fmt"

// The keyword classifier hashes the first two and last two bytes of a word;
// that 4-byte window is unique across keywordList. The hash is mixed by a
// multiplicative congruential step, and the seed was picked so that no two
// keywords share one of the table slots.
const (
	keywordTableSize = 512
	keywordTableSeed = 7_484_039
	keywordHashMagic = 887_987_685
)

var (
	keywordKinds [keywordTableSize]Kind
	keywordTexts [keywordTableSize]string
)

func init() {
	for i := range keywordKinds {
		keywordKinds[i] = Ident
	}
	for _, kw := range keywordList {
		idx := keywordSlot(kw.text)
		if keywordTexts[idx] != "" {
			panic(fmt.Errorf("keyword table collision: %q and %q", keywordTexts[idx], kw.text))
		}
		keywordKinds[idx] = kw.kind
		keywordTexts[idx] = kw.text
	}
}

func keywordSlot(word string) uint32 {
	first := uint32(word[0])<<8 | uint32(word[1])
	last := uint32(word[len(word)-2])<<8 | uint32(word[len(word)-1])
	x := (first | last<<16) ^ keywordTableSeed
	return uint32((uint64(x)*keywordHashMagic)>>32) % keywordTableSize
}

// LookupKeyword classifies an identifier-shaped word. Keywords are case-sensitive.
func LookupKeyword(word string) (Kind, bool) {
	if len(word) < 2 {
		return Ident, false
	}
	idx := keywordSlot(word)
	if keywordTexts[idx] != word {
		return Ident, false
	}
	return keywordKinds[idx], true
}
