package printer

// writer accumulates output and inserts the few spaces needed to keep
// adjacent tokens apart.
type writer struct {
	buf []byte
}

func newWriter(capacity int) *writer {
	return &writer{buf: make([]byte, 0, capacity)}
}

func (w *writer) Bytes() []byte {
	return w.buf
}

func (w *writer) last() byte {
	if len(w.buf) == 0 {
		return 0
	}
	return w.buf[len(w.buf)-1]
}

// token writes s, separating it from the previous token when the two would
// otherwise lex as one.
func (w *writer) token(s string) {
	if s == "" {
		return
	}
	if needsSpace(w.last(), s[0]) {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, s...)
}

// punct writes punctuation that can never merge with its neighbor.
func (w *writer) punct(b byte) {
	w.buf = append(w.buf, b)
}

func needsSpace(prev, next byte) bool {
	switch {
	case prev == 0:
		return false
	case isWordByte(prev) && isWordByte(next):
		return true
	case prev == '+' && next == '+', prev == '-' && next == '-':
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
		c == '_' || c == '$' || c == '\\' || c >= 0x80
}
