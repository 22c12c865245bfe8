package lexer

import (
	"unicode"
	"unicode/utf8"

	"shrink/internal/diag"
	"shrink/internal/token"
)

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	escaped := false
	first := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isIdentContinueByte(b):
			lx.cursor.Bump()
		case b == '\\':
			escaped = true
			lx.cursor.Bump()
			lx.scanUnicodeEscape(start)
		case b >= utf8RuneSelf:
			r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
			if !isIdentRune(r, first) {
				if first {
					lx.cursor.Off += uint32(size)
					lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character")
					return lx.emit(token.Invalid, start)
				}
				return lx.finishIdent(start, escaped)
			}
			lx.cursor.Off += uint32(size)
		default:
			return lx.finishIdent(start, escaped)
		}
		first = false
	}
	return lx.finishIdent(start, escaped)
}

func (lx *Lexer) finishIdent(start Mark, escaped bool) token.Token {
	tok := lx.emit(token.Ident, start)
	// escaped keywords stay identifiers
	if escaped {
		return tok
	}
	if kind, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}

// scanUnicodeEscape consumes "u0041" or "u{41}" after a backslash.
func (lx *Lexer) scanUnicodeEscape(start Mark) {
	if !lx.cursor.Eat('u') {
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "invalid escape in identifier")
		return
	}
	if lx.cursor.Eat('{') {
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if !lx.cursor.Eat('}') {
			lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "invalid unicode escape")
		}
		return
	}
	for range 4 {
		if !isHex(lx.cursor.Peek()) {
			lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "invalid unicode escape")
			return
		}
		lx.cursor.Bump()
	}
}

func isIdentRune(r rune, first bool) bool {
	if r == utf8.RuneError {
		return false
	}
	if unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) {
		return true
	}
	if first {
		return false
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc) || r == '\u200c' || r == '\u200d'
}
