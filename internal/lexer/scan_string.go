package lexer

import (
	"shrink/internal/diag"
	"shrink/internal/token"
)

// scanString consumes a quoted literal. Token.Text keeps the raw source
// including quotes; the parser decodes escapes.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
			return lx.emit(token.StringLit, start)
		}
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\n', '\r':
			lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			if next := lx.cursor.Bump(); next == '\r' {
				lx.cursor.Eat('\n')
			}
		default:
			lx.cursor.Bump()
		}
	}
}

// scanTemplate skips a template literal and reports it.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '`' {
			break
		}
	}
	lx.errLex(diag.LexUnsupportedSyntax, lx.cursor.SpanFrom(start), "template literals are not supported")
	return lx.emit(token.Invalid, start)
}
