package lexer

import (
	"shrink/internal/diag"
	"shrink/internal/token"
)

// scanNumber handles decimal, hex (0x), octal (0o), binary (0b) and float
// literals including exponents and '_' separators.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			return lx.scanRadix(start, isHex, "hexadecimal")
		case 'o', 'O':
			return lx.scanRadix(start, isOct, "octal")
		case 'b', 'B':
			return lx.scanRadix(start, isBin, "binary")
		}
	}

	lx.scanDigits(isDec)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		lx.scanDigits(isDec)
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor.Reset(mark)
			lx.cursor.Bump()
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing exponent digits")
			return lx.emit(token.NumberLit, start)
		}
		lx.scanDigits(isDec)
	}
	return lx.finishNumber(start)
}

func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool, name string) token.Token {
	lx.cursor.Off += 2
	if !digit(lx.cursor.Peek()) {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "expected "+name+" digits")
		return lx.emit(token.NumberLit, start)
	}
	lx.scanDigits(digit)
	return lx.finishNumber(start)
}

// scanDigits consumes digits with single '_' separators between them.
func (lx *Lexer) scanDigits(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '_' && digit(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

func (lx *Lexer) finishNumber(start Mark) token.Token {
	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		lx.errLex(diag.LexUnsupportedSyntax, lx.cursor.SpanFrom(start), "BigInt literals are not supported")
		return lx.emit(token.Invalid, start)
	}
	if b := lx.cursor.Peek(); isIdentStartByte(b) || isDec(b) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "identifier starts immediately after numeric literal")
	}
	return lx.emit(token.NumberLit, start)
}
