package lexer

const utf8RuneSelf = 0x80

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

// try2 consumes a and b when both are next.
func (lx *Lexer) try2(a, b byte) bool {
	if lx.cursor.Peek() == a && lx.cursor.PeekAt(1) == b {
		lx.cursor.Off += 2
		return true
	}
	return false
}

func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.Peek() == a && lx.cursor.PeekAt(1) == b && lx.cursor.PeekAt(2) == c {
		lx.cursor.Off += 3
		return true
	}
	return false
}

func (lx *Lexer) try4(a, b, c, d byte) bool {
	if lx.cursor.Peek() == a && lx.cursor.PeekAt(1) == b &&
		lx.cursor.PeekAt(2) == c && lx.cursor.PeekAt(3) == d {
		lx.cursor.Off += 4
		return true
	}
	return false
}
