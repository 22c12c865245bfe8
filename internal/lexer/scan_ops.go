package lexer

import (
	"shrink/internal/diag"
	"shrink/internal/token"
)

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	if lx.try4('>', '>', '>', '=') {
		return lx.emit(token.UShrAssign, start)
	}

	switch {
	case lx.try3('.', '.', '.'):
		return lx.emit(token.Ellipsis, start)
	case lx.try3('=', '=', '='):
		return lx.emit(token.EqEqEq, start)
	case lx.try3('!', '=', '='):
		return lx.emit(token.BangEqEq, start)
	case lx.try3('*', '*', '='):
		return lx.emit(token.StarStarAssign, start)
	case lx.try3('<', '<', '='):
		return lx.emit(token.ShlAssign, start)
	case lx.try3('>', '>', '='):
		return lx.emit(token.ShrAssign, start)
	case lx.try3('>', '>', '>'):
		return lx.emit(token.UShr, start)
	case lx.try3('&', '&', '='):
		return lx.emit(token.AndAndAssign, start)
	case lx.try3('|', '|', '='):
		return lx.emit(token.OrOrAssign, start)
	case lx.try3('?', '?', '='):
		return lx.emit(token.QuestionQuestionAssign, start)
	}

	// "a?.5:b" is a conditional, not optional chaining
	if lx.cursor.Peek() == '?' && lx.cursor.PeekAt(1) == '.' && !isDec(lx.cursor.PeekAt(2)) {
		lx.cursor.Off += 2
		return lx.emit(token.QuestionDot, start)
	}

	switch {
	case lx.try2('=', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start)
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2('<', '<'):
		return lx.emit(token.Shl, start)
	case lx.try2('>', '>'):
		return lx.emit(token.Shr, start)
	case lx.try2('*', '*'):
		return lx.emit(token.StarStar, start)
	case lx.try2('+', '+'):
		return lx.emit(token.PlusPlus, start)
	case lx.try2('-', '-'):
		return lx.emit(token.MinusMinus, start)
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start)
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start)
	case lx.try2('?', '?'):
		return lx.emit(token.QuestionQuestion, start)
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start)
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start)
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start)
	case lx.try2('%', '='):
		return lx.emit(token.PercentAssign, start)
	case lx.try2('&', '='):
		return lx.emit(token.AmpAssign, start)
	case lx.try2('|', '='):
		return lx.emit(token.PipeAssign, start)
	case lx.try2('^', '='):
		return lx.emit(token.CaretAssign, start)
	}

	ch := lx.cursor.Bump()
	kind := token.Invalid
	switch ch {
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '&':
		kind = token.Amp
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '!':
		kind = token.Bang
	case '~':
		kind = token.Tilde
	case '=':
		kind = token.Assign
	default:
		lx.errLex(diag.LexUnknownChar, lx.cursor.SpanFrom(start), "unexpected character")
	}
	return lx.emit(kind, start)
}
