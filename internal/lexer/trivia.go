package lexer

import (
	"shrink/internal/diag"
	"shrink/internal/token"
)

// skipHashbang records a leading "#!" line as a line comment.
func (lx *Lexer) skipHashbang() {
	if lx.cursor.Peek() != '#' || lx.cursor.PeekAt(1) != '!' {
		return
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: token.TriviaLineComment, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f':
			for {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\v' && b != '\f' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
		case ch == '\n' || ch == '\r':
			lx.cursor.Bump()
			if ch == '\r' {
				lx.cursor.Eat('\n')
			}
			lx.pushTrivia(token.TriviaNewline, start)
		case ch == 0xEF && lx.cursor.PeekAt(1) == 0xBB && lx.cursor.PeekAt(2) == 0xBF:
			// stray BOM in the middle of a file
			lx.cursor.Off += 3
			lx.pushTrivia(token.TriviaSpace, start)
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b == '\n' || b == '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment(start)
		default:
			return
		}
	}
}

func (lx *Lexer) scanBlockComment(start Mark) {
	kind := token.TriviaBlockComment
	// "/**/" is an empty plain comment, not a doc block
	if lx.cursor.PeekAt(2) == '*' && lx.cursor.PeekAt(3) != '/' {
		kind = token.TriviaDocBlock
	}
	lx.cursor.Off += 2
	for {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			break
		}
		if lx.try2('*', '/') {
			break
		}
		lx.cursor.Bump()
	}
	lx.pushTrivia(kind, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}
