package token

import (
	"strings"

	"shrink/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// NewlineBefore reports whether a line terminator separates the token from the previous one.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		switch tr.Kind {
		case TriviaNewline:
			return true
		case TriviaBlockComment, TriviaDocBlock:
			if strings.Contains(tr.Text, "\n") {
				return true
			}
		}
	}
	return false
}

// DocComment returns the last /** */ comment in the leading trivia, if any.
func (t Token) DocComment() (Trivia, bool) {
	for i := len(t.Leading) - 1; i >= 0; i-- {
		if t.Leading[i].Kind == TriviaDocBlock {
			return t.Leading[i], true
		}
	}
	return Trivia{}, false
}

// IsLiteral reports whether the token is a numeric, string, boolean or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdentName reports whether the token may be used as a binding or reference name.
func (t Token) IsIdentName() bool {
	return t.Kind == Ident || t.Kind.IsContextual()
}

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool {
	return t.Kind >= Assign && t.Kind <= QuestionQuestionAssign
}
