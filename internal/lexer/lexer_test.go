package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/source"
	"shrink/internal/token"
)

type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func (r *testReporter) messages() []string {
	out := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	rep := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: rep}), rep
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), rep.messages())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v (errors %v)", kind, tok.Kind, rep.messages())
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("expected EOF after %q, got %v(%q)", input, next.Kind, next.Text)
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []string{"foo", "_bar", "$", "$el", "x123", "camelCase", "привет", "x́"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectSingleToken(t, in, token.Ident, in)
		})
	}
}

func TestKeywordsAndContextual(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"var", token.KwVar},
		{"let", token.KwLet},
		{"const", token.KwConst},
		{"while", token.KwWhile},
		{"for", token.KwFor},
		{"debugger", token.KwDebugger},
		{"typeof", token.KwTypeof},
		{"void", token.KwVoid},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"undefined", token.KwUndefined},
		{"instanceof", token.KwInstanceof},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestEscapedKeywordStaysIdent(t *testing.T) {
	expectSingleToken(t, `\u0076ar`, token.Ident, `\u0076ar`)
}

func TestNumbers(t *testing.T) {
	tests := []string{
		"0", "42", "3.14", ".5", "1.", "1e10", "1E-7", "2.5e+3",
		"0x1F", "0XfF", "0o17", "0b1010", "1_000_000", "0x_1",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, rep := makeTestLexer(in)
			tok := lx.Next()
			if in == "0x_1" {
				if len(rep.diagnostics) == 0 {
					t.Fatalf("expected diagnostic for %q", in)
				}
				return
			}
			if tok.Kind != token.NumberLit || tok.Text != in {
				t.Fatalf("got %v(%q), errors %v", tok.Kind, tok.Text, rep.messages())
			}
			if len(rep.diagnostics) != 0 {
				t.Fatalf("unexpected errors: %v", rep.messages())
			}
		})
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"1e", diag.LexBadNumber},
		{"0x", diag.LexBadNumber},
		{"3in", diag.LexBadNumber},
		{"10n", diag.LexUnsupportedSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			collectAllTokens(lx)
			codes := rep.codes()
			if len(codes) != 1 || codes[0] != tt.code {
				t.Fatalf("expected [%v], got %v", tt.code, rep.messages())
			}
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []string{`"abc"`, `'abc'`, `"it's"`, `'say "hi"'`, `"a\"b"`, `'\n\t\\'`, "\"line\\\ncontinued\""}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectSingleToken(t, in, token.StringLit, in)
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeTestLexer("\"abc\nx")
	tokens := collectAllTokens(lx)
	if tokens[0].Kind != token.StringLit {
		t.Fatalf("expected StringLit, got %v", tokens[0].Kind)
	}
	if tokens[1].Kind != token.Ident || !tokens[1].NewlineBefore() {
		t.Fatalf("expected identifier on next line, got %v", tokensToString(tokens))
	}
	if codes := rep.codes(); len(codes) != 1 || codes[0] != diag.LexUnterminatedString {
		t.Fatalf("unexpected diagnostics %v", rep.messages())
	}
}

func TestTemplateLiteralReported(t *testing.T) {
	lx, rep := makeTestLexer("`a${b}` + 1")
	tokens := collectAllTokens(lx)
	if tokens[0].Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tokens[0].Kind)
	}
	if codes := rep.codes(); len(codes) != 1 || codes[0] != diag.LexUnsupportedSyntax {
		t.Fatalf("unexpected diagnostics %v", rep.messages())
	}
}

func TestOperatorsLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
	}{
		{"a >>>= b", []token.Kind{token.Ident, token.UShrAssign, token.Ident}},
		{"a >>> b", []token.Kind{token.Ident, token.UShr, token.Ident}},
		{"a === b !== c", []token.Kind{token.Ident, token.EqEqEq, token.Ident, token.BangEqEq, token.Ident}},
		{"a == b != c", []token.Kind{token.Ident, token.EqEq, token.Ident, token.BangEq, token.Ident}},
		{"x **= 2", []token.Kind{token.Ident, token.StarStarAssign, token.NumberLit}},
		{"a ?? b ??= c", []token.Kind{token.Ident, token.QuestionQuestion, token.Ident, token.QuestionQuestionAssign, token.Ident}},
		{"a?.b", []token.Kind{token.Ident, token.QuestionDot, token.Ident}},
		{"a?.5:b", []token.Kind{token.Ident, token.Question, token.NumberLit, token.Colon, token.Ident}},
		{"i++ + --j", []token.Kind{token.Ident, token.PlusPlus, token.Plus, token.MinusMinus, token.Ident}},
		{"(x) => {}", []token.Kind{token.LParen, token.Ident, token.RParen, token.Arrow, token.LBrace, token.RBrace}},
		{"...xs", []token.Kind{token.Ellipsis, token.Ident}},
		{"a.b[c];", []token.Kind{token.Ident, token.Dot, token.Ident, token.LBracket, token.Ident, token.RBracket, token.Semicolon}},
		{"!~x", []token.Kind{token.Bang, token.Tilde, token.Ident}},
		{"a &&= b ||= c", []token.Kind{token.Ident, token.AndAndAssign, token.Ident, token.OrOrAssign, token.Ident}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.kinds)
		})
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, rep := makeTestLexer("a # b")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != token.Invalid || tokens[1].Text != "#" {
		t.Fatalf("expected Invalid(#), got %v", tokensToString(tokens))
	}
	if codes := rep.codes(); len(codes) != 1 || codes[0] != diag.LexUnknownChar {
		t.Fatalf("unexpected diagnostics %v", rep.messages())
	}
}

func TestTriviaAndDocComments(t *testing.T) {
	input := "#!/usr/bin/env node\n// line\n/** doc */ /**/ /* plain */\nvar x"
	lx, rep := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != token.KwVar {
		t.Fatalf("expected var, got %v", tok.Kind)
	}
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected errors %v", rep.messages())
	}

	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		if tr.Kind != token.TriviaSpace {
			kinds = append(kinds, tr.Kind)
		}
	}
	want := []token.TriviaKind{
		token.TriviaLineComment, token.TriviaNewline,
		token.TriviaLineComment, token.TriviaNewline,
		token.TriviaDocBlock, token.TriviaBlockComment, token.TriviaBlockComment,
		token.TriviaNewline,
	}
	if len(kinds) != len(want) {
		t.Fatalf("trivia kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("trivia %d: got %v, want %v", i, kinds[i], want[i])
		}
	}

	doc, ok := tok.DocComment()
	if !ok || doc.Text != "/** doc */" {
		t.Fatalf("doc comment = %q, %v", doc.Text, ok)
	}
	if !tok.NewlineBefore() {
		t.Fatal("expected newline before var")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, rep := makeTestLexer("x /* never closed")
	tokens := collectAllTokens(lx)
	if len(tokens) != 2 {
		t.Fatalf("unexpected tokens %v", tokensToString(tokens))
	}
	if codes := rep.codes(); len(codes) != 1 || codes[0] != diag.LexUnterminatedBlockComment {
		t.Fatalf("unexpected diagnostics %v", rep.messages())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("next = %q", n.Text)
	}
	for range 3 {
		if n := lx.Next(); n.Kind != token.EOF {
			t.Fatalf("expected sticky EOF, got %v", n.Kind)
		}
	}
}

func TestSpansCoverText(t *testing.T) {
	input := "let answer = 0x2A; // trailing"
	lx, _ := makeTestLexer(input)
	for _, tok := range collectAllTokens(lx) {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("%v: span text %q != token text %q", tok.Kind, got, tok.Text)
		}
	}
}
