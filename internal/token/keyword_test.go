package token

import "testing"

func TestLookupKeyword_AllKeywords(t *testing.T) {
	for _, kw := range keywordList {
		got, ok := LookupKeyword(kw.text)
		if !ok || got != kw.kind {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want %v", kw.text, got, ok, kw.kind)
		}
		if got.String() != kw.text {
			t.Fatalf("Kind(%d).String() = %q, want %q", got, got.String(), kw.text)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"x", "", "While", "VAR", // case matters
		"whale", "voids", "tyof", "undefine", // same prefix/suffix windows
		"identifier", "toString", "$", "_in",
	}
	for _, word := range notKw {
		if k, ok := LookupKeyword(word); ok || k != Ident {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want Ident", word, k, ok)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !KwVar.IsReserved() || KwVar.IsContextual() {
		t.Fatalf("var must be reserved")
	}
	if !KwUndefined.IsContextual() || !KwOf.IsContextual() || !KwLet.IsContextual() {
		t.Fatalf("undefined, of and let must be contextual")
	}
	if Ident.IsKeyword() || Plus.IsKeyword() {
		t.Fatalf("non-keywords classified as keywords")
	}
	if EqEqEq.String() != "===" {
		t.Fatalf("EqEqEq.String() = %q", EqEqEq.String())
	}
}

func TestTokenNewlineBefore(t *testing.T) {
	tok := Token{Kind: Ident, Leading: []Trivia{{Kind: TriviaSpace, Text: " "}}}
	if tok.NewlineBefore() {
		t.Fatalf("space is not a newline")
	}
	tok.Leading = append(tok.Leading, Trivia{Kind: TriviaBlockComment, Text: "/* a\nb */"})
	if !tok.NewlineBefore() {
		t.Fatalf("multi-line block comment counts as a newline")
	}
}
