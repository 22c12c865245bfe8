package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"shrink/internal/diag"
	"shrink/internal/source"
)

func projectFile(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSetWithBase("/home/user/project")
	id := fs.Add("/home/user/project/src/test.js", []byte(content), 0)
	return fs, id
}

func TestPathModes(t *testing.T) {
	fs, fileID := projectFile(t, "let x = \"unterminated string\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.js:1:9: ERROR LEX1002: Unterminated string literal\n"},
		{"relative", PathModeRelative, "src/test.js:1:9: ERROR LEX1002: Unterminated string literal\n"},
		{"basename", PathModeBasename, "test.js:1:9: ERROR LEX1002: Unterminated string literal\n"},
		{"auto", PathModeAuto, "src/test.js:1:9: ERROR LEX1002: Unterminated string literal\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Errorf("header mismatch\nwant prefix: %q\ngot:         %q", tt.want, buf.String())
			}
		})
	}
}

func TestPrettyUnderline(t *testing.T) {
	fs, fileID := projectFile(t, "let x = \"unterminated string\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28}, "Unterminated string literal"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[1] != " 1 | let x = \"unterminated string" {
		t.Errorf("source line = %q", lines[1])
	}
	want := "   | " + strings.Repeat(" ", 8) + "^" + strings.Repeat("~", 19)
	if lines[2] != want {
		t.Errorf("underline\nwant %q\ngot  %q", want, lines[2])
	}
}

func TestPrettyUnderlineWideRunes(t *testing.T) {
	fs, fileID := projectFile(t, "s = \"日本\" + y;\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken,
		source.Span{File: fileID, Start: 15, End: 16}, "unexpected y"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "   | " + strings.Repeat(" ", 13) + "^\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Errorf("caret not aligned under wide runes:\n%s", buf.String())
	}
}

func TestPrettyKeepsTabsInPadding(t *testing.T) {
	fs, fileID := projectFile(t, "\tfoo(bar\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.SynUnclosedParen,
		source.Span{File: fileID, Start: 5, End: 8}, "expected ')'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "   | \t    ^~~\n") {
		t.Errorf("expected tab-preserving padding:\n%q", buf.String())
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	src := "var a = 1;\nvar b = 2;\nconst c;\n"
	fs, fileID := projectFile(t, src)
	d := diag.New(diag.SevError, diag.SynConstWithoutInit,
		source.Span{File: fileID, Start: 28, End: 29}, "missing initializer").
		WithNote(source.Span{File: fileID, Start: 22, End: 27}, "declared const here")
	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1, ShowNotes: true})
	out := buf.String()

	for _, want := range []string{
		"test.js:3:7: ERROR SYN2010: missing initializer\n",
		" 2 | var b = 2;\n",
		" 3 | const c;\n",
		"  note: test.js:3:1: declared const here\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "var a") {
		t.Errorf("context should stop one line above:\n%s", out)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed without ShowNotes:\n%s", buf.String())
	}
}

func TestPrettyColor(t *testing.T) {
	fs, fileID := projectFile(t, "x\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "odd"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output contains escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escapes: %q", colored.String())
	}
}

func TestPrettyWithoutLocation(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Span{File: 3}, "cannot read missing.js"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if got, want := buf.String(), "ERROR IO4001: cannot read missing.js\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParsePathMode(t *testing.T) {
	for in, want := range map[string]PathMode{
		"":         PathModeAuto,
		"auto":     PathModeAuto,
		"ABS":      PathModeAbsolute,
		"relative": PathModeRelative,
		"basename": PathModeBasename,
	} {
		got, err := ParsePathMode(in)
		if err != nil || got != want {
			t.Errorf("ParsePathMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParsePathMode("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
