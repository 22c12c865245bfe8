package compress

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/parser"
	"shrink/internal/printer"
	"shrink/internal/source"
	"shrink/internal/testkit"
)

type compressed struct {
	b     *ast.Builder
	prog  *ast.Program
	file  *source.File
	stats Stats
	out   string
}

func parseJS(t *testing.T, src string) (*ast.Builder, *ast.Program, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("case.js", []byte(src)))
	bag := diag.NewBag(50)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: rep, MaxErrors: 50})
	require.False(t, bag.HasErrors(), "parse %q: %v", src, bag.Items())
	return b, res.Program, file
}

func run(t *testing.T, src string, opts Options) compressed {
	t.Helper()
	b, prog, file := parseJS(t, src)
	c := New(b, opts)
	c.Build(prog)
	require.NoError(t, testkit.CheckOwnership(b, prog))
	require.NoError(t, testkit.CheckSpans(b, prog, file))
	return compressed{
		b:     b,
		prog:  prog,
		file:  file,
		stats: c.Stats(),
		out:   string(printer.Print(b, prog)),
	}
}

func minify(t *testing.T, src string) string {
	t.Helper()
	return run(t, src, DefaultOptions()).out
}

func printJS(t *testing.T, src string) string {
	t.Helper()
	b, prog, _ := parseJS(t, src)
	return string(printer.Print(b, prog))
}

func without(apply func(*Options)) Options {
	opts := DefaultOptions()
	apply(&opts)
	return opts
}
