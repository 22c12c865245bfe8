package parser

import (
	"fmt"
	"strings"
	"testing"

	"shrink/internal/ast"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (*ast.Builder, *ast.Program, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	bag := diag.NewBag(100)
	rep := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseFile(fs, lx, b, Options{Reporter: rep, MaxErrors: 100})
	return b, res.Program, res.Bag
}

func mustParse(t *testing.T, input string) (*ast.Builder, *ast.Program) {
	t.Helper()
	b, prog, bag := parseSource(t, input)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(bag))
	}
	return b, prog
}

func expectCodes(t *testing.T, input string, codes ...diag.Code) {
	t.Helper()
	_, _, bag := parseSource(t, input)
	for _, want := range codes {
		found := false
		for _, d := range bag.Items() {
			if d.Code == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%q: expected %s, got %s", input, want.ID(), diagnosticsSummary(bag))
		}
	}
}

// onlyExpr returns the expression of a single expression statement program.
func onlyExpr(t *testing.T, b *ast.Builder, prog *ast.Program) ast.ExprID {
	t.Helper()
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	arg, ok := b.Stmts.Arg(prog.Body[0])
	if !ok || b.Stmts.Get(prog.Body[0]).Kind != ast.StmtExpr {
		t.Fatalf("expected expression statement, got %v", b.Stmts.Get(prog.Body[0]).Kind)
	}
	return arg.Arg
}
