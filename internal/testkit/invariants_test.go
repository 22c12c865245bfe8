package testkit

import (
	"testing"

	"shrink/internal/ast"
	"shrink/internal/source"
)

func TestCheckOwnershipDetectsSharedExpression(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	x := b.Exprs.NewIdent(source.NoSpan, b.Intern("x"))
	first := b.Stmts.NewExpr(source.NoSpan, x)
	second := b.Stmts.NewExpr(source.NoSpan, x)
	prog := &ast.Program{Body: []ast.StmtID{first}}

	if err := CheckOwnership(b, prog); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prog.Body = append(prog.Body, second)
	if err := CheckOwnership(b, prog); err == nil {
		t.Fatal("expected shared expression to be reported")
	}
}

func TestCheckOwnershipDetectsMovedSlot(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	x := b.Exprs.NewIdent(source.NoSpan, b.Intern("x"))
	y := b.Exprs.NewIdent(source.NoSpan, b.Intern("y"))
	stmt := b.Stmts.NewExpr(source.NoSpan, x)
	prog := &ast.Program{Body: []ast.StmtID{stmt}}

	b.Exprs.Replace(y, x)
	if err := CheckOwnership(b, prog); err == nil {
		t.Fatal("expected invalid slot to be reported")
	}
}

func TestCheckSpans(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.js", []byte("x;"))
	sf := fs.Get(id)

	b := ast.NewBuilder(ast.Hints{})
	x := b.Exprs.NewIdent(source.Span{File: id, Start: 0, End: 1}, b.Intern("x"))
	stmt := b.Stmts.NewExpr(source.Span{File: id, Start: 0, End: 2}, x)
	prog := &ast.Program{File: id, Span: source.Span{File: id, Start: 0, End: 2}, Body: []ast.StmtID{stmt}}
	if err := CheckSpans(b, prog, sf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.Stmts.Get(stmt).Span = source.Span{File: id, Start: 0, End: 5}
	if err := CheckSpans(b, prog, sf); err == nil {
		t.Fatal("expected out-of-range span to be reported")
	}
}
