package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"shrink/internal/ast"
	"shrink/internal/source"
)

// CheckSpans verifies span sanity on a parsed or rewritten program:
// 1) prog.Span points at sf and ends within its content
// 2) every non-synthetic node span is contained in prog.Span
// 3) prog.Span covers the union of top-level statement spans
func CheckSpans(b *ast.Builder, prog *ast.Program, sf *source.File) error {
	if b == nil || prog == nil || sf == nil {
		return fmt.Errorf("nil builder, program or file")
	}
	if prog.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Span.End > lenContent {
		return fmt.Errorf("program span end beyond content: %d > %d", prog.Span.End, lenContent)
	}

	var firstErr error
	ast.Walk(b, prog, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		sp, what := nodeSpan(b, n)
		if sp.Synthetic() {
			return true
		}
		if sp.End < sp.Start {
			firstErr = fmt.Errorf("%s has inverted span %v", what, sp)
			return false
		}
		if !prog.Span.Contains(sp) {
			firstErr = fmt.Errorf("%s span %v is outside program span %v", what, sp, prog.Span)
			return false
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}

	union := source.NoSpan
	for _, id := range prog.Body {
		union = union.Cover(b.Stmts.Get(id).Span)
	}
	if !union.Synthetic() && !prog.Span.Contains(union) {
		return fmt.Errorf("program span %v does not cover union of statements %v", prog.Span, union)
	}
	return nil
}

// CheckOwnership verifies that every node reachable from prog is reached
// exactly once and that no reachable slot was left invalid by a move.
func CheckOwnership(b *ast.Builder, prog *ast.Program) error {
	if b == nil || prog == nil {
		return fmt.Errorf("nil builder or program")
	}
	stmts := make(map[ast.StmtID]struct{})
	exprs := make(map[ast.ExprID]struct{})
	decls := make(map[ast.DeclaratorID]struct{})

	var firstErr error
	ast.Walk(b, prog, func(n ast.Node) bool {
		if firstErr != nil {
			return false
		}
		switch {
		case n.Stmt.IsValid():
			if _, dup := stmts[n.Stmt]; dup {
				firstErr = fmt.Errorf("statement %d is referenced twice", n.Stmt)
				return false
			}
			stmts[n.Stmt] = struct{}{}
			st := b.Stmts.Get(n.Stmt)
			if st == nil || st.Kind == ast.StmtInvalid {
				firstErr = fmt.Errorf("statement %d is invalid", n.Stmt)
				return false
			}
		case n.Expr.IsValid():
			if _, dup := exprs[n.Expr]; dup {
				firstErr = fmt.Errorf("expression %d is referenced twice", n.Expr)
				return false
			}
			exprs[n.Expr] = struct{}{}
			ex := b.Exprs.Get(n.Expr)
			if ex == nil || ex.Kind == ast.ExprInvalid {
				firstErr = fmt.Errorf("expression %d is invalid", n.Expr)
				return false
			}
		case n.Decl.IsValid():
			if _, dup := decls[n.Decl]; dup {
				firstErr = fmt.Errorf("declarator %d is referenced twice", n.Decl)
				return false
			}
			decls[n.Decl] = struct{}{}
			if b.Decls.Get(n.Decl) == nil {
				firstErr = fmt.Errorf("declarator %d does not exist", n.Decl)
				return false
			}
		}
		return true
	})
	return firstErr
}

func nodeSpan(b *ast.Builder, n ast.Node) (source.Span, string) {
	switch {
	case n.Stmt.IsValid():
		if st := b.Stmts.Get(n.Stmt); st != nil {
			return st.Span, fmt.Sprintf("statement %d", n.Stmt)
		}
	case n.Expr.IsValid():
		if ex := b.Exprs.Get(n.Expr); ex != nil {
			return ex.Span, fmt.Sprintf("expression %d", n.Expr)
		}
	case n.Decl.IsValid():
		if d := b.Decls.Get(n.Decl); d != nil {
			return d.Span, fmt.Sprintf("declarator %d", n.Decl)
		}
	}
	return source.NoSpan, "node"
}
