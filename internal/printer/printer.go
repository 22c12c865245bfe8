package printer

import (
	"fmt"

	"fortio.org/safecast"

	"shrink/internal/ast"
	"shrink/internal/source"
)

type printer struct {
	b *ast.Builder
	w *writer
	// noIn is set while printing a for-loop head, where a bare "in" would
	// be read as a for-in.
	noIn bool
}

// Print renders prog as compact JavaScript.
func Print(b *ast.Builder, prog *ast.Program) []byte {
	if b == nil || prog == nil {
		return nil
	}
	hint, err := safecast.Conv[int](prog.Span.Len())
	if err != nil {
		panic(fmt.Errorf("printer: span length overflow: %w", err))
	}
	p := printer{b: b, w: newWriter(hint)}
	p.printStmts(prog.Body)
	return p.w.Bytes()
}

func (p *printer) name(id source.StringID) string {
	if id == source.NoStringID || p.b.StringsInterner == nil {
		return ""
	}
	return p.b.StringsInterner.MustLookup(id)
}

func (p *printer) printStmts(ids []ast.StmtID) {
	for _, id := range ids {
		p.printStmt(id)
	}
}

func (p *printer) printBlock(ids []ast.StmtID) {
	p.w.punct('{')
	p.printStmts(ids)
	p.w.punct('}')
}

func (p *printer) printStmt(id ast.StmtID) {
	st := p.b.Stmts.Get(id)
	if st == nil {
		p.w.punct(';')
		return
	}
	switch st.Kind {
	case ast.StmtEmpty:
		p.w.punct(';')
	case ast.StmtDebugger:
		p.w.token("debugger")
		p.w.punct(';')
	case ast.StmtVarDecl:
		p.printVarDecl(id)
		p.w.punct(';')
	case ast.StmtExpr:
		arg, _ := p.b.Stmts.Arg(id)
		if p.startsAmbiguously(arg.Arg) {
			p.w.punct('(')
			p.printExpr(arg.Arg, precLowest)
			p.w.punct(')')
		} else {
			p.printExpr(arg.Arg, precLowest)
		}
		p.w.punct(';')
	case ast.StmtReturn, ast.StmtThrow:
		arg, _ := p.b.Stmts.Arg(id)
		if st.Kind == ast.StmtReturn {
			p.w.token("return")
		} else {
			p.w.token("throw")
		}
		p.printExpr(arg.Arg, precLowest)
		p.w.punct(';')
	case ast.StmtBlock:
		blk, _ := p.b.Stmts.Block(id)
		p.printBlock(blk.Stmts)
	case ast.StmtIf:
		p.printIf(id)
	case ast.StmtWhile:
		w, _ := p.b.Stmts.While(id)
		p.w.token("while")
		p.printParenTest(w.Test)
		p.printStmt(w.Body)
	case ast.StmtDoWhile:
		d, _ := p.b.Stmts.DoWhile(id)
		p.w.token("do")
		p.printStmt(d.Body)
		p.w.token("while")
		p.printParenTest(d.Test)
		p.w.punct(';')
	case ast.StmtFor:
		p.printFor(id)
	case ast.StmtForIn:
		p.printForIn(id)
	case ast.StmtBreak, ast.StmtContinue:
		j, _ := p.b.Stmts.Jump(id)
		if st.Kind == ast.StmtBreak {
			p.w.token("break")
		} else {
			p.w.token("continue")
		}
		p.w.token(p.name(j.Label))
		p.w.punct(';')
	case ast.StmtFunction:
		fn, _ := p.b.Stmts.Function(id)
		p.printFunction(fn)
	case ast.StmtLabeled:
		l, _ := p.b.Stmts.Labeled(id)
		p.w.token(p.name(l.Label))
		p.w.punct(':')
		p.printStmt(l.Body)
	case ast.StmtTry:
		p.printTry(id)
	case ast.StmtSwitch:
		p.printSwitch(id)
	default:
		p.w.punct(';')
	}
}

func (p *printer) printParenTest(test ast.ExprID) {
	p.w.punct('(')
	p.printExpr(test, precLowest)
	p.w.punct(')')
}

func (p *printer) printVarDecl(id ast.StmtID) {
	decl, _ := p.b.Stmts.VarDecl(id)
	p.w.token(decl.Kind.String())
	for i, d := range decl.Decls {
		if i > 0 {
			p.w.punct(',')
		}
		dd := p.b.Decls.Get(d)
		p.w.token(p.name(dd.Name))
		if dd.Init.IsValid() {
			p.w.punct('=')
			p.printExpr(dd.Init, precAssign)
		}
	}
}

func (p *printer) printIf(id ast.StmtID) {
	s, _ := p.b.Stmts.If(id)
	p.w.token("if")
	p.printParenTest(s.Test)
	if s.Alt.IsValid() && p.endsWithOpenIf(s.Cons) {
		p.printBlock([]ast.StmtID{s.Cons})
	} else {
		p.printStmt(s.Cons)
	}
	if s.Alt.IsValid() {
		p.w.token("else")
		p.printStmt(s.Alt)
	}
}

// endsWithOpenIf reports whether an else printed after id would attach to an
// inner if instead of the enclosing one.
func (p *printer) endsWithOpenIf(id ast.StmtID) bool {
	st := p.b.Stmts.Get(id)
	if st == nil {
		return false
	}
	switch st.Kind {
	case ast.StmtIf:
		s, _ := p.b.Stmts.If(id)
		if !s.Alt.IsValid() {
			return true
		}
		return p.endsWithOpenIf(s.Alt)
	case ast.StmtWhile:
		w, _ := p.b.Stmts.While(id)
		return p.endsWithOpenIf(w.Body)
	case ast.StmtFor:
		f, _ := p.b.Stmts.For(id)
		return p.endsWithOpenIf(f.Body)
	case ast.StmtForIn:
		f, _ := p.b.Stmts.ForIn(id)
		return p.endsWithOpenIf(f.Body)
	case ast.StmtLabeled:
		l, _ := p.b.Stmts.Labeled(id)
		return p.endsWithOpenIf(l.Body)
	}
	return false
}

func (p *printer) printFor(id ast.StmtID) {
	f, _ := p.b.Stmts.For(id)
	p.w.token("for")
	p.w.punct('(')
	p.noIn = true
	if f.InitStmt.IsValid() {
		p.printVarDecl(f.InitStmt)
	} else if f.InitExpr.IsValid() {
		p.printExpr(f.InitExpr, precLowest)
	}
	p.noIn = false
	p.w.punct(';')
	if f.Test.IsValid() {
		p.printExpr(f.Test, precLowest)
	}
	p.w.punct(';')
	if f.Update.IsValid() {
		p.printExpr(f.Update, precLowest)
	}
	p.w.punct(')')
	p.printStmt(f.Body)
}

func (p *printer) printForIn(id ast.StmtID) {
	f, _ := p.b.Stmts.ForIn(id)
	p.w.token("for")
	p.w.punct('(')
	p.noIn = true
	if f.LeftStmt.IsValid() {
		p.printVarDecl(f.LeftStmt)
	} else {
		p.printExpr(f.LeftExpr, precCall)
	}
	p.noIn = false
	if f.Of {
		p.w.token("of")
		p.printExpr(f.Right, precAssign)
	} else {
		p.w.token("in")
		p.printExpr(f.Right, precLowest)
	}
	p.w.punct(')')
	p.printStmt(f.Body)
}

func (p *printer) printTry(id ast.StmtID) {
	t, _ := p.b.Stmts.Try(id)
	p.w.token("try")
	p.printBlock(t.Block)
	if t.HasCatch {
		p.w.token("catch")
		if t.Param != source.NoStringID {
			p.w.punct('(')
			p.w.token(p.name(t.Param))
			p.w.punct(')')
		}
		p.printBlock(t.Handler)
	}
	if t.HasFinally {
		p.w.token("finally")
		p.printBlock(t.Finalizer)
	}
}

func (p *printer) printSwitch(id ast.StmtID) {
	sw, _ := p.b.Stmts.Switch(id)
	p.w.token("switch")
	p.printParenTest(sw.Disc)
	p.w.punct('{')
	for _, c := range sw.Cases {
		if c.Test.IsValid() {
			p.w.token("case")
			p.printExpr(c.Test, precLowest)
		} else {
			p.w.token("default")
		}
		p.w.punct(':')
		p.printStmts(c.Body)
	}
	p.w.punct('}')
}

func (p *printer) printFunction(fn *ast.FuncData) {
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()
	if fn.Arrow {
		p.printArrow(fn)
		return
	}
	p.w.token("function")
	p.w.token(p.name(fn.Name))
	p.printParams(fn)
	p.printBlock(fn.Body)
}

func (p *printer) printParams(fn *ast.FuncData) {
	p.w.punct('(')
	for i, param := range fn.Params {
		if i > 0 {
			p.w.punct(',')
		}
		if fn.Rest && i == len(fn.Params)-1 {
			p.w.token("...")
		}
		p.w.token(p.name(param))
	}
	p.w.punct(')')
}

func (p *printer) printArrow(fn *ast.FuncData) {
	if len(fn.Params) == 1 && !fn.Rest {
		p.w.token(p.name(fn.Params[0]))
	} else {
		p.printParams(fn)
	}
	p.w.token("=>")
	if !fn.ExprBody.IsValid() {
		p.printBlock(fn.Body)
		return
	}
	if p.startsWithObject(fn.ExprBody) || p.exprPrec(fn.ExprBody) < precAssign {
		p.w.punct('(')
		p.printExpr(fn.ExprBody, precLowest)
		p.w.punct(')')
		return
	}
	p.printExpr(fn.ExprBody, precAssign)
}
