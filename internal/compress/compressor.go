package compress

import (
	"shrink/internal/ast"
)

// Compressor runs the rewrite pass over one tree. It is single use per tree
// and must not be shared between goroutines.
type Compressor struct {
	b     *ast.Builder
	opts  Options
	stats Stats
}

func New(b *ast.Builder, opts Options) *Compressor {
	return &Compressor{b: b, opts: opts}
}

// Build rewrites prog in place.
func (c *Compressor) Build(prog *ast.Program) {
	if prog == nil {
		return
	}
	prog.Body = c.visitStatements(prog.Body)
}

// Stats reports how often each rule fired so far.
func (c *Compressor) Stats() Stats {
	return c.stats
}

// visitStatements applies the list rules once, then visits every survivor.
func (c *Compressor) visitStatements(stmts []ast.StmtID) []ast.StmtID {
	stmts = c.dropStatements(stmts)
	if c.opts.JoinVars {
		stmts = c.joinVars(stmts)
	}
	for _, id := range stmts {
		c.visitStatement(id)
	}
	return stmts
}

func (c *Compressor) visitStatement(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	c.compressWhile(id)

	st := c.b.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtVarDecl:
		c.visitVarDecl(id)
	case ast.StmtWhile:
		w, _ := c.b.Stmts.While(id)
		c.visitExpression(w.Test)
		c.visitStatement(w.Body)
	case ast.StmtFor:
		f, _ := c.b.Stmts.For(id)
		c.visitStatement(f.InitStmt)
		c.visitExpression(f.InitExpr)
		c.visitExpression(f.Test)
		c.visitExpression(f.Update)
		c.visitStatement(f.Body)
	case ast.StmtForIn:
		f, _ := c.b.Stmts.ForIn(id)
		c.visitStatement(f.LeftStmt)
		c.visitTarget(f.LeftExpr)
		c.visitExpression(f.Right)
		c.visitStatement(f.Body)
	case ast.StmtExpr, ast.StmtReturn, ast.StmtThrow:
		arg, _ := c.b.Stmts.Arg(id)
		c.visitExpression(arg.Arg)
	case ast.StmtBlock:
		blk, _ := c.b.Stmts.Block(id)
		blk.Stmts = c.visitStatements(blk.Stmts)
	case ast.StmtIf:
		s, _ := c.b.Stmts.If(id)
		c.visitExpression(s.Test)
		c.visitStatement(s.Cons)
		c.visitStatement(s.Alt)
	case ast.StmtDoWhile:
		d, _ := c.b.Stmts.DoWhile(id)
		c.visitStatement(d.Body)
		c.visitExpression(d.Test)
	case ast.StmtFunction:
		fn, _ := c.b.Stmts.Function(id)
		c.visitFunction(fn)
	case ast.StmtLabeled:
		l, _ := c.b.Stmts.Labeled(id)
		c.visitStatement(l.Body)
	case ast.StmtTry:
		t, _ := c.b.Stmts.Try(id)
		t.Block = c.visitStatements(t.Block)
		if t.HasCatch {
			t.Handler = c.visitStatements(t.Handler)
		}
		if t.HasFinally {
			t.Finalizer = c.visitStatements(t.Finalizer)
		}
	case ast.StmtSwitch:
		sw, _ := c.b.Stmts.Switch(id)
		c.visitExpression(sw.Disc)
		for i := range sw.Cases {
			c.visitExpression(sw.Cases[i].Test)
			sw.Cases[i].Body = c.visitStatements(sw.Cases[i].Body)
		}
	}
}

func (c *Compressor) visitVarDecl(id ast.StmtID) {
	decl, _ := c.b.Stmts.VarDecl(id)
	for _, d := range decl.Decls {
		c.visitExpression(c.b.Decls.Get(d).Init)
	}
}

func (c *Compressor) visitFunction(fn *ast.FuncData) {
	if fn.ExprBody.IsValid() {
		c.visitExpression(fn.ExprBody)
		return
	}
	fn.Body = c.visitStatements(fn.Body)
}

// visitExpression runs the expression rules in priority order and descends
// only when none of them fired.
func (c *Compressor) visitExpression(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	if c.compressUndefined(id) {
		return
	}
	if c.compressBoolean(id) {
		return
	}

	expr := c.b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprBinary:
		c.visitBinaryExpression(id)
	case ast.ExprUnary:
		u, _ := c.b.Exprs.Unary(id)
		c.visitExpression(u.Arg)
	case ast.ExprUpdate:
		u, _ := c.b.Exprs.Update(id)
		c.visitTarget(u.Arg)
	case ast.ExprAssign:
		a, _ := c.b.Exprs.Assign(id)
		c.visitTarget(a.Target)
		c.visitExpression(a.Value)
	case ast.ExprConditional:
		cond, _ := c.b.Exprs.Conditional(id)
		c.visitExpression(cond.Test)
		c.visitExpression(cond.Cons)
		c.visitExpression(cond.Alt)
	case ast.ExprCall, ast.ExprNew:
		call, _ := c.b.Exprs.Call(id)
		c.visitExpression(call.Callee)
		for _, arg := range call.Args {
			c.visitExpression(arg)
		}
	case ast.ExprMember:
		m, _ := c.b.Exprs.Member(id)
		c.visitExpression(m.Object)
	case ast.ExprIndex:
		ix, _ := c.b.Exprs.Index(id)
		c.visitExpression(ix.Object)
		c.visitExpression(ix.Index)
	case ast.ExprParen:
		p, _ := c.b.Exprs.Paren(id)
		c.visitExpression(p.Inner)
	case ast.ExprArray:
		arr, _ := c.b.Exprs.Array(id)
		for _, el := range arr.Elems {
			c.visitExpression(el)
		}
	case ast.ExprObject:
		obj, _ := c.b.Exprs.Object(id)
		for _, prop := range obj.Props {
			c.visitExpression(prop.Computed)
			c.visitExpression(prop.Value)
		}
	case ast.ExprFunction:
		fn, _ := c.b.Exprs.Function(id)
		c.visitFunction(fn)
	case ast.ExprSequence:
		seq, _ := c.b.Exprs.Sequence(id)
		for _, e := range seq.Exprs {
			c.visitExpression(e)
		}
	case ast.ExprSpread:
		s, _ := c.b.Exprs.Spread(id)
		c.visitExpression(s.Arg)
	}
}

// visitBinaryExpression gives the typeof check a chance before descending left then right.
func (c *Compressor) visitBinaryExpression(id ast.ExprID) {
	if c.compressTypeofUndefined(id) {
		return
	}
	bin, _ := c.b.Exprs.Binary(id)
	c.visitExpression(bin.Left)
	c.visitExpression(bin.Right)
}

// visitTarget walks an assignment target. A bare identifier there is a
// binding, so only the value positions nested inside member and index
// targets are visited.
func (c *Compressor) visitTarget(id ast.ExprID) {
	expr := c.b.Exprs.Get(id)
	if expr == nil {
		return
	}
	switch expr.Kind {
	case ast.ExprIdent:
	case ast.ExprParen:
		p, _ := c.b.Exprs.Paren(id)
		c.visitTarget(p.Inner)
	default:
		c.visitExpression(id)
	}
}
