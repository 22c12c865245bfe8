package ast

// Node refers to exactly one of a statement, expression or declarator slot.
type Node struct {
	Stmt StmtID
	Expr ExprID
	Decl DeclaratorID
}

// Walk visits every node reachable from prog in pre-order. Returning false
// from fn skips the node's children.
func Walk(b *Builder, prog *Program, fn func(Node) bool) {
	w := walker{b: b, fn: fn}
	w.stmts(prog.Body)
}

type walker struct {
	b  *Builder
	fn func(Node) bool
}

func (w *walker) stmts(ids []StmtID) {
	for _, id := range ids {
		w.stmt(id)
	}
}

func (w *walker) stmt(id StmtID) {
	if !id.IsValid() || !w.fn(Node{Stmt: id}) {
		return
	}
	s := w.b.Stmts
	st := s.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case StmtVarDecl:
		d, _ := s.VarDecl(id)
		for _, decl := range d.Decls {
			if w.fn(Node{Decl: decl}) {
				w.expr(w.b.Decls.Get(decl).Init)
			}
		}
	case StmtWhile:
		d, _ := s.While(id)
		w.expr(d.Test)
		w.stmt(d.Body)
	case StmtFor:
		d, _ := s.For(id)
		w.stmt(d.InitStmt)
		w.expr(d.InitExpr)
		w.expr(d.Test)
		w.expr(d.Update)
		w.stmt(d.Body)
	case StmtForIn:
		d, _ := s.ForIn(id)
		w.stmt(d.LeftStmt)
		w.expr(d.LeftExpr)
		w.expr(d.Right)
		w.stmt(d.Body)
	case StmtExpr, StmtReturn, StmtThrow:
		d, _ := s.Arg(id)
		w.expr(d.Arg)
	case StmtBlock:
		d, _ := s.Block(id)
		w.stmts(d.Stmts)
	case StmtIf:
		d, _ := s.If(id)
		w.expr(d.Test)
		w.stmt(d.Cons)
		w.stmt(d.Alt)
	case StmtDoWhile:
		d, _ := s.DoWhile(id)
		w.stmt(d.Body)
		w.expr(d.Test)
	case StmtFunction:
		d, _ := s.Function(id)
		w.function(d)
	case StmtLabeled:
		d, _ := s.Labeled(id)
		w.stmt(d.Body)
	case StmtTry:
		d, _ := s.Try(id)
		w.stmts(d.Block)
		w.stmts(d.Handler)
		w.stmts(d.Finalizer)
	case StmtSwitch:
		d, _ := s.Switch(id)
		w.expr(d.Disc)
		for _, c := range d.Cases {
			w.expr(c.Test)
			w.stmts(c.Body)
		}
	}
}

func (w *walker) function(fn *FuncData) {
	w.expr(fn.ExprBody)
	w.stmts(fn.Body)
}

func (w *walker) exprs(ids []ExprID) {
	for _, id := range ids {
		w.expr(id)
	}
}

func (w *walker) expr(id ExprID) {
	if !id.IsValid() || !w.fn(Node{Expr: id}) {
		return
	}
	e := w.b.Exprs
	ex := e.Get(id)
	if ex == nil {
		return
	}
	switch ex.Kind {
	case ExprUnary:
		d, _ := e.Unary(id)
		w.expr(d.Arg)
	case ExprUpdate:
		d, _ := e.Update(id)
		w.expr(d.Arg)
	case ExprBinary:
		d, _ := e.Binary(id)
		w.expr(d.Left)
		w.expr(d.Right)
	case ExprAssign:
		d, _ := e.Assign(id)
		w.expr(d.Target)
		w.expr(d.Value)
	case ExprConditional:
		d, _ := e.Conditional(id)
		w.expr(d.Test)
		w.expr(d.Cons)
		w.expr(d.Alt)
	case ExprCall, ExprNew:
		d, _ := e.Call(id)
		w.expr(d.Callee)
		w.exprs(d.Args)
	case ExprMember:
		d, _ := e.Member(id)
		w.expr(d.Object)
	case ExprIndex:
		d, _ := e.Index(id)
		w.expr(d.Object)
		w.expr(d.Index)
	case ExprParen:
		d, _ := e.Paren(id)
		w.expr(d.Inner)
	case ExprArray:
		d, _ := e.Array(id)
		w.exprs(d.Elems)
	case ExprObject:
		d, _ := e.Object(id)
		for _, p := range d.Props {
			w.expr(p.Computed)
			w.expr(p.Value)
		}
	case ExprFunction:
		d, _ := e.Function(id)
		w.function(d)
	case ExprSequence:
		d, _ := e.Sequence(id)
		w.exprs(d.Exprs)
	case ExprSpread:
		d, _ := e.Spread(id)
		w.expr(d.Arg)
	}
}
