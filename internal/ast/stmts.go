package ast

import (
	"shrink/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena    *Arena[Stmt]
	VarDecls *Arena[StmtVarDeclData]
	Whiles   *Arena[StmtWhileData]
	Fors     *Arena[StmtForData]
	ForIns   *Arena[StmtForInData]
	Args     *Arena[StmtArgData]
	Blocks   *Arena[StmtBlockData]
	Ifs      *Arena[StmtIfData]
	Jumps    *Arena[StmtJumpData]
	DoWhiles *Arena[StmtDoWhileData]
	Funcs    *Arena[FuncData]
	Labeleds *Arena[StmtLabeledData]
	Tries    *Arena[StmtTryData]
	Switches *Arena[StmtSwitchData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:    NewArena[Stmt](capHint),
		VarDecls: NewArena[StmtVarDeclData](small),
		Whiles:   NewArena[StmtWhileData](small),
		Fors:     NewArena[StmtForData](small),
		ForIns:   NewArena[StmtForInData](small),
		Args:     NewArena[StmtArgData](capHint),
		Blocks:   NewArena[StmtBlockData](small),
		Ifs:      NewArena[StmtIfData](small),
		Jumps:    NewArena[StmtJumpData](small),
		DoWhiles: NewArena[StmtDoWhileData](small),
		Funcs:    NewArena[FuncData](small),
		Labeleds: NewArena[StmtLabeledData](small),
		Tries:    NewArena[StmtTryData](small),
		Switches: NewArena[StmtSwitchData](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// Replace moves the variant stored at src into the dst slot, span included.
// The src slot is left as StmtInvalid and must not be referenced afterwards.
func (s *Stmts) Replace(dst, src StmtID) {
	d, from := s.Get(dst), s.Get(src)
	if d == nil || from == nil {
		return
	}
	*d = *from
	*from = Stmt{Kind: StmtInvalid}
}

func (s *Stmts) NewEmpty(span source.Span) StmtID {
	return s.new(StmtEmpty, span, NoPayloadID)
}

func (s *Stmts) NewDebugger(span source.Span) StmtID {
	return s.new(StmtDebugger, span, NoPayloadID)
}

func (s *Stmts) NewVarDecl(span source.Span, kind VarKind, decls []DeclaratorID) StmtID {
	payload := s.VarDecls.Allocate(StmtVarDeclData{Kind: kind, Decls: append([]DeclaratorID(nil), decls...)})
	return s.new(StmtVarDecl, span, PayloadID(payload))
}

func (s *Stmts) VarDecl(id StmtID) (*StmtVarDeclData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtVarDecl {
		return nil, false
	}
	return s.VarDecls.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, test ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Test: test, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewFor(span source.Span, data StmtForData) StmtID {
	payload := s.Fors.Allocate(data)
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewForIn(span source.Span, data StmtForInData) StmtID {
	payload := s.ForIns.Allocate(data)
	return s.new(StmtForIn, span, PayloadID(payload))
}

func (s *Stmts) ForIn(id StmtID) (*StmtForInData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtForIn {
		return nil, false
	}
	return s.ForIns.Get(uint32(st.Payload)), true
}

func (s *Stmts) newArg(kind StmtKind, span source.Span, arg ExprID) StmtID {
	payload := s.Args.Allocate(StmtArgData{Arg: arg})
	return s.new(kind, span, PayloadID(payload))
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return s.newArg(StmtExpr, span, expr)
}

func (s *Stmts) NewReturn(span source.Span, arg ExprID) StmtID {
	return s.newArg(StmtReturn, span, arg)
}

func (s *Stmts) NewThrow(span source.Span, arg ExprID) StmtID {
	return s.newArg(StmtThrow, span, arg)
}

// Arg returns the payload of an Expr, Return or Throw statement.
func (s *Stmts) Arg(id StmtID) (*StmtArgData, bool) {
	st := s.Get(id)
	if st == nil {
		return nil, false
	}
	switch st.Kind {
	case StmtExpr, StmtReturn, StmtThrow:
		return s.Args.Get(uint32(st.Payload)), true
	}
	return nil, false
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, test ExprID, cons, alt StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Test: test, Cons: cons, Alt: alt})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewBreak(span source.Span, label source.StringID) StmtID {
	payload := s.Jumps.Allocate(StmtJumpData{Label: label})
	return s.new(StmtBreak, span, PayloadID(payload))
}

func (s *Stmts) NewContinue(span source.Span, label source.StringID) StmtID {
	payload := s.Jumps.Allocate(StmtJumpData{Label: label})
	return s.new(StmtContinue, span, PayloadID(payload))
}

// Jump returns the payload of a break or continue statement.
func (s *Stmts) Jump(id StmtID) (*StmtJumpData, bool) {
	st := s.Get(id)
	if st == nil || (st.Kind != StmtBreak && st.Kind != StmtContinue) {
		return nil, false
	}
	return s.Jumps.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewDoWhile(span source.Span, body StmtID, test ExprID) StmtID {
	payload := s.DoWhiles.Allocate(StmtDoWhileData{Body: body, Test: test})
	return s.new(StmtDoWhile, span, PayloadID(payload))
}

func (s *Stmts) DoWhile(id StmtID) (*StmtDoWhileData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtDoWhile {
		return nil, false
	}
	return s.DoWhiles.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewFunction(span source.Span, fn FuncData) StmtID {
	payload := s.Funcs.Allocate(fn)
	return s.new(StmtFunction, span, PayloadID(payload))
}

func (s *Stmts) Function(id StmtID) (*FuncData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFunction {
		return nil, false
	}
	return s.Funcs.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewLabeled(span source.Span, label source.StringID, body StmtID) StmtID {
	payload := s.Labeleds.Allocate(StmtLabeledData{Label: label, Body: body})
	return s.new(StmtLabeled, span, PayloadID(payload))
}

func (s *Stmts) Labeled(id StmtID) (*StmtLabeledData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLabeled {
		return nil, false
	}
	return s.Labeleds.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewTry(span source.Span, data StmtTryData) StmtID {
	payload := s.Tries.Allocate(data)
	return s.new(StmtTry, span, PayloadID(payload))
}

func (s *Stmts) Try(id StmtID) (*StmtTryData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtTry {
		return nil, false
	}
	return s.Tries.Get(uint32(st.Payload)), true
}

func (s *Stmts) NewSwitch(span source.Span, disc ExprID, cases []SwitchCase) StmtID {
	payload := s.Switches.Allocate(StmtSwitchData{Disc: disc, Cases: cases})
	return s.new(StmtSwitch, span, PayloadID(payload))
}

func (s *Stmts) Switch(id StmtID) (*StmtSwitchData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtSwitch {
		return nil, false
	}
	return s.Switches.Get(uint32(st.Payload)), true
}
