package ast

import (
	"shrink/internal/source"
)

// StmtKind enumerates statement variants.
type StmtKind uint8

const (
	// StmtInvalid marks a slot whose variant was moved elsewhere.
	StmtInvalid StmtKind = iota
	StmtEmpty
	StmtDebugger
	StmtVarDecl
	StmtWhile
	StmtFor
	StmtForIn
	StmtExpr
	StmtBlock
	StmtIf
	StmtReturn
	StmtBreak
	StmtContinue
	StmtThrow
	StmtDoWhile
	StmtFunction
	StmtLabeled
	StmtTry
	StmtSwitch
)

var stmtKindNames = [...]string{
	StmtInvalid:  "Invalid",
	StmtEmpty:    "Empty",
	StmtDebugger: "Debugger",
	StmtVarDecl:  "VarDecl",
	StmtWhile:    "While",
	StmtFor:      "For",
	StmtForIn:    "ForIn",
	StmtExpr:     "Expr",
	StmtBlock:    "Block",
	StmtIf:       "If",
	StmtReturn:   "Return",
	StmtBreak:    "Break",
	StmtContinue: "Continue",
	StmtThrow:    "Throw",
	StmtDoWhile:  "DoWhile",
	StmtFunction: "Function",
	StmtLabeled:  "Labeled",
	StmtTry:      "Try",
	StmtSwitch:   "Switch",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Unknown"
}

// Stmt is one statement slot. Payload indexes the per-kind arena.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtVarDeclData struct {
	Kind  VarKind
	Decls []DeclaratorID
}

type StmtWhileData struct {
	Test ExprID
	Body StmtID
}

// StmtForData holds a classic for loop. At most one of InitStmt and InitExpr is set.
type StmtForData struct {
	InitStmt StmtID // VarDecl
	InitExpr ExprID
	Test     ExprID
	Update   ExprID
	Body     StmtID
}

// StmtForInData covers both for-in and for-of.
type StmtForInData struct {
	LeftStmt StmtID // VarDecl with one declarator and no initializer
	LeftExpr ExprID // assignment target
	Right    ExprID
	Body     StmtID
	Of       bool
}

// StmtArgData is shared by Expr, Return and Throw statements.
type StmtArgData struct {
	Arg ExprID
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtIfData struct {
	Test ExprID
	Cons StmtID
	Alt  StmtID
}

// StmtJumpData is the payload of break and continue.
type StmtJumpData struct {
	Label source.StringID
}

type StmtDoWhileData struct {
	Body StmtID
	Test ExprID
}

type StmtLabeledData struct {
	Label source.StringID
	Body  StmtID
}

type StmtTryData struct {
	Block      []StmtID
	HasCatch   bool
	Param      source.StringID // NoStringID for "catch {"
	Handler    []StmtID
	HasFinally bool
	Finalizer  []StmtID
}

type SwitchCase struct {
	Span source.Span
	Test ExprID // NoExprID for default
	Body []StmtID
}

type StmtSwitchData struct {
	Disc  ExprID
	Cases []SwitchCase
}

// FuncData is shared by function declarations, function expressions and arrows.
type FuncData struct {
	Name     source.StringID
	Params   []source.StringID
	Rest     bool // last param is "...name"
	Body     []StmtID
	Arrow    bool
	ExprBody ExprID // concise arrow body; Body is unused when set
}
