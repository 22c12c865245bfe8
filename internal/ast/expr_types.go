package ast

import (
	"shrink/internal/source"
)

// ExprKind enumerates expression variants.
type ExprKind uint8

const (
	// ExprInvalid marks a slot whose variant was moved elsewhere.
	ExprInvalid ExprKind = iota
	ExprBool
	ExprNumber
	ExprString
	ExprNull
	ExprIdent
	ExprThis
	ExprUnary
	ExprUpdate
	ExprBinary
	ExprAssign
	ExprConditional
	ExprCall
	ExprNew
	ExprMember
	ExprIndex
	ExprParen
	ExprArray
	ExprObject
	ExprFunction
	ExprSequence
	ExprSpread
)

var exprKindNames = [...]string{
	ExprInvalid:     "Invalid",
	ExprBool:        "Bool",
	ExprNumber:      "Number",
	ExprString:      "String",
	ExprNull:        "Null",
	ExprIdent:       "Ident",
	ExprThis:        "This",
	ExprUnary:       "Unary",
	ExprUpdate:      "Update",
	ExprBinary:      "Binary",
	ExprAssign:      "Assign",
	ExprConditional: "Conditional",
	ExprCall:        "Call",
	ExprNew:         "New",
	ExprMember:      "Member",
	ExprIndex:       "Index",
	ExprParen:       "Paren",
	ExprArray:       "Array",
	ExprObject:      "Object",
	ExprFunction:    "Function",
	ExprSequence:    "Sequence",
	ExprSpread:      "Spread",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Unknown"
}

// Expr is one expression slot. Payload indexes the per-kind arena.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprBoolData struct {
	Value bool
}

type ExprNumberData struct {
	Value float64
	Raw   string
	Base  NumberBase
}

type ExprStringData struct {
	Value string // decoded
	Raw   string // as written, quotes included; empty for synthesized strings
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprUnaryData struct {
	Op     UnaryOp
	Prefix bool
	Arg    ExprID
}

type ExprUpdateData struct {
	Op     UpdateOp
	Prefix bool
	Arg    ExprID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type ExprAssignData struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
}

type ExprConditionalData struct {
	Test ExprID
	Cons ExprID
	Alt  ExprID
}

// ExprCallData is shared by call and new expressions.
type ExprCallData struct {
	Callee   ExprID
	Args     []ExprID
	Optional bool // callee?.(args)
}

type ExprMemberData struct {
	Object   ExprID
	Property source.StringID
	Optional bool
}

type ExprIndexData struct {
	Object   ExprID
	Index    ExprID
	Optional bool
}

type ExprParenData struct {
	Inner ExprID
}

// ExprArrayData keeps holes as NoExprID.
type ExprArrayData struct {
	Elems []ExprID
}

type PropKind uint8

const (
	PropInit      PropKind = iota // key: value
	PropShorthand                 // key
	PropSpread                    // ...value
	PropMethod                    // key(params) { body }; Value is a Function
)

// Property is one object literal member. Key holds the key as written
// (identifier, quoted string or number) unless Computed is set.
type Property struct {
	Span     source.Span
	Kind     PropKind
	Key      source.StringID
	Computed ExprID
	Value    ExprID
}

type ExprObjectData struct {
	Props []Property
}

type ExprSequenceData struct {
	Exprs []ExprID
}

type ExprSpreadData struct {
	Arg ExprID
}
