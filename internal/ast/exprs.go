package ast

import (
	"shrink/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena        *Arena[Expr]
	Bools        *Arena[ExprBoolData]
	Numbers      *Arena[ExprNumberData]
	Strings      *Arena[ExprStringData]
	Idents       *Arena[ExprIdentData]
	Unaries      *Arena[ExprUnaryData]
	Updates      *Arena[ExprUpdateData]
	Binaries     *Arena[ExprBinaryData]
	Assigns      *Arena[ExprAssignData]
	Conditionals *Arena[ExprConditionalData]
	Calls        *Arena[ExprCallData]
	Members      *Arena[ExprMemberData]
	Indices      *Arena[ExprIndexData]
	Parens       *Arena[ExprParenData]
	Arrays       *Arena[ExprArrayData]
	Objects      *Arena[ExprObjectData]
	Funcs        *Arena[FuncData]
	Sequences    *Arena[ExprSequenceData]
	Spreads      *Arena[ExprSpreadData]
}

// NewExprs preallocates every per-kind arena with capHint (default 256).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Bools:        NewArena[ExprBoolData](small),
		Numbers:      NewArena[ExprNumberData](capHint),
		Strings:      NewArena[ExprStringData](capHint),
		Idents:       NewArena[ExprIdentData](capHint),
		Unaries:      NewArena[ExprUnaryData](small),
		Updates:      NewArena[ExprUpdateData](small),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Assigns:      NewArena[ExprAssignData](small),
		Conditionals: NewArena[ExprConditionalData](small),
		Calls:        NewArena[ExprCallData](capHint),
		Members:      NewArena[ExprMemberData](capHint),
		Indices:      NewArena[ExprIndexData](small),
		Parens:       NewArena[ExprParenData](small),
		Arrays:       NewArena[ExprArrayData](small),
		Objects:      NewArena[ExprObjectData](small),
		Funcs:        NewArena[FuncData](small),
		Sequences:    NewArena[ExprSequenceData](small),
		Spreads:      NewArena[ExprSpreadData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Replace moves the variant stored at src into the dst slot, span included.
// The src slot is left as ExprInvalid and must not be referenced afterwards.
func (e *Exprs) Replace(dst, src ExprID) {
	d, from := e.Get(dst), e.Get(src)
	if d == nil || from == nil {
		return
	}
	*d = *from
	*from = Expr{Kind: ExprInvalid}
}

func (e *Exprs) NewBool(span source.Span, value bool) ExprID {
	payload := e.Bools.Allocate(ExprBoolData{Value: value})
	return e.new(ExprBool, span, PayloadID(payload))
}

func (e *Exprs) Bool(id ExprID) (*ExprBoolData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBool {
		return nil, false
	}
	return e.Bools.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewNumber(span source.Span, value float64, raw string, base NumberBase) ExprID {
	payload := e.Numbers.Allocate(ExprNumberData{Value: value, Raw: raw, Base: base})
	return e.new(ExprNumber, span, PayloadID(payload))
}

func (e *Exprs) Number(id ExprID) (*ExprNumberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNumber {
		return nil, false
	}
	return e.Numbers.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewStringLit(span source.Span, value, raw string) ExprID {
	payload := e.Strings.Allocate(ExprStringData{Value: value, Raw: raw})
	return e.new(ExprString, span, PayloadID(payload))
}

func (e *Exprs) StringLit(id ExprID) (*ExprStringData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprString {
		return nil, false
	}
	return e.Strings.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewNull(span source.Span) ExprID {
	return e.new(ExprNull, span, NoPayloadID)
}

func (e *Exprs) NewThis(span source.Span) ExprID {
	return e.new(ExprThis, span, NoPayloadID)
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, arg ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Prefix: true, Arg: arg})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUpdate(span source.Span, op UpdateOp, prefix bool, arg ExprID) ExprID {
	payload := e.Updates.Allocate(ExprUpdateData{Op: op, Prefix: prefix, Arg: arg})
	return e.new(ExprUpdate, span, PayloadID(payload))
}

func (e *Exprs) Update(id ExprID) (*ExprUpdateData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUpdate {
		return nil, false
	}
	return e.Updates.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewAssign(span source.Span, op AssignOp, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewConditional(span source.Span, test, cons, alt ExprID) ExprID {
	payload := e.Conditionals.Allocate(ExprConditionalData{Test: test, Cons: cons, Alt: alt})
	return e.new(ExprConditional, span, PayloadID(payload))
}

func (e *Exprs) Conditional(id ExprID) (*ExprConditionalData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprConditional {
		return nil, false
	}
	return e.Conditionals.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, optional bool) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args, Optional: optional})
	return e.new(ExprCall, span, PayloadID(payload))
}

// NewNew creates a "new callee(args)" expression.
func (e *Exprs) NewNew(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	return e.new(ExprNew, span, PayloadID(payload))
}

// Call returns the payload of a call or new expression.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || (expr.Kind != ExprCall && expr.Kind != ExprNew) {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(span source.Span, object ExprID, property source.StringID, optional bool) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Object: object, Property: property, Optional: optional})
	return e.new(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewIndex(span source.Span, object, index ExprID, optional bool) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Object: object, Index: index, Optional: optional})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: elems})
	return e.new(ExprArray, span, PayloadID(payload))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewObject(span source.Span, props []Property) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{Props: props})
	return e.new(ExprObject, span, PayloadID(payload))
}

func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprObject {
		return nil, false
	}
	return e.Objects.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewFunction(span source.Span, fn FuncData) ExprID {
	payload := e.Funcs.Allocate(fn)
	return e.new(ExprFunction, span, PayloadID(payload))
}

func (e *Exprs) Function(id ExprID) (*FuncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunction {
		return nil, false
	}
	return e.Funcs.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewSequence(span source.Span, exprs []ExprID) ExprID {
	payload := e.Sequences.Allocate(ExprSequenceData{Exprs: exprs})
	return e.new(ExprSequence, span, PayloadID(payload))
}

func (e *Exprs) Sequence(id ExprID) (*ExprSequenceData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSequence {
		return nil, false
	}
	return e.Sequences.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewSpread(span source.Span, arg ExprID) ExprID {
	payload := e.Spreads.Allocate(ExprSpreadData{Arg: arg})
	return e.new(ExprSpread, span, PayloadID(payload))
}

func (e *Exprs) Spread(id ExprID) (*ExprSpreadData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSpread {
		return nil, false
	}
	return e.Spreads.Get(uint32(expr.Payload)), true
}
