package printer

import "shrink/internal/ast"

// Expression precedence levels; higher binds tighter.
const (
	precLowest = iota
	precAssign // assignment, arrow, spread, conditional branches
	precConditional
	precCoalesce
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precPrefix
	precPostfix
	precNew  // new without arguments
	precCall // call, member, index
	precPrimary
)

func binaryPrec(op ast.BinaryOp) int {
	switch op {
	case ast.BinaryCoalesce:
		return precCoalesce
	case ast.BinaryLogicalOr:
		return precLogicalOr
	case ast.BinaryLogicalAnd:
		return precLogicalAnd
	case ast.BinaryBitOr:
		return precBitwiseOr
	case ast.BinaryBitXor:
		return precBitwiseXor
	case ast.BinaryBitAnd:
		return precBitwiseAnd
	case ast.BinaryEq, ast.BinaryNotEq, ast.BinaryStrictEq, ast.BinaryStrictNotEq:
		return precEquality
	case ast.BinaryLt, ast.BinaryGt, ast.BinaryLtEq, ast.BinaryGtEq, ast.BinaryIn, ast.BinaryInstanceof:
		return precRelational
	case ast.BinaryShl, ast.BinaryShr, ast.BinaryUShr:
		return precShift
	case ast.BinaryAdd, ast.BinarySub:
		return precAdditive
	case ast.BinaryMul, ast.BinaryDiv, ast.BinaryMod:
		return precMultiplicative
	case ast.BinaryExp:
		return precExponent
	}
	return precLowest
}

// exprPrec reports the precedence of the expression's outermost operator.
func (p *printer) exprPrec(id ast.ExprID) int {
	expr := p.b.Exprs.Get(id)
	if expr == nil {
		return precPrimary
	}
	switch expr.Kind {
	case ast.ExprSequence:
		return precLowest
	case ast.ExprAssign, ast.ExprSpread:
		return precAssign
	case ast.ExprFunction:
		if fn, ok := p.b.Exprs.Function(id); ok && fn.Arrow {
			return precAssign
		}
		return precPrimary
	case ast.ExprConditional:
		return precConditional
	case ast.ExprBinary:
		bin, _ := p.b.Exprs.Binary(id)
		return binaryPrec(bin.Op)
	case ast.ExprUnary:
		return precPrefix
	case ast.ExprUpdate:
		if u, ok := p.b.Exprs.Update(id); ok && u.Prefix {
			return precPrefix
		}
		return precPostfix
	case ast.ExprCall, ast.ExprMember, ast.ExprIndex, ast.ExprNew:
		return precCall
	}
	return precPrimary
}
