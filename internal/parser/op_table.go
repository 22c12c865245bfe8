package parser

import (
	"shrink/internal/ast"
	"shrink/internal/token"
)

// Binary operator precedence; higher binds tighter.
const (
	precCoalesce       = 1  // ??
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precBitwiseOr      = 4  // |
	precBitwiseXor     = 5  // ^
	precBitwiseAnd     = 6  // &
	precEquality       = 7  // == != === !==
	precRelational     = 8  // < > <= >= in instanceof
	precShift          = 9  // << >> >>>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
	precExponent       = 12 // **
)

// binaryPrec returns the precedence of a binary operator token and whether it is right-associative.
func (p *Parser) binaryPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.QuestionQuestion:
		return precCoalesce, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, false
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof:
		return precRelational, false
	case token.KwIn:
		if p.noIn {
			return -1, false
		}
		return precRelational, false
	case token.Shl, token.Shr, token.UShr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.StarStar:
		return precExponent, true
	default:
		return -1, false
	}
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:             ast.BinaryAdd,
	token.Minus:            ast.BinarySub,
	token.Star:             ast.BinaryMul,
	token.Slash:            ast.BinaryDiv,
	token.Percent:          ast.BinaryMod,
	token.StarStar:         ast.BinaryExp,
	token.Shl:              ast.BinaryShl,
	token.Shr:              ast.BinaryShr,
	token.UShr:             ast.BinaryUShr,
	token.Amp:              ast.BinaryBitAnd,
	token.Pipe:             ast.BinaryBitOr,
	token.Caret:            ast.BinaryBitXor,
	token.EqEq:             ast.BinaryEq,
	token.BangEq:           ast.BinaryNotEq,
	token.EqEqEq:           ast.BinaryStrictEq,
	token.BangEqEq:         ast.BinaryStrictNotEq,
	token.Lt:               ast.BinaryLt,
	token.Gt:               ast.BinaryGt,
	token.LtEq:             ast.BinaryLtEq,
	token.GtEq:             ast.BinaryGtEq,
	token.KwIn:             ast.BinaryIn,
	token.KwInstanceof:     ast.BinaryInstanceof,
	token.AndAnd:           ast.BinaryLogicalAnd,
	token.OrOr:             ast.BinaryLogicalOr,
	token.QuestionQuestion: ast.BinaryCoalesce,
}

var assignOps = map[token.Kind]ast.AssignOp{
	token.Assign:                 ast.AssignPlain,
	token.PlusAssign:             ast.AssignAdd,
	token.MinusAssign:            ast.AssignSub,
	token.StarAssign:             ast.AssignMul,
	token.SlashAssign:            ast.AssignDiv,
	token.PercentAssign:          ast.AssignMod,
	token.StarStarAssign:         ast.AssignExp,
	token.ShlAssign:              ast.AssignShl,
	token.ShrAssign:              ast.AssignShr,
	token.UShrAssign:             ast.AssignUShr,
	token.AmpAssign:              ast.AssignBitAnd,
	token.PipeAssign:             ast.AssignBitOr,
	token.CaretAssign:            ast.AssignBitXor,
	token.AndAndAssign:           ast.AssignLogicalAnd,
	token.OrOrAssign:             ast.AssignLogicalOr,
	token.QuestionQuestionAssign: ast.AssignCoalesce,
}

func unaryOpFor(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Bang:
		return ast.UnaryLogicalNot, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Plus:
		return ast.UnaryPlus, true
	case token.KwTypeof:
		return ast.UnaryTypeof, true
	case token.KwVoid:
		return ast.UnaryVoid, true
	case token.KwDelete:
		return ast.UnaryDelete, true
	default:
		return 0, false
	}
}
