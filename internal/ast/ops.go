package ast

// UnaryOp enumerates prefix operators that are not updates.
type UnaryOp uint8

const (
	UnaryNeg        UnaryOp = iota // -
	UnaryPlus                      // +
	UnaryLogicalNot                // !
	UnaryBitNot                    // ~
	UnaryTypeof                    // typeof
	UnaryVoid                      // void
	UnaryDelete                    // delete
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryPlus:
		return "+"
	case UnaryLogicalNot:
		return "!"
	case UnaryBitNot:
		return "~"
	case UnaryTypeof:
		return "typeof"
	case UnaryVoid:
		return "void"
	case UnaryDelete:
		return "delete"
	}
	return "?"
}

// IsKeyword reports whether the operator is spelled as a word.
func (op UnaryOp) IsKeyword() bool {
	return op == UnaryTypeof || op == UnaryVoid || op == UnaryDelete
}

type UpdateOp uint8

const (
	UpdateIncr UpdateOp = iota // ++
	UpdateDecr                 // --
)

func (op UpdateOp) String() string {
	if op == UpdateDecr {
		return "--"
	}
	return "++"
}

// BinaryOp covers arithmetic, bitwise, relational, equality and logical operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryExp
	BinaryShl
	BinaryShr
	BinaryUShr
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryEq
	BinaryNotEq
	BinaryStrictEq
	BinaryStrictNotEq
	BinaryLt
	BinaryGt
	BinaryLtEq
	BinaryGtEq
	BinaryIn
	BinaryInstanceof
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryCoalesce
)

var binaryOpText = [...]string{
	BinaryAdd:         "+",
	BinarySub:         "-",
	BinaryMul:         "*",
	BinaryDiv:         "/",
	BinaryMod:         "%",
	BinaryExp:         "**",
	BinaryShl:         "<<",
	BinaryShr:         ">>",
	BinaryUShr:        ">>>",
	BinaryBitAnd:      "&",
	BinaryBitOr:       "|",
	BinaryBitXor:      "^",
	BinaryEq:          "==",
	BinaryNotEq:       "!=",
	BinaryStrictEq:    "===",
	BinaryStrictNotEq: "!==",
	BinaryLt:          "<",
	BinaryGt:          ">",
	BinaryLtEq:        "<=",
	BinaryGtEq:        ">=",
	BinaryIn:          "in",
	BinaryInstanceof:  "instanceof",
	BinaryLogicalAnd:  "&&",
	BinaryLogicalOr:   "||",
	BinaryCoalesce:    "??",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsEquality reports == and ===. The negated forms are not part of the family.
func (op BinaryOp) IsEquality() bool {
	return op == BinaryEq || op == BinaryStrictEq
}

func (op BinaryOp) IsLogical() bool {
	return op == BinaryLogicalAnd || op == BinaryLogicalOr || op == BinaryCoalesce
}

// IsKeyword reports whether the operator is spelled as a word.
func (op BinaryOp) IsKeyword() bool {
	return op == BinaryIn || op == BinaryInstanceof
}

type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignShl
	AssignShr
	AssignUShr
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignLogicalAnd
	AssignLogicalOr
	AssignCoalesce
)

var assignOpText = [...]string{
	AssignPlain:      "=",
	AssignAdd:        "+=",
	AssignSub:        "-=",
	AssignMul:        "*=",
	AssignDiv:        "/=",
	AssignMod:        "%=",
	AssignExp:        "**=",
	AssignShl:        "<<=",
	AssignShr:        ">>=",
	AssignUShr:       ">>>=",
	AssignBitAnd:     "&=",
	AssignBitOr:      "|=",
	AssignBitXor:     "^=",
	AssignLogicalAnd: "&&=",
	AssignLogicalOr:  "||=",
	AssignCoalesce:   "??=",
}

func (op AssignOp) String() string {
	if int(op) < len(assignOpText) {
		return assignOpText[op]
	}
	return "?"
}

// NumberBase records how a numeric literal was written.
type NumberBase uint8

const (
	BaseDecimal NumberBase = iota
	BaseFloat
	BaseHex
	BaseOctal
	BaseBinary
)

func (b NumberBase) String() string {
	switch b {
	case BaseDecimal:
		return "Decimal"
	case BaseFloat:
		return "Float"
	case BaseHex:
		return "Hex"
	case BaseOctal:
		return "Octal"
	case BaseBinary:
		return "Binary"
	}
	return "Unknown"
}

type VarKind uint8

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) String() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	}
	return "var"
}
