package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	NumberLit
	StringLit

	// punctuation and operators
	LParen                 // (
	RParen                 // )
	LBrace                 // {
	RBrace                 // }
	LBracket               // [
	RBracket               // ]
	Semicolon              // ;
	Comma                  // ,
	Dot                    // .
	Ellipsis               // ...
	Question               // ?
	QuestionDot            // ?.
	Colon                  // :
	Arrow                  // =>
	Plus                   // +
	Minus                  // -
	Star                   // *
	Slash                  // /
	Percent                // %
	StarStar               // **
	PlusPlus               // ++
	MinusMinus             // --
	Lt                     // <
	Gt                     // >
	LtEq                   // <=
	GtEq                   // >=
	EqEq                   // ==
	BangEq                 // !=
	EqEqEq                 // ===
	BangEqEq               // !==
	Shl                    // <<
	Shr                    // >>
	UShr                   // >>>
	Amp                    // &
	Pipe                   // |
	Caret                  // ^
	Bang                   // !
	Tilde                  // ~
	AndAnd                 // &&
	OrOr                   // ||
	QuestionQuestion       // ??
	Assign                 // =
	PlusAssign             // +=
	MinusAssign            // -=
	StarAssign             // *=
	SlashAssign            // /=
	PercentAssign          // %=
	StarStarAssign         // **=
	ShlAssign              // <<=
	ShrAssign              // >>=
	UShrAssign             // >>>=
	AmpAssign              // &=
	PipeAssign             // |=
	CaretAssign            // ^=
	AndAndAssign           // &&=
	OrOrAssign             // ||=
	QuestionQuestionAssign // ??=

	// keywords, reserved and contextual
	kwFirst
	KwAbstract
	KwAccessor
	KwAny
	KwAs
	KwAssert
	KwAsserts
	KwAsync
	KwAwait
	KwBigint
	KwBoolean
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwConstructor
	KwContinue
	KwDebugger
	KwDeclare
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFrom
	KwFunction
	KwGet
	KwGlobal
	KwIf
	KwImplements
	KwImport
	KwIn
	KwInfer
	KwInstanceof
	KwInterface
	KwIntrinsic
	KwIs
	KwKeyof
	KwLet
	KwMeta
	KwModule
	KwNamespace
	KwNever
	KwNew
	KwNull
	KwNumber
	KwObject
	KwOf
	KwOut
	KwOverride
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwReadonly
	KwRequire
	KwReturn
	KwSatisfies
	KwSet
	KwStatic
	KwString
	KwSuper
	KwSwitch
	KwSymbol
	KwTarget
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwType
	KwTypeof
	KwUndefined
	KwUnique
	KwUnknown
	KwVar
	KwVoid
	KwWhile
	KwWith
	KwYield
	kwLast
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	Ident:                  "Ident",
	NumberLit:              "NumberLit",
	StringLit:              "StringLit",
	LParen:                 "(",
	RParen:                 ")",
	LBrace:                 "{",
	RBrace:                 "}",
	LBracket:               "[",
	RBracket:               "]",
	Semicolon:              ";",
	Comma:                  ",",
	Dot:                    ".",
	Ellipsis:               "...",
	Question:               "?",
	QuestionDot:            "?.",
	Colon:                  ":",
	Arrow:                  "=>",
	Plus:                   "+",
	Minus:                  "-",
	Star:                   "*",
	Slash:                  "/",
	Percent:                "%",
	StarStar:               "**",
	PlusPlus:               "++",
	MinusMinus:             "--",
	Lt:                     "<",
	Gt:                     ">",
	LtEq:                   "<=",
	GtEq:                   ">=",
	EqEq:                   "==",
	BangEq:                 "!=",
	EqEqEq:                 "===",
	BangEqEq:               "!==",
	Shl:                    "<<",
	Shr:                    ">>",
	UShr:                   ">>>",
	Amp:                    "&",
	Pipe:                   "|",
	Caret:                  "^",
	Bang:                   "!",
	Tilde:                  "~",
	AndAnd:                 "&&",
	OrOr:                   "||",
	QuestionQuestion:       "??",
	Assign:                 "=",
	PlusAssign:             "+=",
	MinusAssign:            "-=",
	StarAssign:             "*=",
	SlashAssign:            "/=",
	PercentAssign:          "%=",
	StarStarAssign:         "**=",
	ShlAssign:              "<<=",
	ShrAssign:              ">>=",
	UShrAssign:             ">>>=",
	AmpAssign:              "&=",
	PipeAssign:             "|=",
	CaretAssign:            "^=",
	AndAndAssign:           "&&=",
	OrOrAssign:             "||=",
	QuestionQuestionAssign: "??=",
	KwAbstract:             "abstract",
	KwAccessor:             "accessor",
	KwAny:                  "any",
	KwAs:                   "as",
	KwAssert:               "assert",
	KwAsserts:              "asserts",
	KwAsync:                "async",
	KwAwait:                "await",
	KwBigint:               "bigint",
	KwBoolean:              "boolean",
	KwBreak:                "break",
	KwCase:                 "case",
	KwCatch:                "catch",
	KwClass:                "class",
	KwConst:                "const",
	KwConstructor:          "constructor",
	KwContinue:             "continue",
	KwDebugger:             "debugger",
	KwDeclare:              "declare",
	KwDefault:              "default",
	KwDelete:               "delete",
	KwDo:                   "do",
	KwElse:                 "else",
	KwEnum:                 "enum",
	KwExport:               "export",
	KwExtends:              "extends",
	KwFalse:                "false",
	KwFinally:              "finally",
	KwFor:                  "for",
	KwFrom:                 "from",
	KwFunction:             "function",
	KwGet:                  "get",
	KwGlobal:               "global",
	KwIf:                   "if",
	KwImplements:           "implements",
	KwImport:               "import",
	KwIn:                   "in",
	KwInfer:                "infer",
	KwInstanceof:           "instanceof",
	KwInterface:            "interface",
	KwIntrinsic:            "intrinsic",
	KwIs:                   "is",
	KwKeyof:                "keyof",
	KwLet:                  "let",
	KwMeta:                 "meta",
	KwModule:               "module",
	KwNamespace:            "namespace",
	KwNever:                "never",
	KwNew:                  "new",
	KwNull:                 "null",
	KwNumber:               "number",
	KwObject:               "object",
	KwOf:                   "of",
	KwOut:                  "out",
	KwOverride:             "override",
	KwPackage:              "package",
	KwPrivate:              "private",
	KwProtected:            "protected",
	KwPublic:               "public",
	KwReadonly:             "readonly",
	KwRequire:              "require",
	KwReturn:               "return",
	KwSatisfies:            "satisfies",
	KwSet:                  "set",
	KwStatic:               "static",
	KwString:               "string",
	KwSuper:                "super",
	KwSwitch:               "switch",
	KwSymbol:               "symbol",
	KwTarget:               "target",
	KwThis:                 "this",
	KwThrow:                "throw",
	KwTrue:                 "true",
	KwTry:                  "try",
	KwType:                 "type",
	KwTypeof:               "typeof",
	KwUndefined:            "undefined",
	KwUnique:               "unique",
	KwUnknown:              "unknown",
	KwVar:                  "var",
	KwVoid:                 "void",
	KwWhile:                "while",
	KwWith:                 "with",
	KwYield:                "yield",
}

// String returns the operator text, keyword text, or the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsKeyword reports whether k is any keyword kind, reserved or contextual.
func (k Kind) IsKeyword() bool {
	return k > kwFirst && k < kwLast
}

// IsContextual reports whether k is a keyword that may still name a binding.
func (k Kind) IsContextual() bool {
	return k.IsKeyword() && !k.IsReserved()
}

// IsReserved reports whether k is a reserved word that can never be an identifier.
func (k Kind) IsReserved() bool {
	switch k {
	case KwBreak, KwCase, KwCatch, KwClass, KwConst, KwContinue, KwDebugger, KwDefault, KwDelete,
		KwDo, KwElse, KwEnum, KwExport, KwExtends, KwFalse, KwFinally, KwFor, KwFunction, KwIf, KwImport,
		KwIn, KwInstanceof, KwNew, KwNull, KwReturn, KwSuper, KwSwitch, KwThis, KwThrow, KwTrue, KwTry,
		KwTypeof, KwVar, KwVoid, KwWhile, KwWith:
		return true
	default:
		return false
	}
}
