package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnsupportedSyntax        Code = 1005

	// syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectExpression  Code = 2003
	SynExpectIdentifier  Code = 2004
	SynUnclosedParen     Code = 2005
	SynUnclosedBrace     Code = 2006
	SynUnclosedBracket   Code = 2007
	SynExpectColon       Code = 2008
	SynInvalidAssignment Code = 2009
	SynConstWithoutInit  Code = 2010
	SynForBadHeader      Code = 2011
	SynIllegalBreak      Code = 2012
	SynMissingCatch      Code = 2013

	// io
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// configuration
	CfgParseError   Code = 5001
	CfgUnknownField Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexUnsupportedSyntax:        "Unsupported syntax",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectExpression:         "Expected expression",
	SynExpectIdentifier:         "Expected identifier",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectColon:              "Expected ':'",
	SynInvalidAssignment:        "Invalid assignment target",
	SynConstWithoutInit:         "Missing initializer in const declaration",
	SynForBadHeader:             "Malformed for statement header",
	SynIllegalBreak:             "Illegal break or continue",
	SynMissingCatch:             "Missing catch or finally after try",
	IOLoadFileError:             "Failed to load file",
	IOWriteFileError:            "Failed to write file",
	CfgParseError:               "Malformed configuration",
	CfgUnknownField:             "Unknown configuration field",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
