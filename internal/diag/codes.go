package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumber          Code = 1004
	LexIntOutOfRange      Code = 1005
	LexBadEscape          Code = 1006
	LexUnterminatedEscape Code = 1007
	LexInvalidCharLit     Code = 1008
	LexMultiByteChar      Code = 1009

	// Синтаксические
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectColon        Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBrace      Code = 2008
	SynUnclosedBracket    Code = 2009
	SynExpectInitializer  Code = 2010
	SynFnNotAllowed       Code = 2011
	SynIncDecNotSupported Code = 2012
	SynExpectArrow        Code = 2013
	SynExpectElse         Code = 2014
	SynExpectDeclaration  Code = 2015

	// Семантические
	SemaUnresolvedSymbol    Code = 3001
	SemaDuplicateSymbol     Code = 3002
	SemaTypeMismatch        Code = 3003
	SemaArityMismatch       Code = 3004
	SemaNoCommonType        Code = 3005
	SemaInvalidConversion   Code = 3006
	SemaNotReference        Code = 3007
	SemaNotCallable         Code = 3008
	SemaNotArithmetic       Code = 3009
	SemaNotInteger          Code = 3010
	SemaNotBoolean          Code = 3011
	SemaNotScalar           Code = 3012
	SemaNotNumeric          Code = 3013
	SemaNotPointer          Code = 3014
	SemaStringNotSupported  Code = 3015
	SemaBreakOutsideLoop    Code = 3016
	SemaContinueOutsideLoop Code = 3017
	SemaReturnOutsideFunc   Code = 3018

	// I/O
	IOLoadFileError Code = 4001

	// Проект
	ProjBadManifest Code = 5001
)

// Category groups codes the way errors are reported to users.
type Category uint8

const (
	CatUnknown Category = iota
	CatLexical
	CatSyntactic
	CatSemantic
	CatIO
	CatProject
)

func (c Category) String() string {
	switch c {
	case CatLexical:
		return "lexical"
	case CatSyntactic:
		return "syntax"
	case CatSemantic:
		return "semantic"
	case CatIO:
		return "io"
	case CatProject:
		return "project"
	default:
		return "unknown"
	}
}

var codeDescription = map[Code]string{
	UnknownCode:             "Unknown error",
	LexUnknownChar:          "Unknown character",
	LexUnterminatedString:   "Unterminated string literal",
	LexUnterminatedChar:     "Unterminated character literal",
	LexBadNumber:            "Malformed number",
	LexIntOutOfRange:        "Integer literal out of range",
	LexBadEscape:            "Invalid escape sequence",
	LexUnterminatedEscape:   "Unterminated escape sequence",
	LexInvalidCharLit:       "Invalid character literal",
	LexMultiByteChar:        "Invalid multi-byte character",
	SynUnexpectedToken:      "Unexpected token",
	SynExpectSemicolon:      "Expected ';'",
	SynExpectIdentifier:     "Expected identifier",
	SynExpectType:           "Expected type",
	SynExpectExpression:     "Expected expression",
	SynExpectColon:          "Expected ':'",
	SynUnclosedParen:        "Unclosed parenthesis",
	SynUnclosedBrace:        "Unclosed brace",
	SynUnclosedBracket:      "Unclosed bracket",
	SynExpectInitializer:    "Expected initializer",
	SynFnNotAllowed:         "Function definition not allowed here",
	SynIncDecNotSupported:   "Increment/decrement is not supported",
	SynExpectArrow:          "Expected '->'",
	SynExpectElse:           "Expected 'else'",
	SynExpectDeclaration:    "Expected declaration",
	SemaUnresolvedSymbol:    "Unresolved identifier",
	SemaDuplicateSymbol:     "Redeclaration",
	SemaTypeMismatch:        "Type mismatch",
	SemaArityMismatch:       "Wrong number of arguments",
	SemaNoCommonType:        "No common type",
	SemaInvalidConversion:   "Invalid conversion",
	SemaNotReference:        "Not a reference",
	SemaNotCallable:         "Not a function",
	SemaNotArithmetic:       "Arithmetic type required",
	SemaNotInteger:          "Integer type required",
	SemaNotBoolean:          "Boolean type required",
	SemaNotScalar:           "Scalar type required",
	SemaNotNumeric:          "Numeric type required",
	SemaNotPointer:          "Pointer type required",
	SemaStringNotSupported:  "String literals are not supported in expressions",
	SemaBreakOutsideLoop:    "'break' outside of a loop",
	SemaContinueOutsideLoop: "'continue' outside of a loop",
	SemaReturnOutsideFunc:   "'return' outside of a function",
	IOLoadFileError:         "Cannot load file",
	ProjBadManifest:         "Invalid project manifest",
}

// Category derives the category from the code range.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CatLexical
	case ic >= 2000 && ic < 3000:
		return CatSyntactic
	case ic >= 3000 && ic < 4000:
		return CatSemantic
	case ic >= 4000 && ic < 5000:
		return CatIO
	case ic >= 5000 && ic < 6000:
		return CatProject
	}
	return CatUnknown
}

func (c Code) ID() string {
	ic := int(c)
	switch c.Category() {
	case CatLexical:
		return fmt.Sprintf("LEX%04d", ic)
	case CatSyntactic:
		return fmt.Sprintf("SYN%04d", ic)
	case CatSemantic:
		return fmt.Sprintf("SEM%04d", ic)
	case CatIO:
		return fmt.Sprintf("IO%04d", ic)
	case CatProject:
		return fmt.Sprintf("PRJ%04d", ic)
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
