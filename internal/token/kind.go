package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is never produced by a successful Next.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident carries a Symbol payload.
	Ident
	// IntLit carries an integer and its Radix.
	IntLit
	// FloatLit carries a float64.
	FloatLit
	// BoolLit carries a bool (spelled true/false).
	BoolLit
	// CharLit carries one decoded byte.
	CharLit
	// StringLit carries the Symbol of the decoded text.
	StringLit
	// TypeName is one of the builtin type names; carries a TypeSpec.
	TypeName

	KwAs       // as
	KwBreak    // break
	KwContinue // continue
	KwDef      // def
	KwElse     // else
	KwIf       // if
	KwLet      // let
	KwReturn   // return
	KwVar      // var
	KwWhen     // when
	KwWhile    // while
	KwAnd      // and
	KwOr       // or
	KwNot      // not

	LParen        // (
	RParen        // )
	LBracket      // [
	RBracket      // ]
	LBrace        // {
	RBrace        // }
	Comma         // ,
	Semicolon     // ;
	Colon         // :
	Question      // ?
	Arrow         // ->
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	PlusPlus      // ++
	MinusMinus    // --
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	BoolLit:       "BoolLit",
	CharLit:       "CharLit",
	StringLit:     "StringLit",
	TypeName:      "TypeName",
	KwAs:          "KwAs",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwDef:         "KwDef",
	KwElse:        "KwElse",
	KwIf:          "KwIf",
	KwLet:         "KwLet",
	KwReturn:      "KwReturn",
	KwVar:         "KwVar",
	KwWhen:        "KwWhen",
	KwWhile:       "KwWhile",
	KwAnd:         "KwAnd",
	KwOr:          "KwOr",
	KwNot:         "KwNot",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	Colon:         "Colon",
	Question:      "Question",
	Arrow:         "Arrow",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shl:           "Shl",
	Shr:           "Shr",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Tilde:         "Tilde",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsLiteral reports whether tokens of kind k carry a literal payload.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, BoolLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether k is a reserved word other than literals and type names.
func (k Kind) IsKeyword() bool {
	return k >= KwAs && k <= KwNot
}

// IsOperator reports whether k is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return k >= LParen && k < kindCount
}

// IsAssignOp reports whether k is '=' or a compound assignment.
func (k Kind) IsAssignOp() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
