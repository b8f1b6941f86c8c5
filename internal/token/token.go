package token

import (
	"fmt"

	"sable/internal/source"
)

// Radix is the base an integer literal was written in.
type Radix uint8

const (
	Binary  Radix = 2
	Decimal Radix = 10
	Hex     Radix = 16
)

func (r Radix) String() string {
	switch r {
	case Binary:
		return "bin"
	case Hex:
		return "hex"
	default:
		return "dec"
	}
}

// TypeSpec names a builtin type keyword.
type TypeSpec uint8

const (
	SpecBool TypeSpec = iota + 1
	SpecChar
	SpecInt
	SpecFloat
)

func (s TypeSpec) String() string {
	switch s {
	case SpecBool:
		return "bool"
	case SpecChar:
		return "char"
	case SpecInt:
		return "int"
	case SpecFloat:
		return "float"
	default:
		return "?"
	}
}

// Token is a lexed unit. Payload fields are private: use the accessor that
// matches Kind. A mismatched accessor is a programming error and panics.
type Token struct {
	Kind Kind
	Span source.Span
	Loc  source.Location
	Text string

	sym   source.StringID
	bits  uint64
	float float64
	radix Radix
}

// New builds a payload-less token (keywords, operators, EOF).
func New(kind Kind, span source.Span, loc source.Location, text string) Token {
	return Token{Kind: kind, Span: span, Loc: loc, Text: text}
}

// WithSymbol attaches an interned symbol to an Ident or StringLit token.
func (t Token) WithSymbol(id source.StringID) Token {
	t.must("WithSymbol", Ident, StringLit)
	t.sym = id
	return t
}

func (t Token) WithInt(v uint64, r Radix) Token {
	t.must("WithInt", IntLit)
	t.bits, t.radix = v, r
	return t
}

func (t Token) WithFloat(v float64) Token {
	t.must("WithFloat", FloatLit)
	t.float = v
	return t
}

func (t Token) WithBool(v bool) Token {
	t.must("WithBool", BoolLit)
	t.bits = 0
	if v {
		t.bits = 1
	}
	return t
}

func (t Token) WithChar(c byte) Token {
	t.must("WithChar", CharLit)
	t.bits = uint64(c)
	return t
}

func (t Token) WithTypeSpec(s TypeSpec) Token {
	t.must("WithTypeSpec", TypeName)
	t.bits = uint64(s)
	return t
}

// Symbol returns the interned name of an Ident.
func (t Token) Symbol() source.StringID {
	t.must("Symbol", Ident)
	return t.sym
}

// StringSymbol returns the interned decoded text of a StringLit.
func (t Token) StringSymbol() source.StringID {
	t.must("StringSymbol", StringLit)
	return t.sym
}

func (t Token) Int() (uint64, Radix) {
	t.must("Int", IntLit)
	return t.bits, t.radix
}

func (t Token) Float() float64 {
	t.must("Float", FloatLit)
	return t.float
}

func (t Token) Bool() bool {
	t.must("Bool", BoolLit)
	return t.bits != 0
}

func (t Token) Char() byte {
	t.must("Char", CharLit)
	return byte(t.bits)
}

func (t Token) TypeSpec() TypeSpec {
	t.must("TypeSpec", TypeName)
	return TypeSpec(t.bits)
}

// Is reports whether the token has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

func (t Token) must(op string, kinds ...Kind) {
	for _, k := range kinds {
		if t.Kind == k {
			return
		}
	}
	panic(fmt.Sprintf("token: %s on %s token", op, t.Kind))
}
