package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates the closed set of Sable types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindChar
	KindInt
	KindFloat
	KindPointer
	KindReference
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindPointer:
		return "pointer"
	case KindReference:
		return "reference"
	case KindFn:
		return "function"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor. Elem is used by pointers and references,
// Payload indexes FnInfo for functions.
type Type struct {
	Kind    Kind
	Elem    TypeID
	Payload uint32
}

// MakePointer describes *elem.
func MakePointer(elem TypeID) Type {
	return Type{Kind: KindPointer, Elem: elem}
}

// MakeReference describes the type of an addressable binding of elem.
func MakeReference(elem TypeID) Type {
	return Type{Kind: KindReference, Elem: elem}
}
