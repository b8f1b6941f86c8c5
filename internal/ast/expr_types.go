package ast

import (
	"sable/internal/source"
	"sable/internal/token"
	"sable/internal/types"
)

// ExprKind enumerates the closed set of expressions.
type ExprKind uint8

const (
	ExprBoolLit ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprCharLit
	// ExprIdent names a declaration (the Id variant).
	ExprIdent
	ExprUnary
	ExprBinary
	ExprCall
	ExprIndex
	// ExprCast is an explicit "e as T".
	ExprCast
	ExprAssign
	ExprConditional
	// ExprConversion is inserted by semantic analysis, never written by hand.
	ExprConversion
)

func (k ExprKind) String() string {
	switch k {
	case ExprBoolLit:
		return "BoolLit"
	case ExprIntLit:
		return "IntLit"
	case ExprFloatLit:
		return "FloatLit"
	case ExprCharLit:
		return "CharLit"
	case ExprIdent:
		return "Id"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	case ExprCall:
		return "Call"
	case ExprIndex:
		return "Index"
	case ExprCast:
		return "Cast"
	case ExprAssign:
		return "Assign"
	case ExprConditional:
		return "Conditional"
	case ExprConversion:
		return "Conversion"
	default:
		return "Expr(?)"
	}
}

// Expr is an expression node. Type is always resolved once the node exists.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Type    types.TypeID
	Payload PayloadID
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	ExprUnaryPlus   ExprUnaryOp = iota // +x
	ExprUnaryMinus                     // -x
	ExprUnaryBitNot                    // ~x
	ExprUnaryNot                       // not x
	ExprUnaryAddr                      // &x
	ExprUnaryDeref                     // *x
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryPlus:
		return "+"
	case ExprUnaryMinus:
		return "-"
	case ExprUnaryBitNot:
		return "~"
	case ExprUnaryNot:
		return "not"
	case ExprUnaryAddr:
		return "&"
	case ExprUnaryDeref:
		return "*"
	default:
		return "?"
	}
}

// ExprBinaryOp enumerates binary operators.
type ExprBinaryOp uint8

const (
	// ExprBinaryNone marks a plain '=' in ExprAssignData.
	ExprBinaryNone ExprBinaryOp = iota

	// Арифметические
	ExprBinaryAdd
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryRem

	// Битовые
	ExprBinaryShl
	ExprBinaryShr
	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor

	// Логические
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	// Сравнения
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

var binaryOpSpelling = [...]string{
	ExprBinaryNone:       "=",
	ExprBinaryAdd:        "+",
	ExprBinarySub:        "-",
	ExprBinaryMul:        "*",
	ExprBinaryDiv:        "/",
	ExprBinaryRem:        "%",
	ExprBinaryShl:        "<<",
	ExprBinaryShr:        ">>",
	ExprBinaryBitAnd:     "&",
	ExprBinaryBitOr:      "|",
	ExprBinaryBitXor:     "^",
	ExprBinaryLogicalAnd: "and",
	ExprBinaryLogicalOr:  "or",
	ExprBinaryEq:         "==",
	ExprBinaryNotEq:      "!=",
	ExprBinaryLess:       "<",
	ExprBinaryLessEq:     "<=",
	ExprBinaryGreater:    ">",
	ExprBinaryGreaterEq:  ">=",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpSpelling) {
		return binaryOpSpelling[op]
	}
	return "?"
}

// IsArithmetic reports + - * / %.
func (op ExprBinaryOp) IsArithmetic() bool {
	return op >= ExprBinaryAdd && op <= ExprBinaryRem
}

// IsBitwise reports shifts and & | ^.
func (op ExprBinaryOp) IsBitwise() bool {
	return op >= ExprBinaryShl && op <= ExprBinaryBitXor
}

func (op ExprBinaryOp) IsLogical() bool {
	return op == ExprBinaryLogicalAnd || op == ExprBinaryLogicalOr
}

func (op ExprBinaryOp) IsEquality() bool {
	return op == ExprBinaryEq || op == ExprBinaryNotEq
}

func (op ExprBinaryOp) IsRelational() bool {
	return op >= ExprBinaryLess && op <= ExprBinaryGreaterEq
}

// ConversionKind says what an ExprConversion does to its operand.
type ConversionKind uint8

const (
	// ConvValue loads the object a reference designates.
	ConvValue ConversionKind = iota
	// ConvBool tests a scalar for truthiness.
	ConvBool
	// ConvChar narrows an int to char.
	ConvChar
	// ConvInt widens bool or char to int.
	ConvInt
	// ConvTrunc truncates float to int.
	ConvTrunc
	// ConvExt extends int to float.
	ConvExt
)

func (c ConversionKind) String() string {
	switch c {
	case ConvValue:
		return "value"
	case ConvBool:
		return "bool"
	case ConvChar:
		return "char"
	case ConvInt:
		return "int"
	case ConvTrunc:
		return "trunc"
	case ConvExt:
		return "ext"
	default:
		return "?"
	}
}

type ExprBoolData struct {
	Value bool
}

type ExprIntData struct {
	Value uint64
	Radix token.Radix
}

type ExprFloatData struct {
	Value float64
}

type ExprCharData struct {
	Value byte
}

// ExprIdentData keeps both the spelled name and the resolved declaration.
type ExprIdentData struct {
	Name source.StringID
	Decl DeclID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprIndexData struct {
	Base ExprID
	Args []ExprID
}

type ExprCastData struct {
	Value  ExprID
	Target types.TypeID
}

// ExprAssignData: Op is ExprBinaryNone for '=', otherwise the operator of a compound assignment.
type ExprAssignData struct {
	Op     ExprBinaryOp
	Target ExprID
	Value  ExprID
}

type ExprConditionalData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

type ExprConversionData struct {
	Value ExprID
	Conv  ConversionKind
}
