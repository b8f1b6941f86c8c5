package ast

import (
	"sable/internal/source"
	"sable/internal/token"
	"sable/internal/types"
)

// Exprs manages allocation of expressions and their payloads.
type Exprs struct {
	Arena        *Arena[Expr]
	Bools        *Arena[ExprBoolData]
	Ints         *Arena[ExprIntData]
	Floats       *Arena[ExprFloatData]
	Chars        *Arena[ExprCharData]
	Idents       *Arena[ExprIdentData]
	Unaries      *Arena[ExprUnaryData]
	Binaries     *Arena[ExprBinaryData]
	Calls        *Arena[ExprCallData]
	Indices      *Arena[ExprIndexData]
	Casts        *Arena[ExprCastData]
	Assigns      *Arena[ExprAssignData]
	Conditionals *Arena[ExprConditionalData]
	Conversions  *Arena[ExprConversionData]
}

// NewExprs creates per-kind arenas; capHint 0 means 1<<8.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Bools:        NewArena[ExprBoolData](small),
		Ints:         NewArena[ExprIntData](small),
		Floats:       NewArena[ExprFloatData](small),
		Chars:        NewArena[ExprCharData](small),
		Idents:       NewArena[ExprIdentData](capHint),
		Unaries:      NewArena[ExprUnaryData](small),
		Binaries:     NewArena[ExprBinaryData](capHint),
		Calls:        NewArena[ExprCallData](small),
		Indices:      NewArena[ExprIndexData](small),
		Casts:        NewArena[ExprCastData](small),
		Assigns:      NewArena[ExprAssignData](small),
		Conditionals: NewArena[ExprConditionalData](small),
		Conversions:  NewArena[ExprConversionData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, typ types.TypeID, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Type:    typ,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// TypeOf returns the resolved type of an expression.
func (e *Exprs) TypeOf(id ExprID) types.TypeID {
	if x := e.Get(id); x != nil {
		return x.Type
	}
	return types.NoTypeID
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	x := e.Get(id)
	if x == nil || x.Kind != kind {
		return 0, false
	}
	return uint32(x.Payload), true
}

func (e *Exprs) NewBool(span source.Span, typ types.TypeID, v bool) ExprID {
	return e.new(ExprBoolLit, span, typ, e.Bools.Allocate(ExprBoolData{Value: v}))
}

func (e *Exprs) Bool(id ExprID) (*ExprBoolData, bool) {
	p, ok := e.payload(id, ExprBoolLit)
	if !ok {
		return nil, false
	}
	return e.Bools.Get(p), true
}

func (e *Exprs) NewInt(span source.Span, typ types.TypeID, v uint64, radix token.Radix) ExprID {
	return e.new(ExprIntLit, span, typ, e.Ints.Allocate(ExprIntData{Value: v, Radix: radix}))
}

func (e *Exprs) Int(id ExprID) (*ExprIntData, bool) {
	p, ok := e.payload(id, ExprIntLit)
	if !ok {
		return nil, false
	}
	return e.Ints.Get(p), true
}

func (e *Exprs) NewFloat(span source.Span, typ types.TypeID, v float64) ExprID {
	return e.new(ExprFloatLit, span, typ, e.Floats.Allocate(ExprFloatData{Value: v}))
}

func (e *Exprs) Float(id ExprID) (*ExprFloatData, bool) {
	p, ok := e.payload(id, ExprFloatLit)
	if !ok {
		return nil, false
	}
	return e.Floats.Get(p), true
}

func (e *Exprs) NewChar(span source.Span, typ types.TypeID, v byte) ExprID {
	return e.new(ExprCharLit, span, typ, e.Chars.Allocate(ExprCharData{Value: v}))
}

func (e *Exprs) Char(id ExprID) (*ExprCharData, bool) {
	p, ok := e.payload(id, ExprCharLit)
	if !ok {
		return nil, false
	}
	return e.Chars.Get(p), true
}

// NewIdent creates an identifier expression bound to decl.
func (e *Exprs) NewIdent(span source.Span, typ types.TypeID, name source.StringID, decl DeclID) ExprID {
	return e.new(ExprIdent, span, typ, e.Idents.Allocate(ExprIdentData{Name: name, Decl: decl}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, typ types.TypeID, op ExprUnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, typ, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewBinary(span source.Span, typ types.TypeID, op ExprBinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, typ, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewCall(span source.Span, typ types.TypeID, callee ExprID, args []ExprID) ExprID {
	return e.new(ExprCall, span, typ, e.Calls.Allocate(ExprCallData{Callee: callee, Args: args}))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewIndex(span source.Span, typ types.TypeID, base ExprID, args []ExprID) ExprID {
	return e.new(ExprIndex, span, typ, e.Indices.Allocate(ExprIndexData{Base: base, Args: args}))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payload(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

// NewCast records an explicit cast; Expr.Type equals target.
func (e *Exprs) NewCast(span source.Span, value ExprID, target types.TypeID) ExprID {
	return e.new(ExprCast, span, target, e.Casts.Allocate(ExprCastData{Value: value, Target: target}))
}

func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	p, ok := e.payload(id, ExprCast)
	if !ok {
		return nil, false
	}
	return e.Casts.Get(p), true
}

func (e *Exprs) NewAssign(span source.Span, typ types.TypeID, op ExprBinaryOp, target, value ExprID) ExprID {
	return e.new(ExprAssign, span, typ, e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value}))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

func (e *Exprs) NewConditional(span source.Span, typ types.TypeID, cond, then, els ExprID) ExprID {
	return e.new(ExprConditional, span, typ, e.Conditionals.Allocate(ExprConditionalData{Cond: cond, Then: then, Else: els}))
}

func (e *Exprs) Conditional(id ExprID) (*ExprConditionalData, bool) {
	p, ok := e.payload(id, ExprConditional)
	if !ok {
		return nil, false
	}
	return e.Conditionals.Get(p), true
}

// NewConversion wraps value; the conversion spans its operand.
func (e *Exprs) NewConversion(typ types.TypeID, conv ConversionKind, value ExprID) ExprID {
	var span source.Span
	if v := e.Get(value); v != nil {
		span = v.Span
	}
	return e.new(ExprConversion, span, typ, e.Conversions.Allocate(ExprConversionData{Value: value, Conv: conv}))
}

func (e *Exprs) Conversion(id ExprID) (*ExprConversionData, bool) {
	p, ok := e.payload(id, ExprConversion)
	if !ok {
		return nil, false
	}
	return e.Conversions.Get(p), true
}
