package ast

import (
	"sable/internal/source"
	"sable/internal/types"
)

type DeclKind uint8

const (
	DeclProgram DeclKind = iota
	// DeclVariable is "var": mutable, names evaluate to a reference.
	DeclVariable
	// DeclConstant is "let".
	DeclConstant
	// DeclValue is "def name: T = e".
	DeclValue
	DeclParameter
	DeclFunction
)

func (k DeclKind) String() string {
	switch k {
	case DeclProgram:
		return "Program"
	case DeclVariable:
		return "Variable"
	case DeclConstant:
		return "Constant"
	case DeclValue:
		return "Value"
	case DeclParameter:
		return "Parameter"
	case DeclFunction:
		return "Function"
	default:
		return "Decl(?)"
	}
}

// IsObject reports declarations that name a stored object.
func (k DeclKind) IsObject() bool {
	switch k {
	case DeclVariable, DeclConstant, DeclValue, DeclParameter:
		return true
	default:
		return false
	}
}

// Decl is a declaration node. Program has no Name and no Type.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Name    source.StringID
	Type    types.TypeID
	Payload PayloadID
}

type DeclProgramData struct {
	Decls []DeclID
}

// DeclObjectData backs Variable, Constant, Value and Parameter.
// Init is NoExprID for parameters and until the initializer is checked.
type DeclObjectData struct {
	Init ExprID
}

type DeclFunctionData struct {
	Params []DeclID
	Result types.TypeID
	Body   StmtID
}

type Decls struct {
	Arena     *Arena[Decl]
	Programs  *Arena[DeclProgramData]
	Objects   *Arena[DeclObjectData]
	Functions *Arena[DeclFunctionData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Decls{
		Arena:     NewArena[Decl](capHint),
		Programs:  NewArena[DeclProgramData](1),
		Objects:   NewArena[DeclObjectData](capHint),
		Functions: NewArena[DeclFunctionData](capHint/4 + 1),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, name source.StringID, typ types.TypeID, payload uint32) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:    kind,
		Span:    span,
		Name:    name,
		Type:    typ,
		Payload: PayloadID(payload),
	}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

func (d *Decls) NewProgram(span source.Span, decls []DeclID) DeclID {
	return d.new(DeclProgram, span, source.NoStringID, types.NoTypeID, d.Programs.Allocate(DeclProgramData{Decls: decls}))
}

func (d *Decls) Program(id DeclID) *DeclProgramData {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclProgram {
		return nil
	}
	return d.Programs.Get(uint32(decl.Payload))
}

// NewObject creates a Variable, Constant, Value or Parameter without initializer.
func (d *Decls) NewObject(kind DeclKind, span source.Span, name source.StringID, typ types.TypeID) DeclID {
	if !kind.IsObject() {
		panic("ast: NewObject with non-object kind " + kind.String())
	}
	return d.new(kind, span, name, typ, d.Objects.Allocate(DeclObjectData{}))
}

func (d *Decls) Object(id DeclID) *DeclObjectData {
	decl := d.Get(id)
	if decl == nil || !decl.Kind.IsObject() {
		return nil
	}
	return d.Objects.Get(uint32(decl.Payload))
}

// SetInit attaches a checked initializer to an object declaration.
func (d *Decls) SetInit(id DeclID, init ExprID) {
	if obj := d.Object(id); obj != nil {
		obj.Init = init
	}
}

// NewFunction creates a function declaration; the body is attached later.
func (d *Decls) NewFunction(span source.Span, name source.StringID, typ types.TypeID, params []DeclID, result types.TypeID) DeclID {
	return d.new(DeclFunction, span, name, typ, d.Functions.Allocate(DeclFunctionData{Params: params, Result: result}))
}

func (d *Decls) Function(id DeclID) *DeclFunctionData {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFunction {
		return nil
	}
	return d.Functions.Get(uint32(decl.Payload))
}

func (d *Decls) SetBody(id DeclID, body StmtID) {
	if fn := d.Function(id); fn != nil {
		fn.Body = body
	}
}
