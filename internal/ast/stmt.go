package ast

import (
	"sable/internal/source"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtWhen
	StmtIf
	StmtWhile
	StmtBreak
	StmtContinue
	StmtReturn
	StmtDecl
	StmtExpr
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtWhen:
		return "When"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	case StmtReturn:
		return "Return"
	case StmtDecl:
		return "Declare"
	case StmtExpr:
		return "Expression"
	default:
		return "Stmt(?)"
	}
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtWhenData struct {
	Cond ExprID
	Body StmtID
}

type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

type StmtReturnData struct {
	Value ExprID
}

type StmtDeclData struct {
	Decl DeclID
}

type StmtExprData struct {
	Expr ExprID
}

type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[StmtBlockData]
	Whens   *Arena[StmtWhenData]
	Ifs     *Arena[StmtIfData]
	Whiles  *Arena[StmtWhileData]
	Returns *Arena[StmtReturnData]
	Decls   *Arena[StmtDeclData]
	Exprs   *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[StmtBlockData](small),
		Whens:   NewArena[StmtWhenData](small),
		Ifs:     NewArena[StmtIfData](small),
		Whiles:  NewArena[StmtWhileData](small),
		Returns: NewArena[StmtReturnData](small),
		Decls:   NewArena[StmtDeclData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload uint32) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, s.Blocks.Allocate(StmtBlockData{Stmts: stmts}))
}

func (s *Stmts) Block(id StmtID) *StmtBlockData {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil
	}
	return s.Blocks.Get(p)
}

func (s *Stmts) NewWhen(span source.Span, cond ExprID, body StmtID) StmtID {
	return s.new(StmtWhen, span, s.Whens.Allocate(StmtWhenData{Cond: cond, Body: body}))
}

func (s *Stmts) When(id StmtID) *StmtWhenData {
	p, ok := s.payload(id, StmtWhen)
	if !ok {
		return nil
	}
	return s.Whens.Get(p)
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	return s.new(StmtIf, span, s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els}))
}

func (s *Stmts) If(id StmtID) *StmtIfData {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil
	}
	return s.Ifs.Get(p)
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	return s.new(StmtWhile, span, s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body}))
}

func (s *Stmts) While(id StmtID) *StmtWhileData {
	p, ok := s.payload(id, StmtWhile)
	if !ok {
		return nil
	}
	return s.Whiles.Get(p)
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, 0)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, 0)
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	return s.new(StmtReturn, span, s.Returns.Allocate(StmtReturnData{Value: value}))
}

func (s *Stmts) Return(id StmtID) *StmtReturnData {
	p, ok := s.payload(id, StmtReturn)
	if !ok {
		return nil
	}
	return s.Returns.Get(p)
}

func (s *Stmts) NewDecl(span source.Span, decl DeclID) StmtID {
	return s.new(StmtDecl, span, s.Decls.Allocate(StmtDeclData{Decl: decl}))
}

func (s *Stmts) Decl(id StmtID) *StmtDeclData {
	p, ok := s.payload(id, StmtDecl)
	if !ok {
		return nil
	}
	return s.Decls.Get(p)
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	return s.new(StmtExpr, span, s.Exprs.Allocate(StmtExprData{Expr: expr}))
}

func (s *Stmts) Expr(id StmtID) *StmtExprData {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil
	}
	return s.Exprs.Get(p)
}
