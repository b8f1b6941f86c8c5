package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/ast"
	"sable/internal/source"
	"sable/internal/types"
)

// CheckTreeInvariants runs a minimal set of invariants on a successfully parsed program:
// 1) every reachable node span lies inside the file content
// 2) every expression carries a type
// 3) an expression span covers the spans of its operands
func CheckTreeInvariants(b *ast.Builder, prog ast.DeclID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	w := walker{b: b, file: sf.ID, size: lenContent}
	d := b.Decls.Get(prog)
	if d == nil || d.Kind != ast.DeclProgram {
		return fmt.Errorf("declaration %d is not a program", prog)
	}
	for _, child := range b.Decls.Program(prog).Decls {
		if err := w.decl(child); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	b    *ast.Builder
	file source.FileID
	size uint32
}

func (w walker) span(what string, sp source.Span) error {
	if sp.File != w.file {
		return fmt.Errorf("%s span points to different file id: got=%d want=%d", what, sp.File, w.file)
	}
	if sp.Start > sp.End || sp.End > w.size {
		return fmt.Errorf("%s span %v outside content (%d bytes)", what, sp, w.size)
	}
	return nil
}

func (w walker) decl(id ast.DeclID) error {
	d := w.b.Decls.Get(id)
	if d == nil {
		return fmt.Errorf("decl %d not found", id)
	}
	if err := w.span("decl "+d.Kind.String(), d.Span); err != nil {
		return err
	}
	if d.Type == types.NoTypeID {
		return fmt.Errorf("decl %s at %v has no type", d.Kind, d.Span)
	}
	switch {
	case d.Kind == ast.DeclFunction:
		fn := w.b.Decls.Function(id)
		for _, p := range fn.Params {
			if err := w.decl(p); err != nil {
				return err
			}
		}
		if !fn.Body.IsValid() {
			return fmt.Errorf("function at %v has no body", d.Span)
		}
		return w.stmt(fn.Body)
	case d.Kind.IsObject():
		if obj := w.b.Decls.Object(id); obj != nil && obj.Init.IsValid() {
			return w.expr(obj.Init)
		}
	}
	return nil
}

func (w walker) stmt(id ast.StmtID) error {
	s := w.b.Stmts.Get(id)
	if s == nil {
		return fmt.Errorf("stmt %d not found", id)
	}
	if err := w.span("stmt "+s.Kind.String(), s.Span); err != nil {
		return err
	}
	var exprs []ast.ExprID
	var stmts []ast.StmtID
	switch s.Kind {
	case ast.StmtBlock:
		stmts = w.b.Stmts.Block(id).Stmts
	case ast.StmtWhen:
		data := w.b.Stmts.When(id)
		exprs, stmts = []ast.ExprID{data.Cond}, []ast.StmtID{data.Body}
	case ast.StmtIf:
		data := w.b.Stmts.If(id)
		exprs, stmts = []ast.ExprID{data.Cond}, []ast.StmtID{data.Then, data.Else}
	case ast.StmtWhile:
		data := w.b.Stmts.While(id)
		exprs, stmts = []ast.ExprID{data.Cond}, []ast.StmtID{data.Body}
	case ast.StmtReturn:
		exprs = []ast.ExprID{w.b.Stmts.Return(id).Value}
	case ast.StmtExpr:
		exprs = []ast.ExprID{w.b.Stmts.Expr(id).Expr}
	case ast.StmtDecl:
		return w.decl(w.b.Stmts.Decl(id).Decl)
	}
	for _, e := range exprs {
		if !e.IsValid() {
			continue
		}
		if err := w.expr(e); err != nil {
			return err
		}
	}
	for _, st := range stmts {
		if !st.IsValid() {
			continue
		}
		if err := w.stmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (w walker) expr(id ast.ExprID) error {
	e := w.b.Exprs.Get(id)
	if e == nil {
		return fmt.Errorf("expr %d not found", id)
	}
	if err := w.span("expr "+e.Kind.String(), e.Span); err != nil {
		return err
	}
	if e.Type == types.NoTypeID {
		return fmt.Errorf("expr %s at %v has no type", e.Kind, e.Span)
	}
	for _, child := range w.operands(id, e.Kind) {
		c := w.b.Exprs.Get(child)
		if c == nil {
			return fmt.Errorf("expr %s at %v: operand %d not found", e.Kind, e.Span, child)
		}
		if c.Span.Start < e.Span.Start || c.Span.End > e.Span.End {
			return fmt.Errorf("expr %s span %v does not cover operand %s span %v", e.Kind, e.Span, c.Kind, c.Span)
		}
		if err := w.expr(child); err != nil {
			return err
		}
	}
	return nil
}

func (w walker) operands(id ast.ExprID, kind ast.ExprKind) []ast.ExprID {
	x := w.b.Exprs
	switch kind {
	case ast.ExprUnary:
		if d, ok := x.Unary(id); ok {
			return []ast.ExprID{d.Operand}
		}
	case ast.ExprBinary:
		if d, ok := x.Binary(id); ok {
			return []ast.ExprID{d.Left, d.Right}
		}
	case ast.ExprCall:
		if d, ok := x.Call(id); ok {
			return append([]ast.ExprID{d.Callee}, d.Args...)
		}
	case ast.ExprIndex:
		if d, ok := x.Index(id); ok {
			return append([]ast.ExprID{d.Base}, d.Args...)
		}
	case ast.ExprCast:
		if d, ok := x.Cast(id); ok {
			return []ast.ExprID{d.Value}
		}
	case ast.ExprAssign:
		if d, ok := x.Assign(id); ok {
			return []ast.ExprID{d.Target, d.Value}
		}
	case ast.ExprConditional:
		if d, ok := x.Conditional(id); ok {
			return []ast.ExprID{d.Cond, d.Then, d.Else}
		}
	case ast.ExprConversion:
		if d, ok := x.Conversion(id); ok {
			return []ast.ExprID{d.Value}
		}
	}
	return nil
}
