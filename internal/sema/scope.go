package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/symbols"
)

func (c *Context) EnterGlobalScope() {
	if c.Scopes.Depth() != 0 {
		panic("sema: global scope must be outermost")
	}
	c.Scopes.Enter(symbols.ScopeGlobal)
}

func (c *Context) EnterParameterScope() {
	c.Scopes.Enter(symbols.ScopeParameter)
}

// EnterBlockScope opens a block. The outermost block of a function body
// also receives the function's parameters, so they are visible as locals.
func (c *Context) EnterBlockScope() {
	parent := c.Scopes.Current()
	c.Scopes.Enter(symbols.ScopeBlock)
	if parent == nil || parent.Kind != symbols.ScopeParameter {
		return
	}
	fn := c.Builder.Decls.Function(c.function)
	if fn == nil {
		return
	}
	for _, p := range fn.Params {
		// параметры уже уникальны в своей области
		c.Scopes.Declare(c.Builder.Decls.Get(p).Name, p)
	}
}

func (c *Context) LeaveScope() {
	c.Scopes.Leave()
}

// StartLoop and FinishLoop bracket the body of a while statement.
func (c *Context) StartLoop()  { c.loops++ }
func (c *Context) FinishLoop() { c.loops-- }

// Declare binds d in the current scope, failing on a duplicate name.
func (c *Context) Declare(d ast.DeclID) error {
	return c.declareIn(c.Scopes.Current(), d)
}

func (c *Context) declareIn(scope *symbols.Scope, d ast.DeclID) error {
	if scope == nil {
		panic("sema: declaration outside of any scope")
	}
	decl := c.Builder.Decls.Get(d)
	prev, ok := scope.Declare(decl.Name, d)
	if ok {
		return nil
	}
	err := c.errorf(diag.SemaDuplicateSymbol, decl.Span, "redeclaration of '%s'", c.name(decl.Name))
	if p := c.Builder.Decls.Get(prev); p != nil {
		err = err.WithNote(p.Span, "previous declaration is here")
	}
	return err
}

// Lookup resolves a name through the open scopes.
func (c *Context) Lookup(name source.StringID) (ast.DeclID, bool) {
	return c.Scopes.Lookup(name)
}
