package sema

import (
	"sable/internal/ast"
	"sable/internal/source"
	"sable/internal/symbols"
	"sable/internal/token"
	"sable/internal/types"
)

// onObjectDeclaration creates and declares an object before its
// initializer is checked, so the initializer may refer to it.
func (c *Context) onObjectDeclaration(kind ast.DeclKind, name token.Token, t types.TypeID) (ast.DeclID, error) {
	d := c.Builder.Decls.NewObject(kind, name.Span, name.Symbol(), t)
	if err := c.Declare(d); err != nil {
		return ast.NoDeclID, err
	}
	return d, nil
}

// onObjectDefinition attaches the initializer; its value must have the declared type.
func (c *Context) onObjectDefinition(d ast.DeclID, init ast.ExprID) (ast.DeclID, error) {
	decl := c.Builder.Decls.Get(d)
	init = c.requireValue(init)
	if _, err := c.requireSame(decl.Type, c.typeOf(init), init); err != nil {
		return ast.NoDeclID, err
	}
	c.Builder.Decls.SetInit(d, init)
	decl.Span = decl.Span.Cover(c.spanOf(init))
	return d, nil
}

func (c *Context) OnVariableDeclaration(name token.Token, t types.TypeID) (ast.DeclID, error) {
	return c.onObjectDeclaration(ast.DeclVariable, name, t)
}

func (c *Context) OnVariableDefinition(d ast.DeclID, init ast.ExprID) (ast.DeclID, error) {
	return c.onObjectDefinition(d, init)
}

func (c *Context) OnConstantDeclaration(name token.Token, t types.TypeID) (ast.DeclID, error) {
	return c.onObjectDeclaration(ast.DeclConstant, name, t)
}

func (c *Context) OnConstantDefinition(d ast.DeclID, init ast.ExprID) (ast.DeclID, error) {
	return c.onObjectDefinition(d, init)
}

func (c *Context) OnValueDeclaration(name token.Token, t types.TypeID) (ast.DeclID, error) {
	return c.onObjectDeclaration(ast.DeclValue, name, t)
}

func (c *Context) OnValueDefinition(d ast.DeclID, init ast.ExprID) (ast.DeclID, error) {
	return c.onObjectDefinition(d, init)
}

// OnParameterDeclaration declares a parameter in the parameter scope.
func (c *Context) OnParameterDeclaration(name token.Token, t types.TypeID) (ast.DeclID, error) {
	return c.onObjectDeclaration(ast.DeclParameter, name, t)
}

// OnFunctionDeclaration is called with the parameter scope still open.
// The function itself goes into the enclosing scope and becomes the
// current function until OnFunctionDefinition.
func (c *Context) OnFunctionDeclaration(name token.Token, params []ast.DeclID, result types.TypeID) (ast.DeclID, error) {
	if c.function.IsValid() {
		panic("sema: nested function declaration")
	}
	scope := c.Scopes.Current()
	if scope == nil || scope.Kind != symbols.ScopeParameter {
		panic("sema: function declared outside of a parameter scope")
	}
	paramTypes := make([]types.TypeID, len(params))
	for i, p := range params {
		paramTypes[i] = c.Builder.Decls.Get(p).Type
	}
	ft := c.Types.RegisterFn(paramTypes, result)
	d := c.Builder.Decls.NewFunction(name.Span, name.Symbol(), ft, params, result)
	if err := c.declareIn(scope.Parent, d); err != nil {
		return ast.NoDeclID, err
	}
	c.function = d
	return d, nil
}

// OnFunctionDefinition attaches the body and clears the current function.
func (c *Context) OnFunctionDefinition(d ast.DeclID, body ast.StmtID) ast.DeclID {
	if c.function != d {
		panic("sema: function definition does not match the current function")
	}
	c.Builder.Decls.SetBody(d, body)
	if st := c.Builder.Stmts.Get(body); st != nil {
		decl := c.Builder.Decls.Get(d)
		decl.Span = decl.Span.Cover(st.Span)
	}
	c.function = ast.NoDeclID
	return d
}

func (c *Context) OnProgram(span source.Span, decls []ast.DeclID) ast.DeclID {
	return c.Builder.Decls.NewProgram(span, decls)
}
