package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/types"
)

// requireReference accepts only expressions that designate an object.
func (c *Context) requireReference(e ast.ExprID) (ast.ExprID, error) {
	if !c.Types.IsReference(c.typeOf(e)) {
		return ast.NoExprID, c.errorf(diag.SemaNotReference, c.spanOf(e),
			"expected a reference, found %s", c.typeName(c.typeOf(e)))
	}
	return e, nil
}

// requireValue loads references; every other expression is already a value.
func (c *Context) requireValue(e ast.ExprID) ast.ExprID {
	return c.convertToValue(e)
}

// requireKind is the shared shape of the require* checks below:
// convert to a value, then test the value's type.
func (c *Context) requireKind(e ast.ExprID, ok func(types.TypeID) bool, code diag.Code, what string) (ast.ExprID, error) {
	e = c.requireValue(e)
	if !ok(c.typeOf(e)) {
		return ast.NoExprID, c.errorf(code, c.spanOf(e), "expected %s expression, found %s", what, c.typeName(c.typeOf(e)))
	}
	return e, nil
}

func (c *Context) requireArithmetic(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsArithmetic, diag.SemaNotArithmetic, "an arithmetic")
}

func (c *Context) requireNumeric(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsNumeric, diag.SemaNotNumeric, "a numeric")
}

func (c *Context) requireScalar(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsScalar, diag.SemaNotScalar, "a scalar")
}

func (c *Context) requireInteger(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsInt, diag.SemaNotInteger, "an integer")
}

func (c *Context) requireBoolean(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsBool, diag.SemaNotBoolean, "a boolean")
}

func (c *Context) requireFunction(e ast.ExprID) (ast.ExprID, error) {
	e = c.requireValue(e)
	if !c.Types.IsFunction(c.typeOf(e)) {
		return ast.NoExprID, c.errorf(diag.SemaNotCallable, c.spanOf(e), "%s is not callable", c.typeName(c.typeOf(e)))
	}
	return e, nil
}

func (c *Context) requirePointer(e ast.ExprID) (ast.ExprID, error) {
	return c.requireKind(e, c.Types.IsPointer, diag.SemaNotPointer, "a pointer")
}

// requireSame fails unless a and b are structurally equal; at is the
// expression blamed for the mismatch.
func (c *Context) requireSame(a, b types.TypeID, at ast.ExprID) (types.TypeID, error) {
	if !c.Types.AreSame(a, b) {
		return types.NoTypeID, c.errorf(diag.SemaTypeMismatch, c.spanOf(at),
			"type mismatch: expected %s, found %s", c.typeName(a), c.typeName(b))
	}
	return a, nil
}

// commonType: equal types, or a reference widened to the other side's object type.
func (c *Context) commonType(a, b types.TypeID, at ast.ExprID) (types.TypeID, error) {
	switch {
	case c.Types.AreSame(a, b):
		return a, nil
	case c.Types.IsReferenceTo(a, b):
		return b, nil
	case c.Types.IsReferenceTo(b, a):
		return a, nil
	}
	return types.NoTypeID, c.errorf(diag.SemaNoCommonType, c.spanOf(at),
		"no common type for %s and %s", c.typeName(a), c.typeName(b))
}
