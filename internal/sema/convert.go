package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/types"
)

func (c *Context) convert(e ast.ExprID, conv ast.ConversionKind, to types.TypeID) ast.ExprID {
	return c.Builder.Exprs.NewConversion(to, conv, e)
}

func (c *Context) convertToValue(e ast.ExprID) ast.ExprID {
	t := c.typeOf(e)
	if c.Types.IsReference(t) {
		return c.convert(e, ast.ConvValue, c.Types.ObjectType(t))
	}
	return e
}

func (c *Context) cannotConvert(e ast.ExprID, to types.TypeID) error {
	return c.errorf(diag.SemaInvalidConversion, c.spanOf(e),
		"cannot convert %s to %s", c.typeName(c.typeOf(e)), c.typeName(to))
}

func (c *Context) convertToBool(e ast.ExprID) (ast.ExprID, error) {
	e = c.convertToValue(e)
	switch c.Types.KindOf(c.typeOf(e)) {
	case types.KindBool:
		return e, nil
	case types.KindChar, types.KindInt, types.KindFloat, types.KindPointer, types.KindFn:
		return c.convert(e, ast.ConvBool, c.builtins.Bool), nil
	default:
		return ast.NoExprID, c.cannotConvert(e, c.builtins.Bool)
	}
}

func (c *Context) convertToChar(e ast.ExprID) (ast.ExprID, error) {
	e = c.convertToValue(e)
	switch c.Types.KindOf(c.typeOf(e)) {
	case types.KindChar:
		return e, nil
	case types.KindInt:
		return c.convert(e, ast.ConvChar, c.builtins.Char), nil
	default:
		return ast.NoExprID, c.cannotConvert(e, c.builtins.Char)
	}
}

func (c *Context) convertToInt(e ast.ExprID) (ast.ExprID, error) {
	e = c.convertToValue(e)
	switch c.Types.KindOf(c.typeOf(e)) {
	case types.KindInt:
		return e, nil
	case types.KindBool, types.KindChar:
		return c.convert(e, ast.ConvInt, c.builtins.Int), nil
	case types.KindFloat:
		return c.convert(e, ast.ConvTrunc, c.builtins.Int), nil
	default:
		return ast.NoExprID, c.cannotConvert(e, c.builtins.Int)
	}
}

func (c *Context) convertToFloat(e ast.ExprID) (ast.ExprID, error) {
	e = c.convertToValue(e)
	switch c.Types.KindOf(c.typeOf(e)) {
	case types.KindFloat:
		return e, nil
	case types.KindInt:
		return c.convert(e, ast.ConvExt, c.builtins.Float), nil
	default:
		return ast.NoExprID, c.cannotConvert(e, c.builtins.Float)
	}
}

// convertToType converts e to t following the conversion lattice.
// Object targets always receive a value, never a reference.
func (c *Context) convertToType(e ast.ExprID, t types.TypeID) (ast.ExprID, error) {
	if c.Types.IsObject(t) {
		e = c.convertToValue(e)
	}
	if c.Types.AreSame(c.typeOf(e), t) {
		return e, nil
	}
	switch c.Types.KindOf(t) {
	case types.KindBool:
		return c.convertToBool(e)
	case types.KindChar:
		return c.convertToChar(e)
	case types.KindInt:
		return c.convertToInt(e)
	case types.KindFloat:
		return c.convertToFloat(e)
	default:
		return ast.NoExprID, c.cannotConvert(e, t)
	}
}
