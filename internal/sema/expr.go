package sema

import (
	"fmt"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
	"sable/internal/types"
)

// OnBasicType maps a type-name token to its builtin type.
func (c *Context) OnBasicType(tok token.Token) types.TypeID {
	switch tok.TypeSpec() {
	case token.SpecBool:
		return c.builtins.Bool
	case token.SpecChar:
		return c.builtins.Char
	case token.SpecInt:
		return c.builtins.Int
	case token.SpecFloat:
		return c.builtins.Float
	default:
		panic(fmt.Errorf("sema: unknown type specifier %v", tok.TypeSpec()))
	}
}

// OnPointerType builds `*elem`.
func (c *Context) OnPointerType(elem types.TypeID) types.TypeID {
	return c.Types.Pointer(elem)
}

func (c *Context) OnIntegerLiteral(tok token.Token) ast.ExprID {
	v, radix := tok.Int()
	return c.Builder.Exprs.NewInt(tok.Span, c.builtins.Int, v, radix)
}

func (c *Context) OnFloatLiteral(tok token.Token) ast.ExprID {
	return c.Builder.Exprs.NewFloat(tok.Span, c.builtins.Float, tok.Float())
}

func (c *Context) OnBooleanLiteral(tok token.Token) ast.ExprID {
	return c.Builder.Exprs.NewBool(tok.Span, c.builtins.Bool, tok.Bool())
}

func (c *Context) OnCharLiteral(tok token.Token) ast.ExprID {
	return c.Builder.Exprs.NewChar(tok.Span, c.builtins.Char, tok.Char())
}

// OnStringLiteral always fails: the type system has no string type.
func (c *Context) OnStringLiteral(tok token.Token) (ast.ExprID, error) {
	return ast.NoExprID, diag.Errorf(diag.SemaStringNotSupported, tok.Span, tok.Loc,
		"string literals cannot be used in expressions")
}

// OnIdExpression resolves a name. Variables and parameters (bound as
// locals of the function body) evaluate to a reference to their type;
// every other declaration evaluates to its type.
func (c *Context) OnIdExpression(tok token.Token) (ast.ExprID, error) {
	name := tok.Symbol()
	d, ok := c.Lookup(name)
	if !ok {
		return ast.NoExprID, diag.Errorf(diag.SemaUnresolvedSymbol, tok.Span, tok.Loc,
			"no matching declaration for '%s'", c.name(name))
	}
	decl := c.Builder.Decls.Get(d)
	t := decl.Type
	if decl.Kind == ast.DeclVariable || decl.Kind == ast.DeclParameter {
		t = c.Types.Reference(t)
	}
	return c.Builder.Exprs.NewIdent(tok.Span, t, name, d), nil
}

var assignOps = map[token.Kind]ast.ExprBinaryOp{
	token.Assign:        ast.ExprBinaryNone,
	token.PlusAssign:    ast.ExprBinaryAdd,
	token.MinusAssign:   ast.ExprBinarySub,
	token.StarAssign:    ast.ExprBinaryMul,
	token.SlashAssign:   ast.ExprBinaryDiv,
	token.PercentAssign: ast.ExprBinaryRem,
}

// OnAssignmentExpression checks `lhs op= rhs`. The target must be a
// reference; the result is that same reference.
func (c *Context) OnAssignmentExpression(op token.Token, lhs, rhs ast.ExprID) (ast.ExprID, error) {
	bop, ok := assignOps[op.Kind]
	if !ok {
		panic(fmt.Errorf("sema: %v is not an assignment operator", op.Kind))
	}
	lhs, err := c.requireReference(lhs)
	if err != nil {
		return ast.NoExprID, err
	}
	if bop == ast.ExprBinaryNone {
		rhs = c.requireValue(rhs)
	} else if rhs, err = c.requireArithmetic(rhs); err != nil {
		return ast.NoExprID, err
	}
	target := c.Types.ObjectType(c.typeOf(lhs))
	if bop != ast.ExprBinaryNone && !c.Types.IsArithmetic(target) {
		return ast.NoExprID, c.errorf(diag.SemaNotArithmetic, c.spanOf(lhs),
			"expected an arithmetic target for '%s', found %s", op.Kind, c.typeName(target))
	}
	if _, err := c.requireSame(target, c.typeOf(rhs), rhs); err != nil {
		return ast.NoExprID, err
	}
	span := c.spanOf(lhs).Cover(c.spanOf(rhs))
	return c.Builder.Exprs.NewAssign(span, c.typeOf(lhs), bop, lhs, rhs), nil
}

// OnConditionalExpression types `cond ? a : b` with the common type of the branches.
func (c *Context) OnConditionalExpression(cond, then, els ast.ExprID) (ast.ExprID, error) {
	cond, err := c.requireBoolean(cond)
	if err != nil {
		return ast.NoExprID, err
	}
	t, err := c.commonType(c.typeOf(then), c.typeOf(els), els)
	if err != nil {
		return ast.NoExprID, err
	}
	if then, err = c.convertToType(then, t); err != nil {
		return ast.NoExprID, err
	}
	if els, err = c.convertToType(els, t); err != nil {
		return ast.NoExprID, err
	}
	span := c.spanOf(cond).Cover(c.spanOf(els))
	return c.Builder.Exprs.NewConditional(span, t, cond, then, els), nil
}

var binaryOps = map[token.Kind]ast.ExprBinaryOp{
	token.KwOr:    ast.ExprBinaryLogicalOr,
	token.KwAnd:   ast.ExprBinaryLogicalAnd,
	token.Pipe:    ast.ExprBinaryBitOr,
	token.Caret:   ast.ExprBinaryBitXor,
	token.Amp:     ast.ExprBinaryBitAnd,
	token.EqEq:    ast.ExprBinaryEq,
	token.BangEq:  ast.ExprBinaryNotEq,
	token.Lt:      ast.ExprBinaryLess,
	token.LtEq:    ast.ExprBinaryLessEq,
	token.Gt:      ast.ExprBinaryGreater,
	token.GtEq:    ast.ExprBinaryGreaterEq,
	token.Shl:     ast.ExprBinaryShl,
	token.Shr:     ast.ExprBinaryShr,
	token.Plus:    ast.ExprBinaryAdd,
	token.Minus:   ast.ExprBinarySub,
	token.Star:    ast.ExprBinaryMul,
	token.Slash:   ast.ExprBinaryDiv,
	token.Percent: ast.ExprBinaryRem,
}

// BinaryOp maps an operator token to its binary operator.
func BinaryOp(k token.Kind) (ast.ExprBinaryOp, bool) {
	op, ok := binaryOps[k]
	return op, ok
}

// OnBinaryExpression types every binary operator level of the grammar.
func (c *Context) OnBinaryExpression(op token.Token, lhs, rhs ast.ExprID) (ast.ExprID, error) {
	bop, ok := binaryOps[op.Kind]
	if !ok {
		panic(fmt.Errorf("sema: %v is not a binary operator", op.Kind))
	}
	var (
		require func(ast.ExprID) (ast.ExprID, error)
		result  types.TypeID
	)
	switch {
	case bop.IsLogical():
		require, result = c.requireBoolean, c.builtins.Bool
	case bop.IsBitwise():
		require, result = c.requireInteger, c.builtins.Int
	case bop.IsEquality():
		require, result = c.requireScalar, c.builtins.Bool
	case bop.IsRelational():
		require, result = c.requireNumeric, c.builtins.Bool
	default:
		require = c.requireArithmetic
	}
	lhs, err := require(lhs)
	if err != nil {
		return ast.NoExprID, err
	}
	if rhs, err = require(rhs); err != nil {
		return ast.NoExprID, err
	}
	if bop.IsArithmetic() {
		if result, err = c.requireSame(c.typeOf(lhs), c.typeOf(rhs), rhs); err != nil {
			return ast.NoExprID, err
		}
	}
	span := c.spanOf(lhs).Cover(c.spanOf(rhs))
	return c.Builder.Exprs.NewBinary(span, result, bop, lhs, rhs), nil
}

// OnCastExpression handles `e as T`.
func (c *Context) OnCastExpression(span source.Span, e ast.ExprID, t types.TypeID) (ast.ExprID, error) {
	e, err := c.convertToType(e, t)
	if err != nil {
		return ast.NoExprID, err
	}
	return c.Builder.Exprs.NewCast(span, e, t), nil
}

var unaryOps = map[token.Kind]ast.ExprUnaryOp{
	token.Plus:  ast.ExprUnaryPlus,
	token.Minus: ast.ExprUnaryMinus,
	token.Tilde: ast.ExprUnaryBitNot,
	token.KwNot: ast.ExprUnaryNot,
	token.Amp:   ast.ExprUnaryAddr,
	token.Star:  ast.ExprUnaryDeref,
}

// IsUnaryOp reports whether k starts a prefix expression.
func IsUnaryOp(k token.Kind) bool {
	_, ok := unaryOps[k]
	return ok
}

// OnUnaryExpression types a prefix operator.
// `&e` needs a reference and yields a pointer; `*p` needs a pointer and yields a reference.
func (c *Context) OnUnaryExpression(op token.Token, e ast.ExprID) (ast.ExprID, error) {
	uop, ok := unaryOps[op.Kind]
	if !ok {
		panic(fmt.Errorf("sema: %v is not a unary operator", op.Kind))
	}
	var (
		t   types.TypeID
		err error
	)
	switch uop {
	case ast.ExprUnaryPlus, ast.ExprUnaryMinus:
		e, err = c.requireArithmetic(e)
		if err == nil {
			t = c.typeOf(e)
		}
	case ast.ExprUnaryBitNot:
		e, err = c.requireInteger(e)
		t = c.builtins.Int
	case ast.ExprUnaryNot:
		e, err = c.requireBoolean(e)
		t = c.builtins.Bool
	case ast.ExprUnaryAddr:
		e, err = c.requireReference(e)
		if err == nil {
			t = c.Types.Pointer(c.Types.ObjectType(c.typeOf(e)))
		}
	case ast.ExprUnaryDeref:
		e, err = c.requirePointer(e)
		if err == nil {
			t = c.Types.Reference(c.Types.Elem(c.typeOf(e)))
		}
	}
	if err != nil {
		return ast.NoExprID, err
	}
	span := op.Span.Cover(c.spanOf(e))
	return c.Builder.Exprs.NewUnary(span, t, uop, e), nil
}

// OnCallExpression checks arity and that every argument value has exactly
// the parameter's type.
func (c *Context) OnCallExpression(span source.Span, callee ast.ExprID, args []ast.ExprID) (ast.ExprID, error) {
	callee, err := c.requireFunction(callee)
	if err != nil {
		return ast.NoExprID, err
	}
	fn, _ := c.Types.FnInfo(c.typeOf(callee))
	if len(args) != len(fn.Params) {
		kind := "too many"
		if len(args) < len(fn.Params) {
			kind = "too few"
		}
		return ast.NoExprID, c.errorf(diag.SemaArityMismatch, span,
			"%s arguments: expected %d, found %d", kind, len(fn.Params), len(args))
	}
	for i, p := range fn.Params {
		args[i] = c.requireValue(args[i])
		if !c.Types.AreSame(c.typeOf(args[i]), p) {
			return ast.NoExprID, c.errorf(diag.SemaTypeMismatch, c.spanOf(args[i]),
				"argument %d: expected %s, found %s", i+1, c.typeName(p), c.typeName(c.typeOf(args[i])))
		}
	}
	return c.Builder.Exprs.NewCall(span, fn.Result, callee, args), nil
}

// OnIndexExpression types `p[i]`: a pointer base and a single integer index
// designate the object at that offset.
func (c *Context) OnIndexExpression(span source.Span, base ast.ExprID, args []ast.ExprID) (ast.ExprID, error) {
	base, err := c.requirePointer(base)
	if err != nil {
		return ast.NoExprID, err
	}
	if len(args) != 1 {
		return ast.NoExprID, c.errorf(diag.SemaArityMismatch, span, "index takes exactly one operand, found %d", len(args))
	}
	if args[0], err = c.requireInteger(args[0]); err != nil {
		return ast.NoExprID, err
	}
	t := c.Types.Reference(c.Types.Elem(c.typeOf(base)))
	return c.Builder.Exprs.NewIndex(span, t, base, args), nil
}
