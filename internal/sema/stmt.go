package sema

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
)

func (c *Context) OnBlockStatement(span source.Span, stmts []ast.StmtID) ast.StmtID {
	return c.Builder.Stmts.NewBlock(span, stmts)
}

// condition converts a statement condition to a boolean value.
func (c *Context) condition(e ast.ExprID) (ast.ExprID, error) {
	return c.requireBoolean(e)
}

func (c *Context) OnWhenStatement(span source.Span, cond ast.ExprID, body ast.StmtID) (ast.StmtID, error) {
	cond, err := c.condition(cond)
	if err != nil {
		return ast.NoStmtID, err
	}
	return c.Builder.Stmts.NewWhen(span, cond, body), nil
}

func (c *Context) OnIfStatement(span source.Span, cond ast.ExprID, then, els ast.StmtID) (ast.StmtID, error) {
	cond, err := c.condition(cond)
	if err != nil {
		return ast.NoStmtID, err
	}
	return c.Builder.Stmts.NewIf(span, cond, then, els), nil
}

func (c *Context) OnWhileStatement(span source.Span, cond ast.ExprID, body ast.StmtID) (ast.StmtID, error) {
	cond, err := c.condition(cond)
	if err != nil {
		return ast.NoStmtID, err
	}
	return c.Builder.Stmts.NewWhile(span, cond, body), nil
}

func (c *Context) OnBreakStatement(span source.Span) (ast.StmtID, error) {
	if !c.InLoop() {
		return ast.NoStmtID, c.errorf(diag.SemaBreakOutsideLoop, span, "break outside of a loop")
	}
	return c.Builder.Stmts.NewBreak(span), nil
}

func (c *Context) OnContinueStatement(span source.Span) (ast.StmtID, error) {
	if !c.InLoop() {
		return ast.NoStmtID, c.errorf(diag.SemaContinueOutsideLoop, span, "continue outside of a loop")
	}
	return c.Builder.Stmts.NewContinue(span), nil
}

// OnReturnStatement checks the returned value against the result type of
// the enclosing function.
func (c *Context) OnReturnStatement(span source.Span, e ast.ExprID) (ast.StmtID, error) {
	fn := c.Builder.Decls.Function(c.function)
	if fn == nil {
		return ast.NoStmtID, c.errorf(diag.SemaReturnOutsideFunc, span, "return outside of a function")
	}
	e = c.requireValue(e)
	if _, err := c.requireSame(fn.Result, c.typeOf(e), e); err != nil {
		return ast.NoStmtID, err
	}
	return c.Builder.Stmts.NewReturn(span, e), nil
}

func (c *Context) OnDeclareStatement(span source.Span, d ast.DeclID) ast.StmtID {
	return c.Builder.Stmts.NewDecl(span, d)
}

func (c *Context) OnExpressionStatement(span source.Span, e ast.ExprID) ast.StmtID {
	return c.Builder.Stmts.NewExpr(span, e)
}
