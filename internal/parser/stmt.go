package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// parseStmt выбирает распознаватель по первому токену.
func (p *Parser) parseStmt() (ast.StmtID, error) {
	switch p.peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhen:
		return p.parseWhen()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwBreak:
		return p.parseJump(p.ctx.OnBreakStatement)
	case token.KwContinue:
		return p.parseJump(p.ctx.OnContinueStatement)
	case token.KwReturn:
		return p.parseReturn()
	case token.KwVar, token.KwLet, token.KwDef:
		start := p.peek().Span
		d, err := p.parseLocalDecl()
		if err != nil {
			return ast.NoStmtID, err
		}
		return p.ctx.OnDeclareStatement(start.Cover(p.lastSpan), d), nil
	default:
		return p.parseExprStmt()
	}
}

// parseBlock: '{' stmt* '}' в собственной области видимости.
func (p *Parser) parseBlock() (ast.StmtID, error) {
	open, err := p.expect(token.LBrace, diag.SynUnexpectedToken, "'{'")
	if err != nil {
		return ast.NoStmtID, err
	}
	p.ctx.EnterBlockScope()
	var stmts []ast.StmtID
	for !p.atOr(token.RBrace, token.EOF, token.Invalid) {
		s, err := p.parseStmt()
		if err != nil {
			return ast.NoStmtID, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expect(token.RBrace, diag.SynUnclosedBrace, "'}'"); err != nil {
		return ast.NoStmtID, err
	}
	p.ctx.LeaveScope()
	return p.ctx.OnBlockStatement(open.Span.Cover(p.lastSpan), stmts), nil
}

// parseCondition: '(' expr ')'
func (p *Parser) parseCondition() (ast.ExprID, error) {
	if _, err := p.expect(token.LParen, diag.SynUnexpectedToken, "'('"); err != nil {
		return ast.NoExprID, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(token.RParen, diag.SynUnclosedParen, "')'"); err != nil {
		return ast.NoExprID, err
	}
	return cond, nil
}

// parseIf: 'if' '(' expr ')' stmt 'else' stmt; обе ветки обязательны.
func (p *Parser) parseIf() (ast.StmtID, error) {
	kw := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return ast.NoStmtID, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expect(token.KwElse, diag.SynExpectElse, "'else'"); err != nil {
		return ast.NoStmtID, err
	}
	els, err := p.parseStmt()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.ctx.OnIfStatement(kw.Span.Cover(p.lastSpan), cond, then, els)
}

func (p *Parser) parseWhen() (ast.StmtID, error) {
	kw := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return ast.NoStmtID, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return ast.NoStmtID, err
	}
	return p.ctx.OnWhenStatement(kw.Span.Cover(p.lastSpan), cond, body)
}

func (p *Parser) parseWhile() (ast.StmtID, error) {
	kw := p.advance()
	cond, err := p.parseCondition()
	if err != nil {
		return ast.NoStmtID, err
	}
	p.ctx.StartLoop()
	body, err := p.parseStmt()
	if err != nil {
		return ast.NoStmtID, err
	}
	p.ctx.FinishLoop()
	return p.ctx.OnWhileStatement(kw.Span.Cover(p.lastSpan), cond, body)
}

// parseJump: ('break' | 'continue') ';'
func (p *Parser) parseJump(action func(span source.Span) (ast.StmtID, error)) (ast.StmtID, error) {
	kw := p.advance()
	if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';'"); err != nil {
		return ast.NoStmtID, err
	}
	return action(kw.Span.Cover(p.lastSpan))
}

func (p *Parser) parseReturn() (ast.StmtID, error) {
	kw := p.advance()
	e, err := p.parseExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after return value"); err != nil {
		return ast.NoStmtID, err
	}
	return p.ctx.OnReturnStatement(kw.Span.Cover(p.lastSpan), e)
}

func (p *Parser) parseExprStmt() (ast.StmtID, error) {
	e, err := p.parseExpr()
	if err != nil {
		return ast.NoStmtID, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';'"); err != nil {
		return ast.NoStmtID, err
	}
	return p.ctx.OnExpressionStatement(p.spanOf(e).Cover(p.lastSpan), e), nil
}
