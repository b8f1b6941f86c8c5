package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/token"
	"sable/internal/trace"
	"sable/internal/types"
)

type objectActions struct {
	declare func(token.Token, types.TypeID) (ast.DeclID, error)
	define  func(ast.DeclID, ast.ExprID) (ast.DeclID, error)
}

func (p *Parser) objectActionsFor(kw token.Kind) objectActions {
	switch kw {
	case token.KwVar:
		return objectActions{p.ctx.OnVariableDeclaration, p.ctx.OnVariableDefinition}
	case token.KwLet:
		return objectActions{p.ctx.OnConstantDeclaration, p.ctx.OnConstantDefinition}
	default:
		return objectActions{p.ctx.OnValueDeclaration, p.ctx.OnValueDefinition}
	}
}

// isFunctionAhead: `def name (` означает функцию; нужен просмотр на два токена.
func (p *Parser) isFunctionAhead() bool {
	return p.at(token.KwDef) && p.peekN(1).Kind == token.Ident && p.peekN(2).Kind == token.LParen
}

// parseTopLevelDecl: 'var' object | 'let' object | 'def' (function | object)
func (p *Parser) parseTopLevelDecl() (ast.DeclID, error) {
	if !p.atOr(token.KwVar, token.KwLet, token.KwDef) {
		return ast.NoDeclID, p.errorf(diag.SynExpectDeclaration, "expected declaration, found %s", describe(p.peek()))
	}
	span := trace.Begin(p.ctx.Tracer, trace.ScopeNode, "decl", p.ctx.TraceParent)
	var (
		d   ast.DeclID
		err error
	)
	if p.isFunctionAhead() {
		d, err = p.parseFunction()
	} else {
		d, err = p.parseObject()
	}
	if err != nil {
		trace.Failure(p.ctx.Tracer, trace.ScopeNode, "decl", err, span.ID())
		span.End("error")
		return ast.NoDeclID, err
	}
	decl := p.ctx.Builder.Decls.Get(d)
	span.WithField("name", p.ctx.Strings.MustLookup(decl.Name)).End(decl.Kind.String())
	return d, nil
}

// parseLocalDecl: объявление внутри блока; функции там запрещены.
func (p *Parser) parseLocalDecl() (ast.DeclID, error) {
	if p.isFunctionAhead() {
		return ast.NoDeclID, p.errorf(diag.SynFnNotAllowed, "functions can only be declared at the top level")
	}
	return p.parseObject()
}

// parseObject: kw IDENT ':' type '=' expr ';'
// Объект объявляется до разбора инициализатора.
func (p *Parser) parseObject() (ast.DeclID, error) {
	kw := p.advance()
	actions := p.objectActionsFor(kw.Kind)
	name, err := p.expect(token.Ident, diag.SynExpectIdentifier, "identifier")
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Colon, diag.SynExpectColon, "':' and a type"); err != nil {
		return ast.NoDeclID, err
	}
	t, err := p.parseType()
	if err != nil {
		return ast.NoDeclID, err
	}
	d, err := actions.declare(name, t)
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Assign, diag.SynExpectInitializer, "'=' and an initializer"); err != nil {
		return ast.NoDeclID, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';'"); err != nil {
		return ast.NoDeclID, err
	}
	return actions.define(d, init)
}

// parseFunction: 'def' IDENT '(' params ')' '->' type block
func (p *Parser) parseFunction() (ast.DeclID, error) {
	p.advance() // def
	name := p.advance()
	p.advance() // (

	p.ctx.EnterParameterScope()
	var params []ast.DeclID
	if !p.at(token.RParen) {
		for {
			d, err := p.parseParam()
			if err != nil {
				return ast.NoDeclID, err
			}
			params = append(params, d)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RParen, diag.SynUnclosedParen, "')' after parameters"); err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Arrow, diag.SynExpectArrow, "'->' and a result type"); err != nil {
		return ast.NoDeclID, err
	}
	result, err := p.parseType()
	if err != nil {
		return ast.NoDeclID, err
	}
	fn, err := p.ctx.OnFunctionDeclaration(name, params, result)
	if err != nil {
		return ast.NoDeclID, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return ast.NoDeclID, err
	}
	p.ctx.LeaveScope()
	return p.ctx.OnFunctionDefinition(fn, body), nil
}

// parseParam: IDENT ':' type
func (p *Parser) parseParam() (ast.DeclID, error) {
	name, err := p.expect(token.Ident, diag.SynExpectIdentifier, "parameter name")
	if err != nil {
		return ast.NoDeclID, err
	}
	if _, err := p.expect(token.Colon, diag.SynExpectColon, "':' and a parameter type"); err != nil {
		return ast.NoDeclID, err
	}
	t, err := p.parseType()
	if err != nil {
		return ast.NoDeclID, err
	}
	return p.ctx.OnParameterDeclaration(name, t)
}
