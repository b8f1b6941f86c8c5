package parser

import (
	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/sema"
	"sable/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений
func (p *Parser) parseExpr() (ast.ExprID, error) {
	return p.parseAssignment()
}

// parseAssignment: cond ( assign-op assignment )?, правоассоциативно.
func (p *Parser) parseAssignment() (ast.ExprID, error) {
	lhs, err := p.parseConditional()
	if err != nil {
		return ast.NoExprID, err
	}
	if !p.peek().Kind.IsAssignOp() {
		return lhs, nil
	}
	op := p.advance()
	rhs, err := p.parseAssignment()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.ctx.OnAssignmentExpression(op, lhs, rhs)
}

// parseConditional: or-expr ( '?' expr ':' conditional )?
func (p *Parser) parseConditional() (ast.ExprID, error) {
	cond, err := p.parseBinary(precLogicalOr)
	if err != nil || !p.at(token.Question) {
		return cond, err
	}
	p.advance()
	then, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if _, err := p.expect(token.Colon, diag.SynExpectColon, "':' in conditional expression"); err != nil {
		return ast.NoExprID, err
	}
	els, err := p.parseConditional()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.ctx.OnConditionalExpression(cond, then, els)
}

// parseBinary (precedence climbing) разбирает уровень выше, затем, пока
// оператор не слабее minPrec, сворачивает влево.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, error) {
	left, err := p.parseCast()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		prec := binaryPrec(p.peek().Kind)
		if prec < minPrec {
			return left, nil
		}
		op := p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return ast.NoExprID, err
		}
		if left, err = p.ctx.OnBinaryExpression(op, left, right); err != nil {
			return ast.NoExprID, err
		}
	}
}

// parseCast: unary ( 'as' type )*
func (p *Parser) parseCast() (ast.ExprID, error) {
	e, err := p.parseUnary()
	if err != nil {
		return ast.NoExprID, err
	}
	for p.at(token.KwAs) {
		p.advance()
		t, err := p.parseType()
		if err != nil {
			return ast.NoExprID, err
		}
		if e, err = p.ctx.OnCastExpression(p.spanOf(e).Cover(p.lastSpan), e, t); err != nil {
			return ast.NoExprID, err
		}
	}
	return e, nil
}

// parseUnary обрабатывает префиксные операторы рекурсивно.
func (p *Parser) parseUnary() (ast.ExprID, error) {
	tok := p.peek()
	if tok.Is(token.PlusPlus, token.MinusMinus) {
		return ast.NoExprID, p.errorf(diag.SynIncDecNotSupported, "'%s' is not supported, use '%c='", tok.Text, tok.Text[0])
	}
	if !sema.IsUnaryOp(tok.Kind) {
		return p.parsePostfix()
	}
	op := p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return ast.NoExprID, err
	}
	return p.ctx.OnUnaryExpression(op, operand)
}

// parsePostfix: primary ( '(' args ')' | '[' args ']' )*
func (p *Parser) parsePostfix() (ast.ExprID, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return ast.NoExprID, err
	}
	for {
		switch {
		case p.at(token.LParen):
			p.advance()
			args, err := p.parseArgs(token.RParen, diag.SynUnclosedParen, "')'")
			if err != nil {
				return ast.NoExprID, err
			}
			if e, err = p.ctx.OnCallExpression(p.spanOf(e).Cover(p.lastSpan), e, args); err != nil {
				return ast.NoExprID, err
			}
		case p.at(token.LBracket):
			p.advance()
			args, err := p.parseArgs(token.RBracket, diag.SynUnclosedBracket, "']'")
			if err != nil {
				return ast.NoExprID, err
			}
			if e, err = p.ctx.OnIndexExpression(p.spanOf(e).Cover(p.lastSpan), e, args); err != nil {
				return ast.NoExprID, err
			}
		case p.atOr(token.PlusPlus, token.MinusMinus):
			tok := p.peek()
			return ast.NoExprID, p.errorf(diag.SynIncDecNotSupported, "'%s' is not supported, use '%c='", tok.Text, tok.Text[0])
		default:
			return e, nil
		}
	}
}

// parseArgs разбирает список выражений через запятую до закрывающей скобки
// (открывающая уже съедена).
func (p *Parser) parseArgs(closing token.Kind, code diag.Code, what string) ([]ast.ExprID, error) {
	var args []ast.ExprID
	if !p.at(closing) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(closing, code, what); err != nil {
		return nil, err
	}
	return args, nil
}

// parsePrimary: литералы, идентификаторы и выражения в скобках.
func (p *Parser) parsePrimary() (ast.ExprID, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		return p.ctx.OnIntegerLiteral(p.advance()), nil
	case token.FloatLit:
		return p.ctx.OnFloatLiteral(p.advance()), nil
	case token.BoolLit:
		return p.ctx.OnBooleanLiteral(p.advance()), nil
	case token.CharLit:
		return p.ctx.OnCharLiteral(p.advance()), nil
	case token.StringLit:
		return p.ctx.OnStringLiteral(p.advance())
	case token.Ident:
		return p.ctx.OnIdExpression(p.advance())
	case token.LParen:
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return ast.NoExprID, err
		}
		if _, err := p.expect(token.RParen, diag.SynUnclosedParen, "')'"); err != nil {
			return ast.NoExprID, err
		}
		return e, nil
	default:
		return ast.NoExprID, p.errorf(diag.SynExpectExpression, "expected expression, found %s", describe(tok))
	}
}
