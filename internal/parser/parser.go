package parser

import (
	"fmt"
	"slices"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/sema"
	"sable/internal/source"
	"sable/internal/token"
)

// Parser: состояние парсера на один файл.
// Семантические действия вызываются прямо во время разбора, отдельного
// прохода по дереву нет. Первая ошибка останавливает разбор.
type Parser struct {
	lx       *lexer.Lexer
	ctx      *sema.Context
	look     []token.Token // буфер просмотра вперёд
	lexErr   error         // первая ошибка лексера
	lastSpan source.Span   // span последнего съеденного токена
}

// New creates a parser that pulls tokens from lx and builds nodes through ctx.
func New(ctx *sema.Context, lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx, ctx: ctx}
}

// ParseProgram (входная точка) разбирает весь файл в Program.
// On error the context is left mid-parse and must not be reused.
func ParseProgram(ctx *sema.Context, lx *lexer.Lexer) (ast.DeclID, error) {
	return New(ctx, lx).ParseProgram()
}

func (p *Parser) ParseProgram() (ast.DeclID, error) {
	start := p.peek().Span
	p.ctx.EnterGlobalScope()
	var decls []ast.DeclID
	for !p.at(token.EOF) {
		d, err := p.parseTopLevelDecl()
		if err != nil {
			return ast.NoDeclID, err
		}
		decls = append(decls, d)
	}
	if p.lexErr != nil {
		return ast.NoDeclID, p.lexErr
	}
	p.ctx.LeaveScope()
	return p.ctx.OnProgram(start.Cover(p.lastSpan), decls), nil
}

// ParseExpression разбирает одно выражение до конца ввода.
// Имена разрешаются в уже открытых областях ctx.
func (p *Parser) ParseExpression() (ast.ExprID, error) {
	e, err := p.parseExpr()
	if err != nil {
		return ast.NoExprID, err
	}
	if !p.at(token.EOF) {
		return ast.NoExprID, p.unexpected("end of expression")
	}
	return e, nil
}

// peekN returns the n-th token ahead without consuming it (0 is the current one).
// A lexer error is remembered and shows up as an Invalid token.
func (p *Parser) peekN(n int) token.Token {
	for len(p.look) <= n {
		if p.lexErr != nil {
			return token.Token{Kind: token.Invalid, Span: p.endSpan()}
		}
		tok, err := p.lx.Next()
		if err != nil {
			p.lexErr = err
			return token.Token{Kind: token.Invalid, Span: p.endSpan()}
		}
		p.look = append(p.look, tok)
	}
	return p.look[n]
}

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// advance: съедает текущий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if len(p.look) > 0 {
		p.look = p.look[1:]
	}
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// endSpan: пустой span сразу после последнего съеденного токена.
func (p *Parser) endSpan() source.Span {
	return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
}

// expect: ожидаем конкретный токен, иначе синтаксическая ошибка.
func (p *Parser) expect(k token.Kind, code diag.Code, what string) (token.Token, error) {
	if p.at(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorf(code, "expected %s, found %s", what, describe(p.peek()))
}

// errorf builds a syntax error at the current token. A pending lexer
// error wins: the Invalid token it produced is the real cause.
func (p *Parser) errorf(code diag.Code, format string, args ...any) error {
	if p.lexErr != nil {
		return p.lexErr
	}
	tok := p.peek()
	loc := tok.Loc
	if !loc.IsValid() {
		loc = p.locate(tok.Span)
	}
	return diag.Errorf(code, tok.Span, loc, format, args...)
}

func (p *Parser) unexpected(what string) error {
	return p.errorf(diag.SynUnexpectedToken, "expected %s, found %s", what, describe(p.peek()))
}

func (p *Parser) locate(span source.Span) source.Location {
	if f := p.lx.File(); f != nil && f.ID == span.File {
		return f.LocationOf(span.Start)
	}
	return source.Location{}
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "end of input"
	case tok.Text != "":
		return fmt.Sprintf("'%s'", tok.Text)
	default:
		return tok.Kind.String()
	}
}

func (p *Parser) spanOf(e ast.ExprID) source.Span {
	return p.ctx.Builder.Exprs.Get(e).Span
}
