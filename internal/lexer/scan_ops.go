package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start), nil
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), nil
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start), nil
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), nil
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), nil
	case lx.try2('<', '<'):
		return lx.emit(token.Shl, start), nil
	case lx.try2('>', '>'):
		return lx.emit(token.Shr, start), nil
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start), nil
	case lx.try2('+', '+'):
		return lx.emit(token.PlusPlus, start), nil
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start), nil
	case lx.try2('-', '-'):
		return lx.emit(token.MinusMinus, start), nil
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start), nil
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start), nil
	case lx.try2('%', '='):
		return lx.emit(token.PercentAssign, start), nil
	}

	ch := lx.cursor.Bump()
	var k token.Kind
	switch ch {
	case '(':
		k = token.LParen
	case ')':
		k = token.RParen
	case '[':
		k = token.LBracket
	case ']':
		k = token.RBracket
	case '{':
		k = token.LBrace
	case '}':
		k = token.RBrace
	case ',':
		k = token.Comma
	case ';':
		k = token.Semicolon
	case ':':
		k = token.Colon
	case '?':
		k = token.Question
	case '=':
		k = token.Assign
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '+':
		k = token.Plus
	case '-':
		k = token.Minus
	case '*':
		k = token.Star
	case '/':
		k = token.Slash
	case '%':
		k = token.Percent
	case '&':
		k = token.Amp
	case '|':
		k = token.Pipe
	case '^':
		k = token.Caret
	case '~':
		k = token.Tilde
	default:
		return token.Token{}, lx.errorf(diag.LexUnknownChar, start, "invalid character '%s'", printable(ch))
	}
	return lx.emit(k, start), nil
}
