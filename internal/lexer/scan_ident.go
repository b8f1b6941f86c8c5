package lexer

import (
	"sable/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и сверяет символ
// с таблицей зарезервированных слов.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sym := lx.strings.Intern(lx.cursor.TextFrom(start))
	r, ok := lx.reserved[sym]
	if !ok {
		return lx.emit(token.Ident, start).WithSymbol(sym)
	}
	tok := lx.emit(r.Kind, start)
	switch r.Kind {
	case token.BoolLit:
		return tok.WithBool(r.Bool)
	case token.TypeName:
		return tok.WithTypeSpec(r.Spec)
	default:
		return tok
	}
}
