package lexer

import (
	"sable/internal/diag"
	"sable/internal/token"

	"golang.org/x/text/unicode/norm"
)

// scanEscape decodes one escape sequence; the cursor is on '\'.
func (lx *Lexer) scanEscape() (byte, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return 0, lx.errorf(diag.LexUnterminatedEscape, start, "unterminated escape sequence")
	}
	b := lx.cursor.Bump()
	switch b {
	case '\'', '"', '\\':
		return b, nil
	case 'a':
		return '\a', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'v':
		return '\v', nil
	default:
		return 0, lx.errorf(diag.LexBadEscape, start, "invalid escape sequence '\\%s'", printable(b))
	}
}

// scanChar: ровно один байт (после раскрытия escape) между одинарными кавычками.
func (lx *Lexer) scanChar() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	var c byte
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF():
		return token.Token{}, lx.errorf(diag.LexUnterminatedChar, start, "unterminated character literal")
	case b == '\\':
		var err error
		if c, err = lx.scanEscape(); err != nil {
			return token.Token{}, err
		}
	case b == '\'':
		lx.cursor.Bump()
		return token.Token{}, lx.errorf(diag.LexInvalidCharLit, start, "empty character literal")
	case b == '\n':
		return token.Token{}, lx.errorf(diag.LexInvalidCharLit, start, "newline in character literal")
	case b >= 0x80:
		lx.cursor.Bump()
		return token.Token{}, lx.errorf(diag.LexMultiByteChar, start, "invalid multi-byte character in character literal")
	default:
		c = lx.cursor.Bump()
	}

	if lx.cursor.EOF() {
		return token.Token{}, lx.errorf(diag.LexUnterminatedChar, start, "unterminated character literal")
	}
	if !lx.cursor.Eat('\'') {
		lx.cursor.Bump()
		return token.Token{}, lx.errorf(diag.LexMultiByteChar, start, "character literal must hold exactly one character")
	}
	return lx.emit(token.CharLit, start).WithChar(c), nil
}

// scanString decodes "..." and interns the NFC-normalised text.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	buf := make([]byte, 0, 32)
	for {
		if lx.cursor.EOF() {
			return token.Token{}, lx.errorf(diag.LexUnterminatedString, start, "unterminated string literal")
		}
		switch b := lx.cursor.Peek(); b {
		case '"':
			lx.cursor.Bump()
			sym := lx.strings.InternBytes(norm.NFC.Bytes(buf))
			return lx.emit(token.StringLit, start).WithSymbol(sym), nil
		case '\n':
			return token.Token{}, lx.errorf(diag.LexUnterminatedString, start, "newline in string literal")
		case '\\':
			c, err := lx.scanEscape()
			if err != nil {
				return token.Token{}, err
			}
			buf = append(buf, c)
		default:
			buf = append(buf, lx.cursor.Bump())
		}
	}
}
