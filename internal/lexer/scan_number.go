package lexer

import (
	"errors"
	"math"
	"strconv"

	"sable/internal/diag"
	"sable/internal/token"
)

// Поддержка: 123, 0b1010, 0x1F, 1.5, 1. (одна точка делает литерал float).
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			return lx.scanRadix(start, token.Binary, isBin)
		case 'x', 'X':
			return lx.scanRadix(start, token.Hex, isHex)
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() != '.' {
		if err := lx.checkNumberEnd(start); err != nil {
			return token.Token{}, err
		}
		return lx.intToken(start, lx.cursor.TextFrom(start), token.Decimal)
	}

	lx.cursor.Bump() // '.'
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if err := lx.checkNumberEnd(start); err != nil {
		return token.Token{}, err
	}
	text := lx.cursor.TextFrom(start)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, lx.errorf(diag.LexBadNumber, start, "malformed float literal %q", text)
	}
	return lx.emit(token.FloatLit, start).WithFloat(v), nil
}

func (lx *Lexer) scanRadix(start Mark, radix token.Radix, digit func(byte) bool) (token.Token, error) {
	lx.cursor.Bump() // 0
	lx.cursor.Bump() // b/x
	digits := lx.cursor.Mark()
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.SpanFrom(digits).Empty() {
		return token.Token{}, lx.errorf(diag.LexBadNumber, start, "expected %s digits after %q", radix, lx.cursor.TextFrom(start))
	}
	if err := lx.checkNumberEnd(start); err != nil {
		return token.Token{}, err
	}
	return lx.intToken(start, lx.cursor.TextFrom(digits), radix)
}

// checkNumberEnd rejects literals glued to letters or digits of another base, e.g. 0b102 or 12ab.
func (lx *Lexer) checkNumberEnd(start Mark) error {
	if b := lx.cursor.Peek(); isIdentContinueByte(b) || b == '.' {
		lx.cursor.Bump()
		return lx.errorf(diag.LexBadNumber, start, "invalid character %q in number literal", printable(b))
	}
	return nil
}

func (lx *Lexer) intToken(start Mark, digits string, radix token.Radix) (token.Token, error) {
	v, err := strconv.ParseUint(digits, int(radix), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, lx.errorf(diag.LexIntOutOfRange, start, "integer literal %s out of range", lx.cursor.TextFrom(start))
		}
		return token.Token{}, lx.errorf(diag.LexBadNumber, start, "malformed integer literal %q", lx.cursor.TextFrom(start))
	}
	// int is a signed 64-bit type; no literal may exceed its maximum.
	if v > math.MaxInt64 {
		return token.Token{}, lx.errorf(diag.LexIntOutOfRange, start, "integer literal %s overflows int", lx.cursor.TextFrom(start))
	}
	return lx.emit(token.IntLit, start).WithInt(v, radix), nil
}
