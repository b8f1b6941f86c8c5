package parser

import (
	"sable/internal/token"
)

// Таблица приоритетов для бинарных операторов (без присваивания и `?:`,
// они правоассоциативны и разбираются отдельно).
// Чем больше число, тем выше приоритет.
const (
	precLogicalOr      = 1 // or
	precLogicalAnd     = 2 // and
	precBitwiseOr      = 3 // |
	precBitwiseXor     = 4 // ^
	precBitwiseAnd     = 5 // &
	precEquality       = 6 // == !=
	precRelational     = 7 // < <= > >=
	precShift          = 8 // << >>
	precAdditive       = 9 // + -
	precMultiplicative = 10
)

// binaryPrec возвращает приоритет оператора или -1.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.KwOr:
		return precLogicalOr
	case token.KwAnd:
		return precLogicalAnd
	case token.Pipe:
		return precBitwiseOr
	case token.Caret:
		return precBitwiseXor
	case token.Amp:
		return precBitwiseAnd
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precRelational
	case token.Shl, token.Shr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return -1
	}
}
