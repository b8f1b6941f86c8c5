package parser

import (
	"sable/internal/diag"
	"sable/internal/token"
	"sable/internal/types"
)

// parseType разбирает `bool | char | int | float | *type`.
func (p *Parser) parseType() (types.TypeID, error) {
	switch {
	case p.at(token.TypeName):
		return p.ctx.OnBasicType(p.advance()), nil
	case p.at(token.Star):
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return types.NoTypeID, err
		}
		return p.ctx.OnPointerType(elem), nil
	default:
		return types.NoTypeID, p.errorf(diag.SynExpectType, "expected type, found %s", describe(p.peek()))
	}
}
