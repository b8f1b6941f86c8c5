package lexer

import (
	"sable/internal/source"
)

type Options struct {
	// Strings is the symbol table shared with the parser. When nil the
	// lexer creates a private one, reachable through Lexer.Strings.
	Strings *source.Interner
	// CommentByte starts a line comment; '#' when zero.
	CommentByte byte
}

func (o Options) commentByte() byte {
	if o.CommentByte == 0 {
		return '#'
	}
	return o.CommentByte
}
