package lexer

import (
	"unicode/utf8"

	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/token"
)

// Lexer turns one source buffer into tokens on demand. It never rewinds and
// stops at the first error: after an error every further call returns it again.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	strings  *source.Interner
	reserved map[source.StringID]token.Reserved
	err      error
}

func New(file *source.File, opts Options) *Lexer {
	strs := opts.Strings
	if strs == nil {
		strs = source.NewInterner()
	}
	lx := &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		strings:  strs,
		reserved: make(map[source.StringID]token.Reserved, 24),
	}
	// зарезервированные слова ищем через тот же интернер, что и идентификаторы
	for word, r := range token.ReservedWords() {
		lx.reserved[strs.Intern(word)] = r
	}
	return lx
}

// Strings returns the symbol table the lexer interns into.
func (lx *Lexer) Strings() *source.Interner {
	return lx.strings
}

// File returns the buffer being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next returns the next token. At end of input it keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	tok, err := lx.next()
	if err != nil {
		lx.err = err
		return token.Token{}, err
	}
	return tok, nil
}

func (lx *Lexer) next() (token.Token, error) {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		start := lx.cursor.Mark()
		return token.New(token.EOF, lx.cursor.SpanFrom(start), lx.cursor.Loc(), ""), nil
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword(), nil
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanChar()
	case ch == '"':
		return lx.scanString()
	case ch >= utf8.RuneSelf:
		start := lx.cursor.Mark()
		r, _ := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
		lx.cursor.Bump()
		return token.Token{}, lx.errorf(diag.LexUnknownChar, start, "invalid character %U", r)
	default:
		return lx.scanOperatorOrPunct()
	}
}

// All lexes the whole buffer, EOF included.
func (lx *Lexer) All() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

func (lx *Lexer) errorf(code diag.Code, start Mark, format string, args ...any) *diag.Error {
	return diag.Errorf(code, lx.cursor.SpanFrom(start), lx.cursor.LocOf(start), format, args...)
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.New(kind, lx.cursor.SpanFrom(start), lx.cursor.LocOf(start), lx.cursor.TextFrom(start))
}
