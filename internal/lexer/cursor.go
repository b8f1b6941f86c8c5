package lexer

import (
	"fmt"

	"sable/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет позицию в файле: байтовое смещение плюс строка/колонка.
// Колонка считается в символах: байты-продолжения UTF-8 её не двигают.
type Cursor struct {
	File  *source.File
	Off   uint32
	Line  uint32
	Col   uint32
	Limit uint32 // exclusive upper bound for Off
}

// NewCursor creates a cursor at line 1, column 1.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Line:  1,
		Col:   1,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek возвращает текущий байт или 0 на EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.Limit {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek2 читает текущий и следующий байт.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump consumes one byte and advances line/column.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	switch {
	case b == '\n':
		c.newline()
	case b&0xC0 != 0x80:
		c.Col++
	}
	return b
}

func (c *Cursor) newline() {
	c.Line++
	c.Col = 1
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// Loc returns the location of the current byte.
func (c *Cursor) Loc() source.Location {
	return source.Location{File: c.File.ID, Line: c.Line, Col: c.Col}
}

// Mark это метка, чтобы быстро получать Span и Location читаемого фрагмента
type Mark struct {
	off  uint32
	line uint32
	col  uint32
}

func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.off, End: c.Off}
}

// LocOf returns the location recorded in m.
func (c *Cursor) LocOf(m Mark) source.Location {
	return source.Location{File: c.File.ID, Line: m.line, Col: m.col}
}

// TextFrom returns the source slice between m and the cursor.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.File.Content[m.off:c.Off])
}
