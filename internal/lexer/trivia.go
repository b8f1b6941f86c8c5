package lexer

// skipTrivia пропускает пробелы, переводы строк и комментарии до значимого байта.
func (lx *Lexer) skipTrivia() {
	comment := lx.opts.commentByte()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isSpace(b):
			lx.cursor.Bump()
		case b == comment:
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}
