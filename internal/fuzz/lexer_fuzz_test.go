package fuzztests

import (
	"testing"

	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/source"
	"sable/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.sb", input))
		lx := lexer.New(file, lexer.Options{})

		var prevEnd uint32
		for {
			tok, err := lx.Next()
			if err != nil {
				if _, ok := diag.AsError(err); !ok {
					t.Fatalf("lexer returned a non-diagnostic error: %v", err)
				}
				return
			}
			if tok.Span.Start < prevEnd || tok.Span.End < tok.Span.Start {
				t.Fatalf("token %s span %v overlaps previous end %d", tok.Kind, tok.Span, prevEnd)
			}
			if int(tok.Span.End) > len(input) {
				t.Fatalf("token %s span %v past end of input (%d)", tok.Kind, tok.Span, len(input))
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				return
			}
		}
	})
}
