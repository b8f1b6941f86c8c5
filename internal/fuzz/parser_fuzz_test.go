package fuzztests

import (
	"testing"
	"time"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/sema"
	"sable/internal/source"
	"sable/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

type parseOutcome struct {
	ctx  *sema.Context
	prog ast.DeclID
	err  error
}

func parseInput(input []byte) parseOutcome {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.sb", input))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	prog, err := parser.ParseProgram(ctx, lexer.New(file, lexer.Options{Strings: strs}))
	return parseOutcome{ctx: ctx, prog: prog, err: err}
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		out := parseInput(input)
		if out.err != nil {
			de, ok := diag.AsError(out.err)
			if !ok {
				t.Fatalf("parser returned a non-diagnostic error: %v", out.err)
			}
			if int(de.Span.End) > len(input) {
				t.Fatalf("diagnostic span %v past end of input (%d)", de.Span, len(input))
			}
			return
		}
		if err := testkit.CheckTreeInvariants(out.ctx.Builder, out.prog, out.ctx.File); err != nil {
			t.Fatalf("tree invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("def f() -> int { while (true) { } }"))
	f.Add([]byte("def f() -> int { ((((((((1)))))))); }"))
	f.Add([]byte("let x: ********int = 0;"))
	f.Add([]byte("def f() -> int { return a ? b ? c : d : e; }"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = parseInput(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}
