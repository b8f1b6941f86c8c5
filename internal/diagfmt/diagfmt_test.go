package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"sable/internal/diag"
	"sable/internal/diagfmt"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/sema"
	"sable/internal/source"
)

const sample = "def x: int = 1;\nlet y: int = z;\n"

func sampleFile() (*source.FileSet, *source.File) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sb", []byte(sample))
	return fs, fs.Get(id)
}

func unresolvedBag(file *source.File) *diag.Bag {
	off := uint32(strings.Index(sample, "z"))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.SemaUnresolvedSymbol, source.Span{File: file.ID, Start: off, End: off + 1}, "unresolved identifier 'z'")
	bag.Add(d.WithNote(source.Span{File: file.ID, Start: 4, End: 5}, "did you mean 'x'?"))
	return bag
}

func TestPrettyPlain(t *testing.T) {
	fs, file := sampleFile()
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, unresolvedBag(file), fs, diagfmt.PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "error[SEM3001]: unresolved identifier 'z'\n" +
		" --> test.sb:2:14\n" +
		"  |\n" +
		"2 | let y: int = z;\n" +
		"  |              ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	fs, file := sampleFile()
	var buf bytes.Buffer
	opts := diagfmt.PrettyOpts{Context: 1, ShowNotes: true}
	if err := diagfmt.Pretty(&buf, unresolvedBag(file), fs, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"1 | def x: int = 1;\n",
		"2 | let y: int = z;\n",
		"  = note: did you mean 'x'? (test.sb:1:5)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestPrettyColorAddsEscapes(t *testing.T) {
	fs, file := sampleFile()
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, unresolvedBag(file), fs, diagfmt.PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestPrettyWideCharsAlignCaret(t *testing.T) {
	src := "# 日本 q\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("w.sb", []byte(src)))
	off := uint32(strings.Index(src, "q"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SemaUnresolvedSymbol, source.Span{File: file.ID, Start: off, End: off + 1}, "unresolved identifier 'q'"))
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	// "# 日本 " занимает 7 колонок терминала
	want := "  | " + strings.Repeat(" ", 7) + "^\n"
	if !strings.HasSuffix(buf.String(), want) {
		t.Fatalf("caret misplaced:\n%s", buf.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	fs, file := sampleFile()
	var buf bytes.Buffer
	opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
	if err := diagfmt.JSON(&buf, unresolvedBag(file), fs, opts); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SEM3001" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	if d.Location.File != "test.sb" || d.Location.StartLine != 2 || d.Location.StartCol != 14 {
		t.Errorf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartLine != 1 {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONMaxAndNoPositions(t *testing.T) {
	fs, file := sampleFile()
	bag := unresolvedBag(file)
	bag.Add(diag.NewError(diag.SemaTypeMismatch, source.Span{File: file.ID, Start: 0, End: 3}, "second"))
	out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{Max: 1, PathMode: diagfmt.PathModeBasename})
	if out.Count != 1 {
		t.Fatalf("count = %d, want 1", out.Count)
	}
	if loc := out.Diagnostics[0].Location; loc.StartLine != 0 || loc.File != "test.sb" {
		t.Errorf("location = %+v", loc)
	}
	if out.Diagnostics[0].Notes != nil {
		t.Errorf("notes must be omitted")
	}
}

func TestTokens(t *testing.T) {
	fs, file := sampleFile()
	toks, err := lexer.New(file, lexer.Options{}).All()
	if err != nil {
		t.Fatal(err)
	}
	var pretty bytes.Buffer
	if err := diagfmt.FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	first := strings.SplitN(pretty.String(), "\n", 2)[0]
	if !strings.Contains(first, "KwDef") || !strings.Contains(first, "at 1:1-1:4") {
		t.Errorf("first line = %q", first)
	}

	var js bytes.Buffer
	if err := diagfmt.FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []diagfmt.TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[len(out)-1].Kind != "EOF" {
		t.Fatalf("got %d tokens, last %+v", len(out), out[len(out)-1])
	}
}

const program = `def twice(n: int) -> int {
	return n * 2;
}
`

func TestASTTree(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("prog.sb", []byte(program)))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	prog, err := parser.ParseProgram(ctx, lexer.New(file, lexer.Options{Strings: strs}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	in := diagfmt.ASTInput{Builder: ctx.Builder, Strings: ctx.Strings, Types: ctx.Types, Files: fs}

	var buf bytes.Buffer
	if err := diagfmt.FormatASTTree(&buf, in, prog); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Program (1:1-") {
		t.Errorf("root line: %q", strings.SplitN(out, "\n", 2)[0])
	}
	for _, want := range []string{
		"└─ Decl[Function] twice : (int) -> int",
		"├─ Decl[Parameter] n : int",
		"Stmt[Return]",
		"Expr[Binary] * : int",
		"Expr[IntLit] 2 : int",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestASTJSON(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("prog.sb", []byte(program)))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	prog, err := parser.ParseProgram(ctx, lexer.New(file, lexer.Options{Strings: strs}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	in := diagfmt.ASTInput{Builder: ctx.Builder, Strings: ctx.Strings, Types: ctx.Types}

	var buf bytes.Buffer
	if err := diagfmt.FormatASTJSON(&buf, in, prog); err != nil {
		t.Fatal(err)
	}
	var root diagfmt.ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("root = %+v", root)
	}
	fn := root.Children[0]
	if fn.Kind != "Function" || fn.Text != "twice" || fn.Fields["result"] != "int" {
		t.Errorf("function node = %+v", fn)
	}
	if len(fn.Children) != 2 || fn.Children[1].Kind != "Block" {
		t.Errorf("function children = %+v", fn.Children)
	}
}

func TestASTYAML(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("prog.sb", []byte(program)))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	prog, err := parser.ParseProgram(ctx, lexer.New(file, lexer.Options{Strings: strs}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	in := diagfmt.ASTInput{Builder: ctx.Builder, Strings: ctx.Strings, Types: ctx.Types}

	var buf bytes.Buffer
	if err := diagfmt.FormatASTYAML(&buf, in, prog); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "type: Program\n") {
		t.Fatalf("unexpected yaml head:\n%s", buf.String())
	}
	var root diagfmt.ASTNodeOutput
	if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 || root.Children[0].Text != "twice" {
		t.Fatalf("root = %+v", root)
	}
	if got := root.Children[0].Fields["result"]; got != "int" {
		t.Errorf("result field = %v", got)
	}
}

func TestASTMissingRoot(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("empty.sb", nil))
	ctx := sema.NewContext(sema.Options{File: file})
	in := diagfmt.ASTInput{Builder: ctx.Builder, Types: ctx.Types}
	if _, err := diagfmt.BuildASTOutput(in, 42); err == nil {
		t.Fatal("expected error for unknown declaration")
	}
}
