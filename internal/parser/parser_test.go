package parser_test

import (
	"strings"
	"testing"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/sema"
	"sable/internal/source"
	"sable/internal/testkit"
)

// parseSource разбирает программу и возвращает контекст для инспекции дерева.
func parseSource(t *testing.T, src string) (*sema.Context, ast.DeclID, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sb", []byte(src)))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	lx := lexer.New(file, lexer.Options{Strings: strs})
	prog, err := parser.ParseProgram(ctx, lx)
	return ctx, prog, err
}

func mustParse(t *testing.T, src string) (*sema.Context, ast.DeclID) {
	t.Helper()
	ctx, prog, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return ctx, prog
}

// parseExpr разбирает одно выражение в пустой глобальной области.
func parseExpr(t *testing.T, src string) (*sema.Context, ast.ExprID) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("expr.sb", []byte(src)))
	strs := source.NewInterner()
	ctx := sema.NewContext(sema.Options{File: file, Strings: strs})
	ctx.EnterGlobalScope()
	e, err := parser.New(ctx, lexer.New(file, lexer.Options{Strings: strs})).ParseExpression()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return ctx, e
}

func intValue(t *testing.T, ctx *sema.Context, e ast.ExprID) uint64 {
	t.Helper()
	lit, ok := ctx.Builder.Exprs.Int(e)
	if !ok {
		t.Fatalf("expression %d is %v, want IntLit", e, ctx.Builder.Exprs.Get(e).Kind)
	}
	return lit.Value
}

// functionBody returns the statements of the named top-level function.
func functionBody(t *testing.T, ctx *sema.Context, prog ast.DeclID, name string) []ast.StmtID {
	t.Helper()
	for _, d := range ctx.Builder.Decls.Program(prog).Decls {
		decl := ctx.Builder.Decls.Get(d)
		if decl.Kind != ast.DeclFunction || ctx.Strings.MustLookup(decl.Name) != name {
			continue
		}
		return ctx.Builder.Stmts.Block(ctx.Builder.Decls.Function(d).Body).Stmts
	}
	t.Fatalf("function %s not found", name)
	return nil
}

func TestSubtractionIsLeftAssociative(t *testing.T) {
	ctx, e := parseExpr(t, "1 - 2 - 3")
	top, ok := ctx.Builder.Exprs.Binary(e)
	if !ok || top.Op != ast.ExprBinarySub {
		t.Fatalf("top is not a subtraction")
	}
	if intValue(t, ctx, top.Right) != 3 {
		t.Fatal("right operand of the top node must be 3")
	}
	left, ok := ctx.Builder.Exprs.Binary(top.Left)
	if !ok {
		t.Fatal("left operand must be (1 - 2)")
	}
	if intValue(t, ctx, left.Left) != 1 || intValue(t, ctx, left.Right) != 2 {
		t.Fatal("inner node must be 1 - 2")
	}
}

func TestPrecedenceLadder(t *testing.T) {
	tests := []struct {
		src   string
		topOp ast.ExprBinaryOp
	}{
		{"1 + 2 * 3", ast.ExprBinaryAdd},
		{"1 * 2 + 3", ast.ExprBinaryAdd},
		{"1 << 2 + 3", ast.ExprBinaryShl},
		{"1 < 2 == true", ast.ExprBinaryEq},
		{"1 & 2 | 3 ^ 4", ast.ExprBinaryBitOr},
		{"true or false and false", ast.ExprBinaryLogicalOr},
		{"1 == 1 and 2 != 3", ast.ExprBinaryLogicalAnd},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ctx, e := parseExpr(t, tt.src)
			bin, ok := ctx.Builder.Exprs.Binary(e)
			if !ok || bin.Op != tt.topOp {
				t.Fatalf("top operator = %v, want %v", bin, tt.topOp)
			}
		})
	}
}

func TestCastBindsTighterThanMultiplication(t *testing.T) {
	ctx, e := parseExpr(t, "2.0 * 3 as float")
	bin, ok := ctx.Builder.Exprs.Binary(e)
	if !ok || bin.Op != ast.ExprBinaryMul {
		t.Fatal("top must be a multiplication")
	}
	if ctx.Builder.Exprs.Get(bin.Right).Kind != ast.ExprCast {
		t.Fatalf("right operand is %v, want Cast", ctx.Builder.Exprs.Get(bin.Right).Kind)
	}
}

func TestUnaryAndParens(t *testing.T) {
	ctx, e := parseExpr(t, "-(1 + 2) * ~3")
	bin, ok := ctx.Builder.Exprs.Binary(e)
	if !ok || bin.Op != ast.ExprBinaryMul {
		t.Fatal("top must be a multiplication")
	}
	neg, ok := ctx.Builder.Exprs.Unary(bin.Left)
	if !ok || neg.Op != ast.ExprUnaryMinus {
		t.Fatal("left must be a negation")
	}
	if ctx.Builder.Exprs.Get(neg.Operand).Kind != ast.ExprBinary {
		t.Fatal("parenthesised sum must stay grouped")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	ctx, prog := mustParse(t, `
def f() -> int {
	var a: int = 0;
	var b: int = 0;
	a = b = 1;
	return a;
}`)
	body := functionBody(t, ctx, prog, "f")
	stmt := ctx.Builder.Stmts.Expr(body[2])
	if stmt == nil {
		t.Fatal("third statement must be an expression statement")
	}
	outer, ok := ctx.Builder.Exprs.Assign(stmt.Expr)
	if !ok {
		t.Fatal("expression must be an assignment")
	}
	if id, _ := ctx.Builder.Exprs.Ident(outer.Target); ctx.Strings.MustLookup(id.Name) != "a" {
		t.Fatal("outer target must be a")
	}
	load, ok := ctx.Builder.Exprs.Conversion(outer.Value)
	if !ok || load.Conv != ast.ConvValue {
		t.Fatal("inner assignment must be loaded as a value")
	}
	inner, ok := ctx.Builder.Exprs.Assign(load.Value)
	if !ok {
		t.Fatal("right-hand side must be b = 1")
	}
	if id, _ := ctx.Builder.Exprs.Ident(inner.Target); ctx.Strings.MustLookup(id.Name) != "b" {
		t.Fatal("inner target must be b")
	}
}

func TestProgramShape(t *testing.T) {
	ctx, prog := mustParse(t, `
# factorial and friends
let limit: int = 10;
def scale: float = 2.5;
def fact(n: int) -> int {
	if (n <= 1) return 1; else return n * fact(n - 1);
}
def main() -> int {
	var i: int = 0;
	var acc: int = 0;
	while (i < limit) {
		i += 1;
		when (i % 2 == 0) continue;
		acc = acc + fact(i);
		when (acc > 1000) break;
	}
	var p: *int = &acc;
	p[0] = *p + 1;
	return true ? acc : i;
}`)
	decls := ctx.Builder.Decls.Program(prog).Decls
	wantKinds := []ast.DeclKind{ast.DeclConstant, ast.DeclValue, ast.DeclFunction, ast.DeclFunction}
	if len(decls) != len(wantKinds) {
		t.Fatalf("got %d top-level declarations, want %d", len(decls), len(wantKinds))
	}
	for i, d := range decls {
		if got := ctx.Builder.Decls.Get(d).Kind; got != wantKinds[i] {
			t.Errorf("decl %d kind = %v, want %v", i, got, wantKinds[i])
		}
	}
	fact := ctx.Builder.Decls.Function(decls[2])
	if len(fact.Params) != 1 || ctx.Builder.Decls.Get(fact.Params[0]).Kind != ast.DeclParameter {
		t.Fatal("fact must have one parameter")
	}
	if got := ctx.Types.Format(ctx.Builder.Decls.Get(decls[2]).Type); got != "(int) -> int" {
		t.Errorf("fact type = %s", got)
	}
	if len(functionBody(t, ctx, prog, "main")) != 6 {
		t.Error("main must have six statements")
	}
	if err := testkit.CheckTreeInvariants(ctx.Builder, prog, ctx.File); err != nil {
		t.Errorf("tree invariants: %v", err)
	}
}

func TestParameterIsAssignableLocal(t *testing.T) {
	ctx, prog := mustParse(t, "def f(x: int) -> int { x = 2; return x; }")
	body := functionBody(t, ctx, prog, "f")
	if len(body) != 2 {
		t.Fatalf("got %d statements, want 2", len(body))
	}
	assign, ok := ctx.Builder.Exprs.Assign(ctx.Builder.Stmts.Expr(body[0]).Expr)
	if !ok {
		t.Fatal("first statement must be an assignment")
	}
	id, ok := ctx.Builder.Exprs.Ident(assign.Target)
	if !ok || ctx.Builder.Decls.Get(id.Decl).Kind != ast.DeclParameter {
		t.Fatal("assignment target must resolve to the parameter")
	}
	if !ctx.Types.IsReferenceTo(ctx.Builder.Exprs.TypeOf(assign.Target), ctx.Types.Builtins().Int) {
		t.Errorf("parameter type = %s, want a reference to int", ctx.Types.Format(ctx.Builder.Exprs.TypeOf(assign.Target)))
	}
}

func TestShadowingInNestedBlock(t *testing.T) {
	mustParse(t, `
def f() -> int {
	var x: int = 1;
	{
		var x: float = 2.0;
	}
	return x;
}`)
}

func TestSelfReferenceInInitializer(t *testing.T) {
	mustParse(t, "var x: int = x;")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
	}{
		{"missing semicolon", "var x: int = 1", diag.SynExpectSemicolon},
		{"missing colon", "var x int = 1;", diag.SynExpectColon},
		{"missing initializer", "var x: int;", diag.SynExpectInitializer},
		{"unknown type", "var x: string = 1;", diag.SynExpectType},
		{"nested function", "def f() -> int { def g() -> int { return 1; } return 1; }", diag.SynFnNotAllowed},
		{"increment", "def f() -> int { var x: int = 0; x++; return x; }", diag.SynIncDecNotSupported},
		{"if without else", "def f() -> int { if (true) return 1; }", diag.SynExpectElse},
		{"missing arrow", "def f() int { return 1; }", diag.SynExpectArrow},
		{"statement at top level", "return 1;", diag.SynExpectDeclaration},
		{"unclosed paren", "var x: int = (1;", diag.SynUnclosedParen},
		{"unclosed brace", "def f() -> int { return 1;", diag.SynUnclosedBrace},
		{"missing expression", "var x: int = ;", diag.SynExpectExpression},
		{"unknown character", "var x: int = 1 @ 2;", diag.LexUnknownChar},
		{"redeclaration", "var x: int = 1; var x: int = 2;", diag.SemaDuplicateSymbol},
		{"local redeclaration", "def f() -> int { var x: int = 1; var x: int = 2; return x; }", diag.SemaDuplicateSymbol},
		{"parameter redeclared in body", "def f(a: int) -> int { var a: int = 1; return a; }", diag.SemaDuplicateSymbol},
		{"unresolved", "var x: int = y;", diag.SemaUnresolvedSymbol},
		{"initializer mismatch", "var x: int = 1.5;", diag.SemaTypeMismatch},
		{"too few arguments", "def f(a: int, b: int) -> int { return a; } var x: int = f(1);", diag.SemaArityMismatch},
		{"argument type", "def f(a: int, b: int) -> int { return a; } var x: int = f(1, 2.0);", diag.SemaTypeMismatch},
		{"break outside loop", "def f() -> int { break; }", diag.SemaBreakOutsideLoop},
		{"string literal", `var s: int = "x";`, diag.SemaStringNotSupported},
		{"non-bool condition", "def f() -> int { while (1) { } return 0; }", diag.SemaNotBoolean},
		{"assign to constant", "let k: int = 1; def f() -> int { k = 2; return k; }", diag.SemaNotReference},
		{"mixed arithmetic", "var x: float = 1 + 2.0;", diag.SemaTypeMismatch},
		{"return type", "def f() -> int { return 1.0; }", diag.SemaTypeMismatch},
		{"function to char", "def f() -> int { return 0; } var c: char = f as char;", diag.SemaInvalidConversion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parseSource(t, tt.src)
			if err == nil {
				t.Fatalf("expected %s, parse succeeded", tt.code.ID())
			}
			if got := diag.CodeOf(err); got != tt.code {
				t.Fatalf("got %s (%v), want %s", got.ID(), err, tt.code.ID())
			}
		})
	}
}

func TestErrorCarriesLocation(t *testing.T) {
	_, _, err := parseSource(t, "var x: int = 1;\nvar y: int = z;")
	de, ok := diag.AsError(err)
	if !ok {
		t.Fatalf("error %v is not a diag error", err)
	}
	if de.Loc.Line != 2 || de.Loc.Col != 14 {
		t.Errorf("location = %s, want 2:14", de.Loc)
	}
	if !strings.Contains(err.Error(), "'z'") {
		t.Errorf("message %q does not name the identifier", err.Error())
	}
	if de.Category() != diag.CatSemantic {
		t.Errorf("category = %v", de.Category())
	}
}
