package token_test

import (
	"testing"

	"sable/internal/source"
	"sable/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.New(k, source.Span{}, source.Location{Line: 1, Col: 1}, "")
}

func TestPayloadAccessors(t *testing.T) {
	i := tok(token.IntLit).WithInt(0x2a, token.Hex)
	if v, r := i.Int(); v != 42 || r != token.Hex {
		t.Fatalf("Int() = %d,%v", v, r)
	}
	if c := tok(token.CharLit).WithChar('\n').Char(); c != '\n' {
		t.Fatalf("Char() = %q", c)
	}
	if !tok(token.BoolLit).WithBool(true).Bool() {
		t.Fatal("Bool() lost true")
	}
	if f := tok(token.FloatLit).WithFloat(1.5).Float(); f != 1.5 {
		t.Fatalf("Float() = %v", f)
	}
	if s := tok(token.TypeName).WithTypeSpec(token.SpecFloat).TypeSpec(); s != token.SpecFloat {
		t.Fatalf("TypeSpec() = %v", s)
	}
	if id := tok(token.Ident).WithSymbol(7).Symbol(); id != 7 {
		t.Fatalf("Symbol() = %d", id)
	}
}

func TestWrongAccessorPanics(t *testing.T) {
	cases := []struct {
		name string
		call func()
	}{
		{"Symbol on IntLit", func() { tok(token.IntLit).Symbol() }},
		{"Int on Ident", func() { tok(token.Ident).Int() }},
		{"Char on StringLit", func() { tok(token.StringLit).Char() }},
		{"StringSymbol on Ident", func() { tok(token.Ident).StringSymbol() }},
		{"WithBool on Plus", func() { tok(token.Plus).WithBool(true) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", tc.name)
				}
			}()
			tc.call()
		})
	}
}

func TestKindClasses(t *testing.T) {
	for _, k := range []token.Kind{token.IntLit, token.FloatLit, token.BoolLit, token.CharLit, token.StringLit} {
		if !k.IsLiteral() {
			t.Errorf("%v should be literal", k)
		}
	}
	for _, k := range []token.Kind{token.KwAs, token.KwDef, token.KwNot} {
		if !k.IsKeyword() || k.IsOperator() {
			t.Errorf("%v should be keyword only", k)
		}
	}
	for _, k := range []token.Kind{token.LParen, token.Tilde, token.Arrow, token.PercentAssign} {
		if !k.IsOperator() {
			t.Errorf("%v should be operator", k)
		}
	}
	if !token.PlusAssign.IsAssignOp() || token.EqEq.IsAssignOp() {
		t.Error("IsAssignOp misclassifies")
	}
	if token.BangEq.String() != "BangEq" {
		t.Errorf("String() = %q", token.BangEq.String())
	}
}

func TestLookupReserved(t *testing.T) {
	cases := map[string]token.Reserved{
		"def":   {Kind: token.KwDef},
		"when":  {Kind: token.KwWhen},
		"true":  {Kind: token.BoolLit, Bool: true},
		"false": {Kind: token.BoolLit},
		"float": {Kind: token.TypeName, Spec: token.SpecFloat},
	}
	for word, want := range cases {
		got, ok := token.LookupReserved(word)
		if !ok || got != want {
			t.Errorf("LookupReserved(%q) = %+v,%v want %+v", word, got, ok, want)
		}
	}
	for _, word := range []string{"Def", "fn", "string", "x"} {
		if _, ok := token.LookupReserved(word); ok {
			t.Errorf("%q must not be reserved", word)
		}
	}

	n := 0
	for range token.ReservedWords() {
		n++
	}
	if n != 20 {
		t.Errorf("ReservedWords yielded %d words, want 20", n)
	}
}
