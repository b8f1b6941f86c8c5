package symbols

import (
	"testing"

	"sable/internal/ast"
	"sable/internal/source"
)

func TestDeclareRejectsDuplicateInSameScope(t *testing.T) {
	strs := source.NewInterner()
	x := strs.Intern("x")
	c := NewChain()
	c.Enter(ScopeGlobal)

	if _, ok := c.Declare(x, ast.DeclID(1)); !ok {
		t.Fatal("first declare failed")
	}
	prev, ok := c.Declare(x, ast.DeclID(2))
	if ok || prev != ast.DeclID(1) {
		t.Fatalf("duplicate declare = (%d, %v), want (1, false)", prev, ok)
	}
	if got, _ := c.Lookup(x); got != ast.DeclID(1) {
		t.Errorf("duplicate must not overwrite, got %d", got)
	}
}

func TestShadowingAndLeave(t *testing.T) {
	strs := source.NewInterner()
	x, y := strs.Intern("x"), strs.Intern("y")
	c := NewChain()
	c.Enter(ScopeGlobal)
	c.Declare(x, ast.DeclID(1))

	inner := c.Enter(ScopeBlock)
	if _, ok := c.Declare(x, ast.DeclID(2)); !ok {
		t.Fatal("shadowing in a nested scope must succeed")
	}
	c.Declare(y, ast.DeclID(3))
	if got, _ := c.Lookup(x); got != ast.DeclID(2) {
		t.Fatalf("inner lookup = %d", got)
	}
	if got, ok := inner.Local(x); !ok || got != ast.DeclID(2) {
		t.Fatalf("inner local = %d", got)
	}
	if c.Depth() != 2 {
		t.Errorf("Depth = %d", c.Depth())
	}

	if left := c.Leave(); left != inner || left.Len() != 2 {
		t.Fatalf("Leave returned wrong scope")
	}
	if got, _ := c.Lookup(x); got != ast.DeclID(1) {
		t.Errorf("outer lookup = %d", got)
	}
	if _, ok := c.Lookup(y); ok {
		t.Error("y must vanish with its scope")
	}
}

func TestScopeKindString(t *testing.T) {
	cases := map[ScopeKind]string{
		ScopeGlobal:    "global",
		ScopeParameter: "parameter",
		ScopeBlock:     "block",
		ScopeInvalid:   "invalid",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("%d.String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestLeaveWithoutEnterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewChain().Leave()
}
