package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Bool == NoTypeID || b.Float == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	if got := in.KindOf(b.Char); got != KindChar {
		t.Fatalf("expected char kind, got %v", got)
	}
	if _, ok := in.Lookup(NoTypeID); ok {
		t.Fatal("NoTypeID must not resolve")
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	p1 := in.Pointer(in.Pointer(b.Int))
	p2 := in.Pointer(in.Pointer(b.Int))
	if p1 != p2 {
		t.Fatalf("pointer types should be deduplicated")
	}
	if in.Reference(b.Int) == in.Pointer(b.Int) {
		t.Fatal("reference and pointer must differ")
	}
	f1 := in.RegisterFn([]TypeID{b.Int, b.Char}, b.Bool)
	f2 := in.RegisterFn([]TypeID{b.Int, b.Char}, b.Bool)
	if f1 != f2 {
		t.Fatal("function types should be deduplicated")
	}
}

func TestAreSame(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	fn1 := in.RegisterFn([]TypeID{b.Int}, b.Bool)
	fn2 := in.RegisterFn([]TypeID{b.Int, b.Int}, b.Bool)
	fn3 := in.RegisterFn([]TypeID{b.Int}, b.Int)
	all := []TypeID{
		b.Bool, b.Char, b.Int, b.Float,
		in.Pointer(b.Int), in.Pointer(b.Float), in.Reference(b.Int),
		in.Pointer(in.Pointer(b.Char)), fn1, fn2, fn3,
	}

	for i, x := range all {
		if !in.AreSame(x, x) {
			t.Errorf("%s not same as itself", in.Format(x))
		}
		for j, y := range all {
			if in.AreSame(x, y) != in.AreSame(y, x) {
				t.Errorf("AreSame not symmetric for %s, %s", in.Format(x), in.Format(y))
			}
			if i != j && in.AreSame(x, y) {
				t.Errorf("%s and %s must differ", in.Format(x), in.Format(y))
			}
		}
	}
}

func TestAreSameIsStructural(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	orig := in.Pointer(b.Int)
	// дескриптор в обход интернера: другой TypeID, та же структура
	dup := in.internRaw(MakePointer(b.Int))
	if dup == orig {
		t.Fatal("test setup: expected a distinct id")
	}
	if !in.AreSame(dup, orig) || !in.AreSame(in.Reference(dup), in.Reference(orig)) {
		t.Fatal("structurally equal pointers must be the same type")
	}
}

func TestPredicates(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	ptr := in.Pointer(b.Int)
	ref := in.Reference(b.Float)
	fn := in.RegisterFn(nil, b.Int)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"int arithmetic", in.IsArithmetic(b.Int), true},
		{"char arithmetic", in.IsArithmetic(b.Char), false},
		{"bool numeric", in.IsNumeric(b.Bool), true},
		{"pointer numeric", in.IsNumeric(ptr), false},
		{"pointer scalar", in.IsScalar(ptr), true},
		{"fn scalar", in.IsScalar(fn), false},
		{"ref object", in.IsObject(ref), false},
		{"ref to float", in.IsReferenceTo(ref, b.Float), true},
		{"ref to int", in.IsReferenceTo(ref, b.Int), false},
		{"ptr elem", in.IsPointer(ptr) && in.AreSame(in.Elem(ptr), b.Int), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if in.ObjectType(ref) != b.Float || in.ObjectType(b.Int) != b.Int {
		t.Error("ObjectType must strip exactly one reference")
	}
	if in.Elem(ptr) != b.Int || in.Elem(b.Int) != NoTypeID {
		t.Error("Elem misbehaves")
	}
}

func TestFormat(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	cases := []struct {
		id   TypeID
		want string
	}{
		{b.Int, "int"},
		{in.Pointer(in.Pointer(b.Char)), "**char"},
		{in.Reference(b.Bool), "&bool"},
		{in.RegisterFn([]TypeID{b.Int, b.Float}, b.Bool), "(int, float) -> bool"},
		{in.RegisterFn(nil, b.Int), "() -> int"},
	}
	for _, tc := range cases {
		if got := in.Format(tc.id); got != tc.want {
			t.Errorf("Format = %q, want %q", got, tc.want)
		}
	}
}
