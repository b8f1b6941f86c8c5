package source

import "testing"

func TestInternerIdempotent(t *testing.T) {
	in := NewInterner()

	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID должен давать пустую строку, получили %q ok=%v", s, ok)
	}

	words := []string{"x", "counter", "_tmp1", "while", "x"}
	ids := make(map[string]StringID)
	for _, w := range words {
		id := in.Intern(w)
		if prev, ok := ids[w]; ok && prev != id {
			t.Fatalf("Intern(%q) вернул %d, ранее %d", w, id, prev)
		}
		ids[w] = id
	}

	seen := make(map[StringID]string)
	for w, id := range ids {
		if other, dup := seen[id]; dup {
			t.Fatalf("%q и %q получили одинаковый ID %d", w, other, id)
		}
		seen[id] = w
		if got := in.MustLookup(id); got != w {
			t.Errorf("MustLookup(%d) = %q, want %q", id, got, w)
		}
	}

	if in.Len() != 5 { // "", x, counter, _tmp1, while
		t.Errorf("Len = %d, want 5", in.Len())
	}
}

func TestInternerBytesCopies(t *testing.T) {
	in := NewInterner()
	buf := []byte("name")
	id := in.InternBytes(buf)
	buf[0] = 'g'
	if got := in.MustLookup(id); got != "name" {
		t.Fatalf("interned text changed with the source buffer: %q", got)
	}
	if in.Intern("name") != id {
		t.Fatal("InternBytes and Intern disagree")
	}
}

func TestInternerLookupUnknown(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Fatal("Lookup of unknown id should fail")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustLookup of unknown id should panic")
		}
	}()
	in.MustLookup(StringID(42))
}
