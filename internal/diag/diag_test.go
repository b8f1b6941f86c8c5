package diag

import (
	"errors"
	"fmt"
	"testing"

	"sable/internal/source"
)

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		cat  Category
		id   string
	}{
		{LexUnknownChar, CatLexical, "LEX1001"},
		{SynExpectSemicolon, CatSyntactic, "SYN2002"},
		{SemaArityMismatch, CatSemantic, "SEM3004"},
		{IOLoadFileError, CatIO, "IO4001"},
		{UnknownCode, CatUnknown, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.cat {
			t.Errorf("%d.Category() = %v, want %v", tt.code, got, tt.cat)
		}
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	loc := source.Location{File: 0, Line: 3, Col: 7}
	base := Errorf(SemaDuplicateSymbol, source.Span{Start: 10, End: 11}, loc, "redeclaration of %q", "x")
	wrapped := fmt.Errorf("check main.sb: %w", base)

	de, ok := AsError(wrapped)
	if !ok || de != base {
		t.Fatalf("AsError failed on wrapped error")
	}
	if CodeOf(wrapped) != SemaDuplicateSymbol {
		t.Errorf("CodeOf = %v", CodeOf(wrapped))
	}
	if CodeOf(errors.New("plain")) != UnknownCode {
		t.Error("CodeOf plain error should be UnknownCode")
	}
	want := `SEM3002 semantic error at 3:7: redeclaration of "x"`
	if base.Error() != want {
		t.Errorf("Error() = %q, want %q", base.Error(), want)
	}
}

func TestReportErrIntoBag(t *testing.T) {
	bag := NewBag(4)
	e := Errorf(LexBadEscape, source.Span{Start: 1, End: 3}, source.Location{Line: 1, Col: 2}, "bad escape")
	e.WithNote(source.Span{Start: 0, End: 1}, "literal starts here")
	ReportErr(BagReporter{Bag: bag}, e)
	ReportErr(BagReporter{Bag: bag}, errors.New("boom"))

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("bag has %d items", len(items))
	}
	if items[0].Loc.Col != 2 || len(items[0].Notes) != 1 {
		t.Errorf("located diagnostic lost data: %+v", items[0])
	}
	if items[1].Code != UnknownCode {
		t.Errorf("plain error code = %v", items[1].Code)
	}
	if !bag.HasErrors() {
		t.Error("HasErrors = false")
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	bag.Add(NewError(SemaTypeMismatch, source.Span{File: 1, Start: 5}, "b"))
	bag.Add(NewError(LexBadNumber, source.Span{File: 0, Start: 9}, "a"))
	if bag.Add(NewError(LexBadNumber, source.Span{}, "c")) {
		t.Fatal("Add past the limit should fail")
	}
	if bag.Len() != 2 || bag.Items()[0].Message != "b" {
		t.Errorf("items = %+v, want insertion order b, a", bag.Items())
	}
}

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sb", []byte("var x: int = y;\n"))
	d := NewError(SemaUnresolvedSymbol, source.Span{File: id, Start: 13, End: 14}, `unresolved identifier "y"`)
	got := FormatShort([]Diagnostic{d}, fs)
	want := "a.sb:1:14: ERROR SEM3001: unresolved identifier \"y\"\n"
	if got != want {
		t.Errorf("FormatShort = %q, want %q", got, want)
	}
}
