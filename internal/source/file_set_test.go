package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("ab\ncde\n\nf")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n'
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{7, LineCol{3, 1}},
		{8, LineCol{4, 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sb")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("var x: int = 1;\r\nlet y: int = 2;\r\n")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if got := f.GetLine(2); got != "let y: int = 2;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestFileSetFormatLocation(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("mem/a.sb", []byte("x\n  y"))
	loc := fs.LocationOf(id, 4)
	if loc.Line != 2 || loc.Col != 3 {
		t.Fatalf("LocationOf = %+v", loc)
	}
	if got := fs.FormatLocation(loc); got != "mem/a.sb:2:3" {
		t.Errorf("FormatLocation = %q", got)
	}
	if got := fs.FormatLocation(Location{}); got != "<unknown>" {
		t.Errorf("zero location = %q", got)
	}
	if !(Location{Line: 1, Col: 4}).Before(Location{Line: 2, Col: 1}) {
		t.Error("Before ordering broken")
	}
}
