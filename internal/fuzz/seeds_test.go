package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

var languageSeeds = []string{
	"",
	"let x: int = 1;",
	"def main() -> int { return 0; }",
	"var p: *int = &x; def f() -> int { return p[0]; }",
	"def f(a: int, b: int) -> int { return a < b ? a : b; }",
	"def f() -> int { var i: int = 0; while (i < 3) { i += 1; when (i == 2) break; } return i; }",
	"def f() -> float { return 1 as float * 2.5; }",
	"def c: char = '\\t';",
	"let big: int = 0x7fffffffffffffff;",
	"def f() -> bool { return not true or false and 1 != 2; }",
	"def f() -> int { if (true) { return 1; } else return 2; }",
	// известные ошибки
	"def f() -> int { x++; }",
	"let s: int = \"str\";",
	"def f() -> int { { { { } } } }",
	"let x: int = 1 let y: int = 2;",
	"def f( -> int {}",
	"let x: int = 0b102;",
	"let big: int = 0xffffffffffffffff;",
	"'",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// все *.sb файлы из testdata, включая заведомо ошибочные
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(path) != ".sb" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		f.Fatalf("walk testdata seeds: %v", err)
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
