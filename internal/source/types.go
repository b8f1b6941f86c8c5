package source

import "fmt"

type (
	// FileID uniquely identifies a source buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source buffer.
	FileFlags uint8
)

const (
	// FileVirtual marks buffers added from memory (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File is a named source buffer.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // offsets of '\n' bytes
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both parts 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Location pins a token to a buffer, line and column (1-based).
// The zero Location means "unknown".
type Location struct {
	File FileID
	Line uint32
	Col  uint32
}

// IsValid reports whether the location was produced by a lexer.
func (l Location) IsValid() bool {
	return l.Line > 0
}

func (l Location) String() string {
	if !l.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Before reports whether l precedes other (same buffer assumed).
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}
	return l.Col < other.Col
}
