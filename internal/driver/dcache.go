package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/project"
	"sable/internal/source"
)

// Current schema version - increment when Summary format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит итоги проверки файлов, ключ - хеш содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Summary is what a check of one file leaves on disk: enough to replay
// its diagnostics and node counts without lexing again.
type Summary struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	OK          bool
	Diagnostics []CachedDiagnostic
	Decls       uint32
	Stmts       uint32
	Exprs       uint32
}

type CachedDiagnostic struct {
	Code     int
	Severity uint8
	Message  string
	Start    uint32
	End      uint32
	Line     uint32
	Col      uint32
	Notes    []CachedNote
}

type CachedNote struct {
	Msg   string
	Start uint32
	End   uint32
}

// DefaultCacheDir returns $XDG_CACHE_HOME/<app> or ~/.cache/<app>.
func DefaultCacheDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// OpenDiskCache creates dir if needed and returns a cache rooted there.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	// Для удобства читаемости/очистки: подкаталог "files".
	return filepath.Join(c.dir, "files", key.String()+".mp")
}

// Put serializes and writes a summary to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *Summary) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a summary. A missing entry or a summary written by another
// schema is a miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *Summary) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func newSummary(path string, hash project.Digest, bag *diag.Bag, stats ast.Stats) *Summary {
	s := &Summary{
		Schema:      diskCacheSchemaVersion,
		Path:        path,
		ContentHash: hash,
		OK:          !bag.HasErrors(),
		Decls:       stats.Decls,
		Stmts:       stats.Stmts,
		Exprs:       stats.Exprs,
	}
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Code:     int(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Line:     d.Loc.Line,
			Col:      d.Loc.Col,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Msg: n.Msg, Start: n.Span.Start, End: n.Span.End})
		}
		s.Diagnostics = append(s.Diagnostics, cd)
	}
	return s
}

// restore replays the cached diagnostics against file (the FileID differs between runs).
func (s *Summary) restore(file source.FileID, bag *diag.Bag) ast.Stats {
	for _, cd := range s.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), source.Span{File: file, Start: cd.Start, End: cd.End}, cd.Message)
		if cd.Line > 0 {
			d.Loc = source.Location{File: file, Line: cd.Line, Col: cd.Col}
		}
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		bag.Add(d)
	}
	return ast.Stats{Decls: s.Decls, Stmts: s.Stmts, Exprs: s.Exprs}
}
