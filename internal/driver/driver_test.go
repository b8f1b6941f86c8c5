package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"

	"sable/internal/diag"
	"sable/internal/driver"
	"sable/internal/token"
	"sable/internal/trace"
)

const validProgram = `let limit: int = 10;
def twice(n: int) -> int {
	return n * 2;
}
`

const brokenProgram = "var x: int = y;\n"

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckValidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sb", validProgram)
	res, err := driver.Check(context.Background(), path, driver.CheckOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() {
		t.Fatalf("unexpected diagnostics: %s", diag.FormatShort(res.Bag.Items(), res.FileSet))
	}
	if res.Sema == nil || !res.Program.IsValid() {
		t.Fatal("expected a typed tree")
	}
	if res.Stats.Decls == 0 || res.Stats.Exprs == 0 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if !res.Timings.Has(driver.StageLoad) || !res.Timings.Has(driver.StageCheck) {
		t.Error("load and check timings must be recorded")
	}
}

func TestCheckReportsFirstError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.sb", brokenProgram)
	res, err := driver.Check(context.Background(), path, driver.CheckOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatal(err)
	}
	items := res.Bag.Items()
	if len(items) != 1 {
		t.Fatalf("got %d diagnostics, want exactly one", len(items))
	}
	d := items[0]
	if d.Code != diag.SemaUnresolvedSymbol {
		t.Errorf("code = %v", d.Code)
	}
	if d.Loc.Line != 1 || d.Loc.Col != 14 {
		t.Errorf("location = %v", d.Loc)
	}
}

func TestCheckMissingFile(t *testing.T) {
	if _, err := driver.Check(context.Background(), filepath.Join(t.TempDir(), "nope.sb"), driver.CheckOptions{}); err == nil {
		t.Fatal("expected load error")
	}
}

func TestTokenizeStopsAtLexError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lex.sb", "var x: int = 1 @ 2;")
	res, err := driver.Tokenize(context.Background(), path, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() || res.Bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected LexUnknownChar, got %v", res.Bag.Items())
	}
	if len(res.Tokens) == 0 || res.Tokens[0].Kind != token.KwVar {
		t.Errorf("tokens before the error must be kept, got %d", len(res.Tokens))
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(ev driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) final() map[string]driver.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]driver.Status)
	for _, ev := range s.events {
		if ev.Status == driver.StatusDone || ev.Status == driver.StatusError {
			out[ev.File] = ev.Status
		}
	}
	return out
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.sb", validProgram)
	b := writeFile(t, dir, "nested/b.sb", brokenProgram)
	writeFile(t, dir, ".hidden/c.sb", brokenProgram)
	writeFile(t, dir, "notes.txt", "not source")

	sink := &recordingSink{}
	_, results, err := driver.CheckDir(context.Background(), dir, driver.CheckOptions{MaxDiagnostics: 5, Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Path != a || results[1].Path != b {
		t.Fatalf("order = %s, %s", results[0].Path, results[1].Path)
	}
	if !results[0].OK() || results[1].OK() {
		t.Errorf("verdicts = %v, %v", results[0].OK(), results[1].OK())
	}
	final := sink.final()
	if final[a] != driver.StatusDone || final[b] != driver.StatusError {
		t.Errorf("progress = %v", final)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := driver.CheckDir(context.Background(), t.TempDir(), driver.CheckOptions{})
	if err != nil || len(results) != 0 {
		t.Fatalf("results=%d err=%v", len(results), err)
	}
}

func TestDiskCacheReplaysDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.sb", brokenProgram)
	cache, err := driver.OpenDiskCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.CheckOptions{MaxDiagnostics: 10, Cache: cache}

	first, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run must miss")
	}
	second, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.Sema != nil {
		t.Fatalf("second run must be served from cache (cached=%v)", second.Cached)
	}
	got, want := second.Bag.Items(), first.Bag.Items()
	if len(got) != len(want) || got[0].Code != want[0].Code || got[0].Loc != want[0].Loc || got[0].Primary != want[0].Primary {
		t.Fatalf("replayed %+v, want %+v", got, want)
	}
	if second.Stats != first.Stats {
		t.Errorf("stats %+v, want %+v", second.Stats, first.Stats)
	}

	// новое содержимое - новый ключ
	writeFile(t, dir, "bad.sb", validProgram)
	third, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached || !third.OK() {
		t.Fatalf("edited file must be rechecked (cached=%v ok=%v)", third.Cached, third.OK())
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	fourth, err := driver.Check(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if fourth.Cached {
		t.Fatal("DropAll must invalidate entries")
	}
}

func TestCheckEmitsTraceSpans(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ok.sb", validProgram)
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	if _, err := driver.Check(ctx, path, driver.CheckOptions{}); err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	decls := 0
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanEnd {
			continue
		}
		names[ev.Name] = true
		if ev.Name == "check" {
			if _, err := uuid.Parse(ev.Fields["run"]); err != nil {
				t.Errorf("root span run id %q: %v", ev.Fields["run"], err)
			}
		}
		if ev.Scope == trace.ScopeNode {
			decls++
			if ev.Fields["name"] == "" {
				t.Errorf("declaration span without name: %+v", ev)
			}
		}
	}
	if decls == 0 {
		t.Error("expected a node span per top-level declaration")
	}
	for _, want := range []string{"check", "load", "parse+sema", path} {
		if !names[want] {
			t.Errorf("missing span %q in %v", want, names)
		}
	}
}
