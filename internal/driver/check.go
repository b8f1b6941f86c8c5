package driver

import (
	"context"
	"strconv"
	"time"

	"sable/internal/ast"
	"sable/internal/diag"
	"sable/internal/lexer"
	"sable/internal/parser"
	"sable/internal/project"
	"sable/internal/sema"
	"sable/internal/source"
	"sable/internal/trace"
	"sable/internal/version"
)

type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int // CheckDir only; <= 0 means GOMAXPROCS
	Cache          *DiskCache
	Progress       ProgressSink
}

// CheckResult describes one checked file. Sema is nil when the result was
// replayed from the disk cache: the tree is not cached, only its verdict.
type CheckResult struct {
	Path    string
	FileSet *source.FileSet
	File    *source.File
	Sema    *sema.Context
	Program ast.DeclID
	Bag     *diag.Bag
	Stats   ast.Stats
	Timings Timings
	Cached  bool
}

// OK reports whether the file type-checked without errors.
func (r *CheckResult) OK() bool {
	return r != nil && !r.Bag.HasErrors()
}

// Check loads, parses and type-checks one file.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	tracer := trace.FromContext(ctx)
	root := beginRun(tracer, "check")
	defer root.End("")

	fs := source.NewFileSet()
	load := trace.Begin(tracer, trace.ScopePhase, "load", root.ID())
	started := time.Now()
	fileID, err := fs.Load(path)
	loaded := time.Since(started)
	load.End("")
	if err != nil {
		trace.Failure(tracer, trace.ScopePhase, "load", err, root.ID())
		return nil, err
	}
	res := checkFile(ctx, fs, fileID, path, opts, root.ID())
	res.Timings.Set(StageLoad, loaded)
	return res, nil
}

// checkFile runs the front end over an already loaded file. It never
// returns an error: the single fail-fast error goes into the result's Bag.
// path names the file in progress events and the result.
func checkFile(ctx context.Context, fs *source.FileSet, fileID source.FileID, path string, opts CheckOptions, parent uint64) *CheckResult {
	tracer := trace.FromContext(ctx)
	file := fs.Get(fileID)
	res := &CheckResult{
		Path:    path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
	}

	span := trace.Begin(tracer, trace.ScopeFile, path, parent)
	defer func() {
		verdict := "ok"
		if !res.OK() {
			verdict = "error"
		}
		span.WithField("decls", itoa(int(res.Stats.Decls))).
			WithField("exprs", itoa(int(res.Stats.Exprs))).
			End(verdict)
	}()

	key := project.CacheKey(project.Digest(file.Hash), diskCacheSchemaVersion, version.Version)
	if opts.Cache != nil {
		started := time.Now()
		var summary Summary
		hit, err := opts.Cache.Get(key, &summary)
		if err != nil {
			// битая запись - просто перепроверяем файл
			trace.Failure(tracer, trace.ScopeFile, "cache", err, span.ID())
		}
		if hit && summary.ContentHash == project.Digest(file.Hash) {
			res.Stats = summary.restore(fileID, res.Bag)
			res.Cached = true
			res.Timings.Set(StageCache, time.Since(started))
			trace.Point(tracer, trace.ScopeFile, "cache", "hit", span.ID())
			emit(opts.Progress, Event{File: path, Stage: StageCache, Status: finalStatus(res), Elapsed: time.Since(started)})
			return res
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})
	started := time.Now()
	phase := trace.Begin(tracer, trace.ScopePhase, "parse+sema", span.ID())

	strs := source.NewInterner()
	sc := sema.NewContext(sema.Options{
		File:        file,
		Strings:     strs,
		Tracer:      tracer,
		TraceParent: phase.ID(),
	})
	lx := lexer.New(file, lexer.Options{Strings: strs})
	prog, err := parser.ParseProgram(sc, lx)
	if err != nil {
		trace.Failure(tracer, trace.ScopePhase, diagCategory(err), err, phase.ID())
		diag.ReportErr(diag.BagReporter{Bag: res.Bag}, err)
	}
	phase.End("")

	res.Sema = sc
	res.Program = prog
	res.Stats = sc.Builder.Stats()
	elapsed := time.Since(started)
	res.Timings.Set(StageCheck, elapsed)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newSummary(path, project.Digest(file.Hash), res.Bag, res.Stats)); err != nil {
			trace.Failure(tracer, trace.ScopeFile, "cache", err, span.ID())
		}
	}
	emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: finalStatus(res), Err: err, Elapsed: elapsed})
	return res
}

func finalStatus(res *CheckResult) Status {
	if res.OK() {
		return StatusDone
	}
	return StatusError
}

func diagCategory(err error) string {
	if de, ok := diag.AsError(err); ok {
		return de.Category().String()
	}
	return "error"
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
