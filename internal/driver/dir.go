package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sable/internal/diag"
	"sable/internal/source"
	"sable/internal/trace"
)

// SourceExt is the extension of sable source files.
const SourceExt = ".sb"

// ListSourceFiles возвращает отсортированный список всех *.sb файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.sb file under dir in parallel. Files are
// independent compilation units: each gets its own interner, type table and
// scope chain, so workers share nothing but the read-only FileSet.
// Results keep the order of ListSourceFiles.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*source.FileSet, []*CheckResult, error) {
	tracer := trace.FromContext(ctx)
	root := beginRun(tracer, "check "+dir)
	defer root.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: загружаем всё заранее, последовательно
	load := trace.Begin(tracer, trace.ScopePhase, "load", root.ID())
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	load.WithField("files", itoa(len(files))).End("")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*CheckResult, len(files))

	phase := trace.Begin(tracer, trace.ScopePhase, "parse+sema", root.ID())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				// File остаётся nil: у диагностики нет буфера, к которому привязать span
				results[i] = &CheckResult{Path: path, FileSet: fileSet, Bag: bag}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			results[i] = checkFile(gctx, fileSet, fileIDs[path], path, opts, phase.ID())
			return nil
		})
	}
	err = g.Wait()
	phase.End("")
	return fileSet, results, err
}
