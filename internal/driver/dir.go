package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"shrink/internal/diag"
	"shrink/internal/source"
	"shrink/internal/trace"
)

// ListSources returns the sorted *.js files under dir, skipping already
// minified *.min.js files, node_modules and hidden directories.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == "node_modules" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".js") && !strings.HasSuffix(path, ".min.js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// MinifyDir minifies every source under dir in parallel. Files are loaded
// into one FileSet up front; a file that fails to load or parse gets its
// Err set and the others carry on. The returned error wraps ErrHasErrors
// when any file failed, or is the context error on cancellation.
func MinifyDir(ctx context.Context, dir string, req Request) ([]*Result, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "minify-dir", trace.ParentSpan(ctx)).
		WithExtra("files", strconv.Itoa(len(files)))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		report(req.Progress, Event{File: path, Stage: StageParse, Status: StatusQueued})
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// each goroutine owns results[i]
	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if loadErrs[i] != nil {
				results[i] = loadFailure(fileSet, path, loadErrs[i], req)
				return nil
			}
			res, err := minifyCached(gctx, fileSet, fileIDs[i], req)
			if err == nil && req.Write {
				err = writeOutput(res, req)
			}
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				res.Err = err
			}
			if res.Err == nil {
				finish(req, res, time.Since(start))
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d files failed: %w", failed, len(results), ErrHasErrors)
	}
	return results, nil
}

func loadFailure(fileSet *source.FileSet, path string, err error, req Request) *Result {
	bag := diag.NewBag(req.maxDiagnostics())
	bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.NoSpan, "failed to load "+path+": "+err.Error()))
	report(req.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
	return &Result{Path: path, FileSet: fileSet, Bag: bag, Err: fmt.Errorf("load %s: %w", path, err)}
}
