package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fortio.org/safecast"

	"shrink/internal/ast"
	"shrink/internal/compress"
	"shrink/internal/diag"
	"shrink/internal/lexer"
	"shrink/internal/observ"
	"shrink/internal/parser"
	"shrink/internal/printer"
	"shrink/internal/source"
	"shrink/internal/trace"
)

// ErrHasErrors marks a file that was not minified because it failed to parse.
var ErrHasErrors = errors.New("input has syntax errors")

const (
	DefaultSuffix         = ".min.js"
	defaultMaxDiagnostics = 100
)

// Request configures MinifyFile and MinifyDir.
type Request struct {
	Options        compress.Options
	MaxDiagnostics int

	// Write stores the output next to the input, or under OutDir, with
	// the input's extension replaced by Suffix.
	Write  bool
	OutDir string
	Suffix string

	Cache    *DiskCache // nil disables caching
	Jobs     int        // MinifyDir only; <= 0 means GOMAXPROCS
	Progress ProgressSink
	Timer    *observ.Timer
}

func (r Request) maxDiagnostics() int {
	if r.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return r.MaxDiagnostics
}

// Result describes one minified file. Bag holds its parse diagnostics and
// points into FileSet.
type Result struct {
	Path       string
	OutPath    string // empty unless written
	FileSet    *source.FileSet
	FileID     source.FileID
	Bag        *diag.Bag
	Output     []byte
	InputSize  int
	OutputSize int
	Stats      compress.Stats
	Cached     bool
	Err        error
}

// Saved returns how many bytes minification removed.
func (r *Result) Saved() int {
	return r.InputSize - r.OutputSize
}

// MinifySource runs the pipeline over an in-memory source.
func MinifySource(ctx context.Context, name string, src []byte, opts compress.Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	res, err := minifyLoaded(ctx, fs, fileID, Request{Options: opts})
	return res, err
}

// MinifyFile loads path and minifies it, consulting req.Cache first.
func MinifyFile(ctx context.Context, path string, req Request) (*Result, error) {
	start := time.Now()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "minify-file", trace.ParentSpan(ctx))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	fs := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	res, err := minifyCached(ctx, fs, fileID, req)
	if err != nil {
		return res, err
	}
	if req.Write {
		if err := writeOutput(res, req); err != nil {
			return res, err
		}
	}
	finish(req, res, time.Since(start))
	return res, nil
}

// finish reports the file's terminal done event.
func finish(req Request, res *Result, elapsed time.Duration) {
	stage := StagePrint
	if req.Write {
		stage = StageWrite
	}
	report(req.Progress, Event{File: res.Path, Stage: stage, Status: StatusDone, Elapsed: elapsed})
}

func minifyCached(ctx context.Context, fs *source.FileSet, fileID source.FileID, req Request) (*Result, error) {
	file := fs.Get(fileID)
	if req.Cache == nil {
		return minifyLoaded(ctx, fs, fileID, req)
	}

	key := KeyFor(req.Options, file.Content)
	stop := req.Timer.Start("cache")
	var payload CachePayload
	hit, err := req.Cache.Get(key, &payload)
	stop()
	if err == nil && hit {
		trace.Point(trace.FromContext(ctx), trace.ScopeModule, "cache-hit", file.Path, trace.ParentSpan(ctx))
		return &Result{
			Path:       file.Path,
			FileSet:    fs,
			FileID:     fileID,
			Bag:        diag.NewBag(req.maxDiagnostics()),
			Output:     payload.Output,
			InputSize:  payload.InputSize,
			OutputSize: payload.OutputSize,
			Stats:      payload.Stats,
			Cached:     true,
		}, nil
	}

	res, err := minifyLoaded(ctx, fs, fileID, req)
	if err != nil {
		return res, err
	}
	// a failed store only costs the next run a recompute
	_ = req.Cache.Put(key, &CachePayload{
		Output:     res.Output,
		InputSize:  res.InputSize,
		OutputSize: res.OutputSize,
		Stats:      res.Stats,
	})
	return res, nil
}

// minifyLoaded is the uncached parse, compress and print pipeline.
func minifyLoaded(ctx context.Context, fs *source.FileSet, fileID source.FileID, req Request) (*Result, error) {
	file := fs.Get(fileID)
	res := &Result{
		Path:      file.Path,
		FileSet:   fs,
		FileID:    fileID,
		Bag:       diag.NewBag(req.maxDiagnostics()),
		InputSize: len(file.Content),
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	tracer := trace.FromContext(ctx)
	module := trace.Begin(tracer, trace.ScopeModule, file.Path, trace.ParentSpan(ctx))
	defer func() {
		module.WithExtra("in", strconv.Itoa(res.InputSize)).
			WithExtra("out", strconv.Itoa(res.OutputSize)).
			End(errDetail(res.Err))
	}()

	b, prog, ok := parseStage(ctx, fs, file, req, res, module.ID())
	if !ok {
		res.Err = fmt.Errorf("%s: %w", file.Path, ErrHasErrors)
		return res, res.Err
	}

	runStage(req, file.Path, StageCompress, tracer, module.ID(), func() string {
		c := compress.New(b, req.Options)
		c.Build(prog)
		res.Stats = c.Stats()
		return "rules=" + strconv.Itoa(res.Stats.Total())
	})

	runStage(req, file.Path, StagePrint, tracer, module.ID(), func() string {
		res.Output = printer.Print(b, prog)
		res.OutputSize = len(res.Output)
		return ""
	})
	return res, nil
}

func parseStage(ctx context.Context, fs *source.FileSet, file *source.File, req Request, res *Result, parent uint64) (*ast.Builder, *ast.Program, bool) {
	var (
		b    *ast.Builder
		prog *ast.Program
	)
	runStage(req, file.Path, StageParse, trace.FromContext(ctx), parent, func() string {
		maxErrors, err := safecast.Conv[uint](req.maxDiagnostics())
		if err != nil {
			panic(fmt.Errorf("max diagnostics overflow: %w", err))
		}
		rep := &diag.BagReporter{Bag: res.Bag}
		lx := lexer.New(file, lexer.Options{Reporter: rep})
		b = ast.NewBuilder(hintsFor(len(file.Content)))
		prog = parser.ParseFile(fs, lx, b, parser.Options{Reporter: rep, MaxErrors: maxErrors}).Program
		return "diags=" + strconv.Itoa(res.Bag.Len())
	})
	if res.Bag.HasErrors() {
		report(req.Progress, Event{File: file.Path, Stage: StageParse, Status: StatusError, Err: ErrHasErrors})
		return nil, nil, false
	}
	return b, prog, true
}

// runStage wraps fn in a pass span, a timer phase and a working event.
func runStage(req Request, path string, stage Stage, tracer trace.Tracer, parent uint64, fn func() string) {
	report(req.Progress, Event{File: path, Stage: stage, Status: StatusWorking})
	span := trace.Begin(tracer, trace.ScopePass, string(stage), parent)
	start := time.Now()
	detail := fn()
	req.Timer.Add(string(stage), time.Since(start))
	span.End(detail)
}

// hintsFor sizes the arenas from the source length; roughly one
// expression per 4 bytes and one statement per 24.
func hintsFor(n int) ast.Hints {
	un, err := safecast.Conv[uint](n)
	if err != nil {
		return ast.Hints{}
	}
	return ast.Hints{Stmts: un/24 + 1, Exprs: un/4 + 1, Decls: un/48 + 1}
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// OutputPath derives where the minified form of path is written.
func OutputPath(path string, req Request) string {
	suffix := req.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	dir, base := filepath.Split(path)
	if req.OutDir != "" {
		dir = req.OutDir
	}
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+suffix)
}

func writeOutput(res *Result, req Request) error {
	out := OutputPath(res.Path, req)
	report(req.Progress, Event{File: res.Path, Stage: StageWrite, Status: StatusWorking})
	stop := req.Timer.Start(string(StageWrite))
	err := writeFileAtomic(out, res.Output)
	stop()
	if err != nil {
		res.Err = fmt.Errorf("write %s: %w", out, err)
		report(req.Progress, Event{File: res.Path, Stage: StageWrite, Status: StatusError, Err: res.Err})
		return res.Err
	}
	res.OutPath = out
	return nil
}

func writeFileAtomic(path string, data []byte) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), ".shrink-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
