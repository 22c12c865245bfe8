package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/language"

	"shrink/internal/compress"
	"shrink/internal/observ"
	"shrink/internal/trace"
)

const sample = "var a = 1;\nvar b = true;\nwhile (x) { debugger; }\n"

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) statuses(file string) []Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Status
	for _, ev := range r.events {
		if ev.File == file {
			out = append(out, ev.Status)
		}
	}
	return out
}

func TestMinifySource(t *testing.T) {
	res, err := MinifySource(context.Background(), "sample.js", []byte(sample), compress.DefaultOptions())
	require.NoError(t, err)

	want := "var a=1,b=!0;for(;x;){}"
	assert.Equal(t, want, string(res.Output))
	assert.Equal(t, len(sample), res.InputSize)
	assert.Equal(t, len(want), res.OutputSize)
	assert.Equal(t, len(sample)-len(want), res.Saved())
	assert.Equal(t, compress.Stats{
		DroppedDebugger:   1,
		JoinedDecls:       1,
		LoopsRewritten:    1,
		BooleansRewritten: 1,
	}, res.Stats)
	assert.False(t, res.Bag.HasErrors())
}

func TestMinifySourceRespectsOptions(t *testing.T) {
	opts := compress.DefaultOptions()
	opts.Loops = false
	opts.Booleans = false
	res, err := MinifySource(context.Background(), "sample.js", []byte(sample), opts)
	require.NoError(t, err)
	assert.Equal(t, "var a=1,b=true;while(x){}", string(res.Output))
}

func TestMinifySourceSyntaxError(t *testing.T) {
	res, err := MinifySource(context.Background(), "bad.js", []byte("var = ;"), compress.DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHasErrors))
	require.NotNil(t, res)
	assert.True(t, res.Bag.HasErrors())
	assert.Nil(t, res.Output)
}

func TestMinifySourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := MinifySource(ctx, "a.js", []byte("a;"), compress.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path string
		req  Request
		want string
	}{
		{"src/app.js", Request{}, "src/app.min.js"},
		{"src/app.js", Request{OutDir: "dist"}, "dist/app.min.js"},
		{"src/app.js", Request{Suffix: ".x.js"}, "src/app.x.js"},
		{"app.mjs", Request{}, "app.min.js"},
	}
	for _, tt := range tests {
		assert.Equal(t, filepath.FromSlash(tt.want), OutputPath(filepath.FromSlash(tt.path), tt.req), tt.path)
	}
}

func TestMinifyFileWritesOutput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.js": sample})
	rec := &recorder{}
	timer := observ.NewTimer()

	res, err := MinifyFile(context.Background(), filepath.Join(dir, "app.js"), Request{
		Options:  compress.DefaultOptions(),
		Write:    true,
		Progress: rec,
		Timer:    timer,
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "app.min.js"), res.OutPath)

	got, err := os.ReadFile(res.OutPath)
	require.NoError(t, err)
	assert.Equal(t, res.Output, got)

	statuses := rec.statuses(res.Path)
	require.NotEmpty(t, statuses)
	assert.Equal(t, StatusDone, statuses[len(statuses)-1])

	var names []string
	for _, ph := range timer.Report().Phases {
		names = append(names, ph.Name)
	}
	assert.Equal(t, []string{"parse", "compress", "print", "write"}, names)
}

func TestMinifyFileMissing(t *testing.T) {
	_, err := MinifyFile(context.Background(), filepath.Join(t.TempDir(), "nope.js"), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCacheHitReturnsSameOutput(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"app.js": sample})
	cache, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	require.NoError(t, err)

	req := Request{Options: compress.DefaultOptions(), Cache: cache}
	path := filepath.Join(dir, "app.js")

	first, err := MinifyFile(context.Background(), path, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := MinifyFile(context.Background(), path, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.InputSize, second.InputSize)

	req.Options.Booleans = false
	third, err := MinifyFile(context.Background(), path, req)
	require.NoError(t, err)
	assert.False(t, third.Cached, "different options must miss")
}

func TestCacheSchemaMismatchIsMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	require.NoError(t, err)
	key := KeyFor(compress.DefaultOptions(), []byte("a;"))

	stale := CachePayload{Schema: cacheSchemaVersion + 1, Output: []byte("stale")}
	data, err := msgpack.Marshal(&stale)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(cache.pathFor(key)), 0o755))
	require.NoError(t, os.WriteFile(cache.pathFor(key), data, 0o644))

	var out CachePayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "c"))
	require.NoError(t, err)
	key := KeyFor(compress.DefaultOptions(), []byte("a;"))
	require.NoError(t, cache.Put(key, &CachePayload{Output: []byte("a;")}))

	var out CachePayload
	hit, err := cache.Get(key, &out)
	require.NoError(t, err)
	require.True(t, hit)

	require.NoError(t, cache.DropAll())
	hit, err = cache.Get(key, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.DirExists(t, cache.Dir())
}

func TestKeyFor(t *testing.T) {
	opts := compress.DefaultOptions()
	a := KeyFor(opts, []byte("x;"))
	assert.Equal(t, a, KeyFor(opts, []byte("x;")))
	assert.NotEqual(t, a, KeyFor(opts, []byte("y;")))
	opts.Typeofs = false
	assert.NotEqual(t, a, KeyFor(opts, []byte("x;")))
}

func TestListSources(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.js":                "b;",
		"a.js":                "a;",
		"a.min.js":            "a;",
		"sub/c.js":            "c;",
		"node_modules/d.js":   "d;",
		".hidden/e.js":        "e;",
		"notes.txt":           "",
		"sub/deeper/f.min.js": "f;",
	})

	files, err := ListSources(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "b.js"),
		filepath.Join(dir, "sub", "c.js"),
	}, files)
}

func TestMinifyDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"one.js":     "var a = 1; var b = 2;",
		"two.js":     "if (typeof x == \"undefined\") y();",
		"broken.js":  "var = ;",
		"lib/tri.js": "while (true) {}",
	})
	out := filepath.Join(dir, "dist")
	rec := &recorder{}

	results, err := MinifyDir(context.Background(), dir, Request{
		Options:  compress.DefaultOptions(),
		Write:    true,
		OutDir:   out,
		Jobs:     2,
		Progress: rec,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHasErrors)
	require.Len(t, results, 4)

	byName := map[string]*Result{}
	for _, res := range results {
		byName[filepath.Base(res.Path)] = res
	}

	broken := byName["broken.js"]
	require.NotNil(t, broken)
	assert.ErrorIs(t, broken.Err, ErrHasErrors)
	assert.True(t, broken.Bag.HasErrors())
	assert.Contains(t, rec.statuses(broken.Path), StatusError)
	assert.NoFileExists(t, filepath.Join(out, "broken.min.js"))

	for name, want := range map[string]string{
		"one.js": "var a=1,b=2;",
		"two.js": "if(x===void 0)y();",
		"tri.js": "for(;!0;){}",
	} {
		res := byName[name]
		require.NotNil(t, res, name)
		require.NoError(t, res.Err, name)
		got, err := os.ReadFile(res.OutPath)
		require.NoError(t, err, name)
		assert.Equal(t, want, string(got), name)

		statuses := rec.statuses(res.Path)
		assert.Equal(t, StatusQueued, statuses[0], name)
		assert.Equal(t, StatusDone, statuses[len(statuses)-1], name)
	}

	totals := Summarize(results)
	assert.Equal(t, 4, totals.Files)
	assert.Equal(t, 1, totals.Failed)
	assert.Equal(t, 1, totals.Stats.JoinedDecls)
	assert.Equal(t, 1, totals.Stats.TypeofsRewritten)
}

func TestMinifyDirEmpty(t *testing.T) {
	results, err := MinifyDir(context.Background(), t.TempDir(), Request{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMinifyDirTraces(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.js": "a;", "b.js": "b;"})
	ring := trace.NewRingTracer(256, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	_, err := MinifyDir(ctx, dir, Request{Options: compress.DefaultOptions()})
	require.NoError(t, err)

	seen := map[string]bool{}
	var driverID uint64
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanBegin {
			continue
		}
		seen[ev.Name] = true
		if ev.Scope == trace.ScopeDriver {
			driverID = ev.SpanID
		}
		if ev.Scope == trace.ScopeModule {
			assert.Equal(t, driverID, ev.ParentID, "module span %s", ev.Name)
		}
	}
	for _, name := range []string{"minify-dir", "parse", "compress", "print", filepath.Join(dir, "a.js")} {
		assert.True(t, seen[name], "missing span %q", name)
	}
}

func TestTotalsFormat(t *testing.T) {
	totals := Totals{Files: 2, Cached: 1, InputSize: 12345, OutputSize: 6789}
	assert.Equal(t, "2 files, 12,345 → 6,789 bytes (-45.0%), 1 cached", totals.Format(language.English))
	assert.InDelta(t, 45.0, totals.Reduction(), 0.01)
	assert.Equal(t, 0.0, Totals{}.Reduction())
}

func TestTokenizeAndParse(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.js": "let x = 1;"})
	path := filepath.Join(dir, "a.js")

	toks, err := Tokenize(path, 10)
	require.NoError(t, err)
	assert.Len(t, toks.Tokens, 6) // let x = 1 ; EOF

	parsed, err := Parse(path, 10)
	require.NoError(t, err)
	assert.False(t, parsed.Bag.HasErrors())
	assert.Len(t, parsed.Program.Body, 1)
}
