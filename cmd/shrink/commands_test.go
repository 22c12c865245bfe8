package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shrink/internal/driver"
	"shrink/internal/jsdoc"
	"shrink/internal/project"
)

func TestReadUIMode(t *testing.T) {
	cases := map[string]uiMode{
		"":     uiModeAuto,
		"auto": uiModeAuto,
		" ON ": uiModeOn,
		"off":  uiModeOff,
	}
	for in, want := range cases {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestPlainEnvironment(t *testing.T) {
	env := func(vars map[string]string) func(string) string {
		return func(k string) string { return vars[k] }
	}
	if !plainEnvironment(env(map[string]string{"TERM": "dumb"})) {
		t.Fatal("dumb terminal should be plain")
	}
	if !plainEnvironment(env(map[string]string{"CI": "true", "TERM": "xterm"})) {
		t.Fatal("CI should be plain")
	}
	if plainEnvironment(env(map[string]string{"TERM": "xterm-256color"})) {
		t.Fatal("xterm should not be plain")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	path, err := writeDefaultConfig(dir)
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Options() != project.Default().Options() {
		t.Fatalf("options = %+v", cfg.Options())
	}
	if _, err := writeDefaultConfig(dir); err == nil {
		t.Fatal("second init should refuse to overwrite")
	}
}

func TestVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	p := collectVersion(versionOptions{showHash: true})
	if err := renderVersionJSON(&buf, p); err != nil {
		t.Fatal(err)
	}
	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["tool"] != "shrink" || got["rules"] != "b1d1j1l1t1" {
		t.Fatalf("payload = %v", got)
	}
	if got["git_commit"] != "unknown" {
		t.Fatalf("git_commit = %q", got["git_commit"])
	}
	if _, ok := got["build_date"]; ok {
		t.Fatal("build_date should be omitted")
	}
}

func TestVersionPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	renderVersionPretty(&buf, collectVersion(versionOptions{}), versionOptions{})
	if !strings.HasPrefix(buf.String(), "shrink ") || strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteDocPretty(t *testing.T) {
	src := "/** Adds.\n * @param {number} a first\n * @deprecated use sum\n */\nfunction add(a) { return a }\n"
	path := filepath.Join(t.TempDir(), "doc.js")
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	res, err := driver.Parse(path, 10)
	if err != nil {
		t.Fatal(err)
	}
	entries := jsdoc.Collect(res.Builder, res.Program, res.File)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	var buf bytes.Buffer
	writeDocPretty(&buf, entries, res.FileSet)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "5:1 function add" {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  @param {number} a") {
		t.Fatalf("param line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "  @deprecated") {
		t.Fatalf("deprecated line = %q", lines[2])
	}
}
