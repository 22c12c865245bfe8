package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shrink/internal/compress"
	"shrink/internal/diag"
)

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse("/p/shrink.toml", []byte("[compress]\nloops = false\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := compress.DefaultOptions()
	want.Loops = false
	if cfg.Options() != want {
		t.Fatalf("options = %+v, want %+v", cfg.Options(), want)
	}
	if cfg.Output.Suffix != ".min.js" {
		t.Fatalf("suffix = %q", cfg.Output.Suffix)
	}
}

func TestParseResolvesOutputDir(t *testing.T) {
	cfg, err := Parse(filepath.Join("/p", ConfigName), []byte("[output]\ndir = \"dist\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != filepath.Join("/p", "dist") {
		t.Fatalf("dir = %q", cfg.Output.Dir)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code diag.Code
	}{
		{"syntax", "[compress\n", diag.CfgParseError},
		{"unknown key", "[compress]\nmangle = true\n", diag.CfgUnknownField},
		{"empty suffix", "[output]\nsuffix = \" \"\n", diag.CfgParseError},
		{"wrong type", "[compress]\nloops = \"yes\"\n", diag.CfgParseError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("shrink.toml", []byte(tt.data))
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if cfgErr.Code != tt.code {
				t.Fatalf("code = %v, want %v", cfgErr.Code, tt.code)
			}
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(nested); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, ConfigName), []byte("[compress]\nbooleans = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compress.Booleans || !cfg.Compress.Loops {
		t.Fatalf("unexpected config %+v", cfg.Compress)
	}
	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("FindProjectRoot = %q, %v, %v", dir, ok, err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Compress.JoinVars = false
	data, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse("shrink.toml", data)
	if err != nil {
		t.Fatal(err)
	}
	if back.Options() != cfg.Options() || back.Output.Suffix != cfg.Output.Suffix {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}
