package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"shrink/internal/compress"
	"shrink/internal/diag"
)

// ErrNoConfig is returned by Discover when no shrink.toml exists above the start directory.
var ErrNoConfig = errors.New("no " + ConfigName + " found")

// Config is the decoded shrink.toml.
type Config struct {
	Path     string         `toml:"-"`
	Compress CompressConfig `toml:"compress"`
	Output   OutputConfig   `toml:"output"`
}

type CompressConfig struct {
	Booleans     bool `toml:"booleans"`
	DropDebugger bool `toml:"drop_debugger"`
	JoinVars     bool `toml:"join_vars"`
	Loops        bool `toml:"loops"`
	Typeofs      bool `toml:"typeofs"`
}

type OutputConfig struct {
	Dir    string `toml:"dir"`
	Suffix string `toml:"suffix"`
}

// Error is a configuration problem tied to a file.
type Error struct {
	Code diag.Code
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Path, e.Code.ID(), e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Code.ID(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Default mirrors compress.DefaultOptions with output next to the input.
func Default() Config {
	opts := compress.DefaultOptions()
	return Config{
		Compress: CompressConfig{
			Booleans:     opts.Booleans,
			DropDebugger: opts.DropDebugger,
			JoinVars:     opts.JoinVars,
			Loops:        opts.Loops,
			Typeofs:      opts.Typeofs,
		},
		Output: OutputConfig{Suffix: ".min.js"},
	}
}

// Load decodes path. Keys the file leaves out keep their defaults; unknown
// keys are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes data as if read from path.
func Parse(path string, data []byte) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, &Error{Code: diag.CfgParseError, Path: path, Msg: "failed to parse TOML", Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, &Error{Code: diag.CfgUnknownField, Path: path, Msg: "unknown keys " + strings.Join(keys, ", ")}
	}
	if meta.IsDefined("output", "suffix") && strings.TrimSpace(cfg.Output.Suffix) == "" {
		return Config{}, &Error{Code: diag.CfgParseError, Path: path, Msg: "[output].suffix must not be empty"}
	}
	if cfg.Output.Dir != "" && !filepath.IsAbs(cfg.Output.Dir) {
		cfg.Output.Dir = filepath.Join(filepath.Dir(path), filepath.FromSlash(cfg.Output.Dir))
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds and loads the nearest shrink.toml above startDir.
func Discover(startDir string) (Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), ErrNoConfig
	}
	return Load(path)
}

// Options converts the [compress] table.
func (c Config) Options() compress.Options {
	return compress.Options{
		Booleans:     c.Compress.Booleans,
		DropDebugger: c.Compress.DropDebugger,
		JoinVars:     c.Compress.JoinVars,
		Loops:        c.Compress.Loops,
		Typeofs:      c.Compress.Typeofs,
	}
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
