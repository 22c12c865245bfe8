package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"shrink/internal/compress"
	"shrink/internal/driver"
	"shrink/internal/observ"
	"shrink/internal/project"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] [file.js|dir|-]",
	Short: "Compress JavaScript sources",
	Long: `Minify compresses a file, every *.js file under a directory, or stdin.

A single file or stdin is written to stdout unless --out names a file.
A directory is minified in place: each file gets a sibling with the
configured suffix (.min.js by default), or lands under --out.

Rule defaults come from the nearest shrink.toml; explicit rule flags win.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMinify,
}

// ruleFlags maps each rule flag to its compress.Options field.
var ruleFlags = []struct {
	name  string
	usage string
	field func(*compress.Options) *bool
}{
	{"booleans", "shorten true/false to !0/!1", func(o *compress.Options) *bool { return &o.Booleans }},
	{"drop-debugger", "remove debugger statements", func(o *compress.Options) *bool { return &o.DropDebugger }},
	{"join-vars", "merge consecutive var declarations", func(o *compress.Options) *bool { return &o.JoinVars }},
	{"loops", "rewrite while loops as for loops", func(o *compress.Options) *bool { return &o.Loops }},
	{"typeofs", "shorten typeof x == \"undefined\" checks", func(o *compress.Options) *bool { return &o.Typeofs }},
}

func init() {
	addMinifyFlags(minifyCmd)
}

func addMinifyFlags(cmd *cobra.Command) {
	defaults := compress.DefaultOptions()
	for _, rf := range ruleFlags {
		cmd.Flags().Bool(rf.name, *rf.field(&defaults), rf.usage)
	}
	cmd.Flags().StringP("out", "o", "", "output file, or output directory for a directory input")
	cmd.Flags().String("config", "", "path to shrink.toml (default: discovered upwards)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the output cache")
	cmd.Flags().Int("jobs", 0, "parallel files for a directory input (0 = GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI for a directory input (auto|on|off)")
	cmd.Flags().Bool("stats", false, "print rule counters after the run")
}

// minifySettings is the resolved flag and config state of one run.
type minifySettings struct {
	target  string
	out     string
	quiet   bool
	stats   bool
	ui      uiMode
	config  project.Config
	request driver.Request
}

func runMinify(cmd *cobra.Command, args []string) error {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	st, err := readMinifySettings(cmd, args)
	if err != nil {
		return err
	}

	var (
		results []*driver.Result
		runErr  error
	)
	switch info, statErr := os.Stat(st.target); {
	case st.target == "-":
		var res *driver.Result
		res, runErr = minifyStdin(cmd, st)
		results = append(results, res)
	case statErr != nil:
		return fmt.Errorf("minify: %w", statErr)
	case info.IsDir():
		results, runErr = minifyDirectory(cmd, st)
	default:
		var res *driver.Result
		res, runErr = minifyFile(cmd, st)
		results = append(results, res)
	}

	printRunSummary(cmd, st, results)
	return runErr
}

func readMinifySettings(cmd *cobra.Command, args []string) (minifySettings, error) {
	st := minifySettings{target: "-"}
	if len(args) == 1 {
		st.target = args[0]
	}

	flags := cmd.Flags()
	var err error
	if st.out, err = flags.GetString("out"); err != nil {
		return st, fmt.Errorf("failed to get out flag: %w", err)
	}
	if st.stats, err = flags.GetBool("stats"); err != nil {
		return st, fmt.Errorf("failed to get stats flag: %w", err)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return st, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if st.ui, err = readUIMode(uiValue); err != nil {
		return st, err
	}
	st.quiet, _ = cmd.Root().PersistentFlags().GetBool("quiet")

	if st.config, err = loadConfig(cmd, st.target); err != nil {
		return st, err
	}
	opts, err := applyRuleFlags(cmd, st.config.Options())
	if err != nil {
		return st, err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return st, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return st, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	st.request = driver.Request{
		Options:        opts,
		MaxDiagnostics: maxDiagnostics,
		OutDir:         st.config.Output.Dir,
		Suffix:         st.config.Output.Suffix,
		Jobs:           jobs,
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		st.request.Timer = observ.NewTimer()
	}

	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return st, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if !noCache && st.target != "-" {
		cache, err := driver.OpenDiskCache("shrink")
		if err != nil {
			if !st.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
			}
		} else {
			st.request.Cache = cache
		}
	}
	return st, nil
}

// loadConfig reads --config when given, otherwise the nearest shrink.toml
// above the target. No config file means defaults.
func loadConfig(cmd *cobra.Command, target string) (project.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return project.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return project.Load(path)
	}

	start := "."
	if target != "-" {
		start = target
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			start = filepath.Dir(target)
		}
	}
	cfg, err := project.Discover(start)
	if errors.Is(err, project.ErrNoConfig) {
		return cfg, nil
	}
	return cfg, err
}

// applyRuleFlags overrides opts with the rule flags set on the command line.
func applyRuleFlags(cmd *cobra.Command, opts compress.Options) (compress.Options, error) {
	for _, rf := range ruleFlags {
		if !cmd.Flags().Changed(rf.name) {
			continue
		}
		v, err := cmd.Flags().GetBool(rf.name)
		if err != nil {
			return opts, fmt.Errorf("failed to get %s flag: %w", rf.name, err)
		}
		*rf.field(&opts) = v
	}
	return opts, nil
}

func minifyStdin(cmd *cobra.Command, st minifySettings) (*driver.Result, error) {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	res, err := driver.MinifySource(cmd.Context(), "<stdin>", src, st.request.Options)
	printDiagnostics(cmd, res)
	if err != nil {
		return res, err
	}
	return res, emit(cmd, st.out, res.Output)
}

func minifyFile(cmd *cobra.Command, st minifySettings) (*driver.Result, error) {
	res, err := driver.MinifyFile(cmd.Context(), st.target, st.request)
	printDiagnostics(cmd, res)
	if err != nil {
		return res, err
	}
	return res, emit(cmd, st.out, res.Output)
}

func minifyDirectory(cmd *cobra.Command, st minifySettings) ([]*driver.Result, error) {
	req := st.request
	req.Write = true
	if st.out != "" {
		req.OutDir = st.out
	}

	files, err := driver.ListSources(st.target)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", st.target, err)
	}

	var results []*driver.Result
	if len(files) > 0 && !st.quiet && shouldUseTUI(st.ui) {
		results, err = runMinifyDirWithUI(cmd.Context(), "minify", st.target, files, req)
	} else {
		results, err = driver.MinifyDir(cmd.Context(), st.target, req)
	}

	printResultDiagnostics(cmd, results)
	return results, err
}

// emit writes output to stdout when out is empty or "-", else to out.
func emit(cmd *cobra.Command, out string, output []byte) error {
	if out == "" || out == "-" {
		w := cmd.OutOrStdout()
		if _, err := w.Write(output); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	// #nosec G306 -- minified output is meant to be world readable
	if err := os.WriteFile(out, output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.Result) {
	if res == nil {
		return
	}
	printBag(cmd, res.Bag, res.FileSet)
}

// printRunSummary reports sizes, rule counters and timings on stderr so
// stdout carries only the minified program.
func printRunSummary(cmd *cobra.Command, st minifySettings, results []*driver.Result) {
	w := cmd.ErrOrStderr()
	tag := summaryLocale()
	totals := driver.Summarize(results)
	if !st.quiet && (st.stats || totals.Files > 1) {
		fmt.Fprintln(w, totals.Format(tag))
	}
	if st.stats {
		fmt.Fprintln(w, totals.FormatStats(tag))
	}
	if st.request.Timer != nil {
		fmt.Fprint(w, st.request.Timer.Summary())
	}
}

// summaryLocale picks the number formatting locale from LC_ALL or LANG.
func summaryLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LANG"} {
		if tag, ok := localeTag(os.Getenv(key)); ok {
			return tag
		}
	}
	return language.English
}

// localeTag converts a POSIX locale such as "de_DE.UTF-8" to a language tag.
func localeTag(value string) (language.Tag, bool) {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
