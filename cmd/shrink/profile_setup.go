package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shrink/internal/prof"
)

// setupProfiling starts the profilers named by the profiling flags. The
// cleanup writes the heap profile and reports failures on stderr.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	var paths prof.Paths
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"cpu-profile", &paths.CPU},
		{"mem-profile", &paths.Heap},
		{"runtime-trace", &paths.Trace},
	} {
		v, err := flags.GetString(f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	if !paths.Enabled() {
		return func() {}, nil
	}

	session, err := prof.Start(paths)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
		}
	}, nil
}
