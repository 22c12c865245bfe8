package version

import (
	"strings"
	"testing"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersion_CanBeOverridden(t *testing.T) {
	origVersion, origGitCommit, origBuildDate := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origGitCommit, origBuildDate
	})

	// simulates -ldflags "-X shrink/internal/version.Version=..."
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2024-01-15T10:30:00Z"

	if Version != "1.2.3" || GitCommit != "abc123def456" || BuildDate != "2024-01-15T10:30:00Z" {
		t.Errorf("override lost: %q %q %q", Version, GitCommit, BuildDate)
	}
}

func TestColoredPlain(t *testing.T) {
	for _, v := range []string{
		"0.1.0",
		"0.1.0-dev",
		"1.2.3-rc.1+build.123",
		"dev",
		"1.2",
	} {
		if got := Colored(v, false); got != v {
			t.Errorf("Colored(%q, false) = %q", v, got)
		}
	}
}

func TestColoredEnabled(t *testing.T) {
	got := Colored("1.2.3-dev", true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escapes in %q", got)
	}
	if !strings.HasSuffix(got, "-dev") {
		t.Errorf("pre-release suffix should stay plain: %q", got)
	}
	if got := Colored("dev", true); got != "dev" {
		t.Errorf("non-semver input should pass through, got %q", got)
	}
}
