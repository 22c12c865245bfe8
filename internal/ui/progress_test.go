package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrink/internal/driver"
)

func TestApplyEventTracksStages(t *testing.T) {
	files := []string{"/p/a.js", "/p/lib/b.js"}
	m := newProgressModel("minify", "/p", files, nil)

	m.applyEvent(driver.Event{File: "/p/a.js", Stage: driver.StageCompress, Status: driver.StatusWorking})
	assert.Equal(t, "compressing", m.items[0].status)
	assert.InDelta(t, 0.25, m.percent(), 1e-9) // (0.5 + 0) / 2

	m.applyEvent(driver.Event{File: "/p/a.js", Stage: driver.StagePrint, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "/p/lib/b.js", Stage: driver.StageParse, Status: driver.StatusError})
	assert.Equal(t, "done", m.items[0].status)
	assert.Equal(t, "error", m.items[1].status)
	assert.InDelta(t, 1.0, m.percent(), 1e-9)
	assert.Equal(t, 2, m.finished())

	// unknown files are ignored
	assert.Nil(t, m.applyEvent(driver.Event{File: "/elsewhere.js", Status: driver.StatusDone}))
}

func TestViewListsRelativeNames(t *testing.T) {
	m := newProgressModel("minify", "/p", []string{"/p/a.js", "/p/lib/b.js", "/other/c.js"}, nil)
	view := m.View()
	lines := strings.Split(view, "\n")
	require.Greater(t, len(lines), 4)
	assert.Contains(t, lines[0], "minify (0/3)")
	assert.True(t, strings.HasSuffix(lines[2], " a.js"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], " lib/b.js"), lines[3])
	assert.True(t, strings.HasSuffix(lines[4], " /other/c.js"), lines[4])
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		stage  driver.Stage
		status driver.Status
		want   string
	}{
		{driver.StageParse, driver.StatusQueued, "queued"},
		{driver.StageParse, driver.StatusWorking, "parsing"},
		{driver.StageWrite, driver.StatusWorking, "writing"},
		{driver.StagePrint, driver.StatusDone, "done"},
		{driver.StageCompress, driver.StatusError, "error"},
		{driver.StageCompress, driver.Status("bogus"), ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusLabel(tt.stage, tt.status))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short.js", truncate("short.js", 20))
	assert.Equal(t, "very/long/p...", truncate("very/long/path/to/file.js", 14))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestViewShowsElapsedAndFailures(t *testing.T) {
	m := newProgressModel("minify", "/p", []string{"/p/a.js", "/p/b.js"}, nil)
	m.applyEvent(driver.Event{File: "/p/a.js", Stage: driver.StageWrite, Status: driver.StatusDone, Elapsed: 1500 * time.Microsecond})
	m.applyEvent(driver.Event{File: "/p/b.js", Stage: driver.StageParse, Status: driver.StatusError})

	assert.Equal(t, 1, m.failed())
	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), 3)
	assert.Contains(t, lines[0], "minify (2/2), 1 failed")
	assert.Contains(t, lines[2], "a.js")
	assert.Contains(t, lines[2], "2ms")
	assert.NotContains(t, lines[3], "ms")
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "250µs", formatElapsed(250*time.Microsecond))
	assert.Equal(t, "12ms", formatElapsed(12*time.Millisecond+300*time.Microsecond))
}
