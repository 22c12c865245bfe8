package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"shrink/internal/driver"
	"shrink/internal/ui"
)

type dirOutcome struct {
	results []*driver.Result
	err     error
}

// runMinifyDirWithUI runs driver.MinifyDir while a progress view renders
// its events.
func runMinifyDirWithUI(ctx context.Context, title, dir string, files []string, req driver.Request) ([]*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		req.Progress = driver.ChannelSink{Ch: events}
		results, err := driver.MinifyDir(ctx, dir, req)
		outcomeCh <- dirOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the view may quit early; keep the workers from blocking on a full channel
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
