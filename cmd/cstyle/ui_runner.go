package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cstyle/internal/driver"
	"cstyle/internal/progressui"
)

// runFormatWithUI runs driver.FormatPaths while a bubbletea progress
// view renders its per-file events, returning once both the
// formatting run and the UI program have finished.
func runFormatWithUI(ctx context.Context, title string, files []string, paths []string, opts driver.Options) ([]driver.Result, error) {
	events := make(chan driver.ProgressEvent, 256)
	uiEvents := make(chan progressui.Event, 256)
	type outcome struct {
		results []driver.Result
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		for ev := range events {
			uiEvents <- progressui.Event{Path: ev.Path, Status: progressui.Status(ev.Status)}
		}
		close(uiEvents)
	}()

	go func() {
		optsCopy := opts
		optsCopy.Progress = events
		res, err := driver.FormatPaths(ctx, paths, optsCopy)
		outcomeCh <- outcome{results: res, err: err}
		close(events)
	}()

	model := progressui.NewModel(title, files, uiEvents)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.results, uiErr
	}
	return out.results, out.err
}
