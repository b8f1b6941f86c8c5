package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sable/internal/driver"
	"sable/internal/source"
	"sable/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []*driver.CheckResult
	err     error
}

// runCheckWithUI runs CheckDir in the background and renders its progress events.
func runCheckWithUI(ctx context.Context, dir string, opts driver.CheckOptions) (*source.FileSet, []*driver.CheckResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		withProgress := opts
		withProgress.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.CheckDir(ctx, dir, withProgress)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("check "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c): дочитываем события, чтобы CheckDir не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
