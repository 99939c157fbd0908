package main

import (
	"context"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"schemat/internal/driver"
	"schemat/internal/ui"
)

func useProgressUI(flags runFlags) bool {
	if flags.stdout {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(flags.uiMode)) {
	case "on":
		return true
	case "auto":
		return isTerminal(os.Stdout)
	default:
		return false
	}
}

// runWithProgress runs the formatter with a live Bubble Tea view fed by the
// driver's observer. The file list is collected up front so every file has
// a row before any work starts.
func runWithProgress(ctx context.Context, paths []string, opts driver.Options) ([]driver.Result, error) {
	files, err := driver.CollectSourceFiles(ctx, paths, opts.Extensions, opts.Ignore)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.Result, len(files))
	opts.Observer = func(res driver.Result) {
		events <- res
	}

	type runOutcome struct {
		results []driver.Result
		err     error
	}
	outcome := make(chan runOutcome, 1)
	go func() {
		results, err := driver.FormatPaths(ctx, paths, opts)
		close(events)
		outcome <- runOutcome{results: results, err: err}
	}()

	model := ui.NewProgressModel("schemat", files, events)
	if _, teaErr := tea.NewProgram(model, tea.WithContext(ctx)).Run(); teaErr != nil {
		// Fall back to plain output; the run itself still finishes below.
		for range events {
		}
	}

	run := <-outcome
	return run.results, run.err
}
