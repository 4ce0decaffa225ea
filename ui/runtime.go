package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"loco-savior/index"
)

// RunScan scans paths while rendering a progress view. Quitting the view cancels the scan.
func RunScan(ctx context.Context, scanner *index.Scanner, paths []string) ([]index.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewScanModel(len(paths), cancel))
	scanner.OnResult = func(result index.Result) {
		program.Send(ResultMsg(result))
	}

	var (
		results []index.Result
		scanErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, scanErr = scanner.Scan(ctx, paths)
		program.Send(DoneMsg{Err: scanErr})
	}()

	if err := program.Start(); err != nil {
		cancel()
		<-done
		return results, errors.Wrap(err, "ui.RunScan error")
	}
	cancel()
	<-done
	return results, scanErr
}
