package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"loco-savior/index"
)

const barWidth = 30

type (
	ResultMsg index.Result

	DoneMsg struct {
		Err error
	}

	// ScanModel shows the progress of a directory scan.
	ScanModel struct {
		total    int
		scanned  int
		cached   int
		failed   []string
		last     string
		finished bool
		err      error
		cancel   context.CancelFunc
	}
)

func NewScanModel(total int, cancel context.CancelFunc) ScanModel {
	return ScanModel{
		total:  total,
		failed: make([]string, 0),
		cancel: cancel,
	}
}

func (m ScanModel) Init() tea.Cmd {
	return nil
}

func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case ResultMsg:
		m.scanned += 1
		m.last = msg.Path
		if msg.Cached {
			m.cached += 1
		}
		if msg.Err != nil {
			m.failed = append(m.failed, filepath.Base(msg.Path))
		}
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

func (m ScanModel) View() string {
	output := "LOCO SAVIOR\n\n"

	filled := 0
	if m.total > 0 {
		filled = m.scanned * barWidth / m.total
	}
	output += fmt.Sprintf(
		"[%s%s] %d/%d\n",
		strings.Repeat("#", filled),
		strings.Repeat(".", barWidth-filled),
		m.scanned,
		m.total,
	)
	output += fmt.Sprintf("cached: %d, failed: %d\n", m.cached, len(m.failed))
	if m.last != "" && !m.finished {
		output += "last: " + filepath.Base(m.last) + "\n"
	}
	for _, name := range m.failed {
		output += "  ✗ " + name + "\n"
	}

	switch {
	case m.err != nil:
		output += "\nstopped: " + m.err.Error() + "\n"
	case m.finished:
		output += "\ndone\n"
	default:
		output += "\npress q to stop\n"
	}
	return output
}
