package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-savior/index"
)

func TestScanModel_Update(t *testing.T) {
	var model tea.Model = NewScanModel(3, nil)

	model, cmd := model.Update(ResultMsg(index.Result{Path: "/objects/climate.dat"}))
	assert.Nil(t, cmd)
	model, _ = model.Update(ResultMsg(index.Result{Path: "/objects/copy.dat", Cached: true}))
	model, _ = model.Update(ResultMsg(index.Result{Path: "/objects/broken.dat", Err: errors.New("broken")}))

	scan := model.(ScanModel)
	assert.Equal(t, 3, scan.scanned)
	assert.Equal(t, 1, scan.cached)
	assert.Equal(t, []string{"broken.dat"}, scan.failed)

	view := model.View()
	assert.Contains(t, view, "3/3")
	assert.Contains(t, view, "cached: 1, failed: 1")
	assert.Contains(t, view, "✗ broken.dat")
	assert.Contains(t, view, "press q to stop")

	model, cmd = model.Update(DoneMsg{})
	require.NotNil(t, cmd)
	assert.Contains(t, model.View(), "done")
}

func TestScanModel_Quit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var model tea.Model = NewScanModel(10, cancel)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd)
	assert.NoError(t, ctx.Err())

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestScanModel_View(t *testing.T) {
	model := NewScanModel(4, nil)
	model.scanned = 2
	assert.Contains(t, model.View(), "[###############...............] 2/4")

	empty := NewScanModel(0, nil)
	assert.Contains(t, empty.View(), "0/0")

	stopped, _ := empty.Update(DoneMsg{Err: context.Canceled})
	assert.Contains(t, stopped.View(), "stopped: context canceled")
}
