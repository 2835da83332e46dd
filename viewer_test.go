package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiremap/wiring"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	m, err := initialModel(wiring.Default(), "", defaultConfig())
	require.NoError(t, err)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model)
}

func press(t *testing.T, m model, key string) (model, tea.Cmd) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func TestViewerStartsOnBoard(t *testing.T) {
	m := newTestModel(t)

	cols, rows := m.gridSize()
	// 400x300 at 2x4 mm cells
	assert.Equal(t, 201, cols)
	assert.Equal(t, 76, rows)
	assert.Contains(t, m.View(), "BOARD")
}

func TestViewerPan(t *testing.T) {
	m := newTestModel(t)

	startX, startY := m.panX, m.panY

	m, _ = press(t, m, "l")
	assert.Equal(t, startX+panStep, m.panX)
	m, _ = press(t, m, "J")
	assert.Equal(t, startY+fastPanStep, m.panY)

	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")
	assert.Equal(t, startX-panStep, m.panX)

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "H")
	}
	assert.Equal(t, 0, m.panX)
}

func TestViewerFocusesBoard(t *testing.T) {
	m := newTestModel(t)

	// board bounds start at (20,20), cells are 2x4 at the default zoom
	assert.Equal(t, 10, m.panX)
	assert.Equal(t, 5, m.panY)

	m, _ = press(t, m, "L")
	m, _ = press(t, m, "0")
	assert.Equal(t, 10, m.panX)
	assert.Equal(t, 5, m.panY)
}

func TestViewerPanClampsToGrid(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 100; i++ {
		m, _ = press(t, m, "L")
	}
	cols, _ := m.gridSize()
	assert.Equal(t, cols-80, m.panX)
}

func TestViewerZoom(t *testing.T) {
	m := newTestModel(t)
	before, _ := m.gridSize()

	m, _ = press(t, m, "+")
	assert.Equal(t, defaultZoom+1, m.zoom)
	after, _ := m.gridSize()
	assert.Greater(t, after, before)

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, "-")
	}
	assert.Equal(t, 0, m.zoom)
}

func TestViewerPanels(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "c")
	assert.Equal(t, ModeConflicts, m.mode)
	assert.Contains(t, m.View(), "Pin conflicts")

	m, _ = press(t, m, "w")
	assert.Equal(t, ModeWires, m.mode)
	assert.Contains(t, m.View(), "G22 → driver1.IN1")

	m, _ = press(t, m, "w")
	assert.Equal(t, ModeBoard, m.mode)
}

func TestViewerHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "?")
	assert.True(t, m.help)
	assert.Contains(t, m.View(), "wiremap Help")

	m, _ = press(t, m, "?")
	assert.False(t, m.help)
}

func TestViewerReloadWithoutFile(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "r")
	assert.NotEmpty(t, m.errorMessage)
}

func TestViewerQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
