package main

type Mode int

const (
	ModeBoard Mode = iota
	ModeConflicts
	ModeWires
)

// Zoom levels of the viewer, as millimetres per character cell.
var zoomLevels = []struct {
	cellW, cellH float64
}{
	{4, 8},
	{3, 6},
	{2, 4},
	{1.5, 3},
	{1, 2},
}

const (
	defaultZoom = 2
	panStep     = 4
	fastPanStep = 12
)
