package render

import "wiremap/canvas"

// Document size in diagram units (millimetres).
const (
	DocumentWidth  = 400
	DocumentHeight = 300
)

// Style classes used by the diagram.
const (
	ClassText         = "text"
	ClassPinLabel     = "pin-label"
	ClassComponentBox = "component-box"
	ClassWire         = "wire"
	ClassConflict     = "conflict"
	ClassConflictLine = "conflict-line"
)

// Conflict report placement.
const (
	reportX         = 150
	reportY         = 250
	reportFirstLine = 15
	reportLineStep  = 12
	markerRadius    = 4
	markerWidth     = 2
	pinDotRadius    = 2
)

// ConflictBanner heads the conflict report.
const ConflictBanner = "CONFLICTS DETECTED IN CONFIG.H:"

// DefaultStyles returns the style sheet of the diagram.
func DefaultStyles() []canvas.Style {
	return []canvas.Style{
		{Class: ClassText, FontFamily: "Arial", FontSize: 10},
		{Class: ClassPinLabel, FontFamily: "Arial", FontSize: 8, Fill: "#555"},
		{Class: ClassComponentBox, Fill: "#f0f0f0", Stroke: "#000", StrokeWidth: 2},
		{Class: ClassWire, Fill: "none", StrokeWidth: 1.5, Opacity: 0.7},
		{Class: ClassConflict, FontFamily: "Arial", FontSize: 12, Bold: true, Fill: "red"},
		{Class: ClassConflictLine, FontFamily: "Arial", FontSize: 10, Fill: "red"},
	}
}
