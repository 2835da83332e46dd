// Package canvas defines the drawing surface the diagram is rendered onto and
// provides SVG, PNG and terminal-grid backends for it.
package canvas

import "wiremap/geom"

// Anchor is the horizontal alignment of a text run relative to its origin.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorEnd
)

// Style is a named set of drawing attributes, referenced by class.
type Style struct {
	Class       string
	FontFamily  string
	FontSize    float64
	Bold        bool
	Fill        string // "" leaves fill unset, "none" disables it
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// CircleStyle paints a circle. A ring has Fill "none" and a Stroke.
type CircleStyle struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Canvas is the drawing surface. Coordinates are diagram units.
type Canvas interface {
	NewDocument(width, height int) error
	DefineStyles(styles []Style)
	DrawRect(r geom.Rect, class string)
	DrawText(text string, at geom.Point, class string, anchor Anchor)
	DrawCircle(center geom.Point, radius float64, style CircleStyle)
	DrawPolyline(points []geom.Point, stroke string, width, opacity float64)
	Finalize() error
}

// styleSet indexes styles by class.
type styleSet map[string]Style

func newStyleSet(styles []Style) styleSet {
	s := make(styleSet, len(styles))
	for _, st := range styles {
		s[st.Class] = st
	}
	return s
}
