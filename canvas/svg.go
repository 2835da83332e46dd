package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"wiremap/geom"
)

// SVG writes the drawing as an SVG document sized in millimetres, one
// diagram unit per millimetre.
type SVG struct {
	out  io.Writer
	buf  bytes.Buffer
	open bool
}

// NewSVG returns an SVG backend that writes to out on Finalize.
func NewSVG(out io.Writer) *SVG {
	return &SVG{out: out}
}

func (s *SVG) NewDocument(width, height int) error {
	if s.open {
		return errors.New("svg: document already started")
	}
	s.open = true
	fmt.Fprintf(&s.buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%dmm\" height=\"%dmm\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	return nil
}

func (s *SVG) DefineStyles(styles []Style) {
	s.buf.WriteString("  <defs>\n    <style>\n")
	for _, st := range styles {
		fmt.Fprintf(&s.buf, "      .%s { %s }\n", st.Class, cssRules(st))
	}
	s.buf.WriteString("    </style>\n  </defs>\n")
}

func cssRules(st Style) string {
	var rules []string
	if st.FontFamily != "" {
		rules = append(rules, "font-family: "+st.FontFamily+";")
	}
	if st.FontSize > 0 {
		rules = append(rules, fmt.Sprintf("font-size: %gpx;", st.FontSize))
	}
	if st.Bold {
		rules = append(rules, "font-weight: bold;")
	}
	if st.Fill != "" {
		rules = append(rules, "fill: "+st.Fill+";")
	}
	if st.Stroke != "" {
		rules = append(rules, "stroke: "+st.Stroke+";")
	}
	if st.StrokeWidth > 0 {
		rules = append(rules, fmt.Sprintf("stroke-width: %g;", st.StrokeWidth))
	}
	if st.Opacity > 0 {
		rules = append(rules, fmt.Sprintf("opacity: %g;", st.Opacity))
	}
	return strings.Join(rules, " ")
}

func (s *SVG) DrawRect(r geom.Rect, class string) {
	fmt.Fprintf(&s.buf, "  <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\" class=\"%s\" />\n",
		r.X, r.Y, r.W, r.H, class)
}

func (s *SVG) DrawText(text string, at geom.Point, class string, anchor Anchor) {
	extra := ""
	if anchor == AnchorEnd {
		extra = " text-anchor=\"end\""
	}
	fmt.Fprintf(&s.buf, "  <text x=\"%d\" y=\"%d\" class=\"%s\"%s>%s</text>\n",
		at.X, at.Y, class, extra, html.EscapeString(text))
}

func (s *SVG) DrawCircle(center geom.Point, radius float64, style CircleStyle) {
	fill := style.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&s.buf, "  <circle cx=\"%d\" cy=\"%d\" r=\"%g\" fill=\"%s\"", center.X, center.Y, radius, fill)
	if style.Stroke != "" {
		fmt.Fprintf(&s.buf, " stroke=\"%s\" stroke-width=\"%g\"", style.Stroke, style.StrokeWidth)
	}
	s.buf.WriteString(" />\n")
}

func (s *SVG) DrawPolyline(points []geom.Point, stroke string, width, opacity float64) {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	fmt.Fprintf(&s.buf, "  <polyline points=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%g\" opacity=\"%g\" />\n",
		strings.Join(coords, " "), stroke, width, opacity)
}

// Finalize closes the document and writes it out.
func (s *SVG) Finalize() error {
	if !s.open {
		return errors.New("svg: no document")
	}
	s.open = false
	s.buf.WriteString("</svg>\n")
	_, err := s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	return err
}
