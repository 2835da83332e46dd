package canvas

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"wiremap/geom"
)

// DefaultScale is the number of pixels per diagram unit.
const DefaultScale = 4.0

// namedColors covers the color names used by the diagram styles.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"orange": "#ffa500",
	"purple": "#800080",
	"gray":   "#808080",
}

// PNG rasterizes the drawing with gg and writes a PNG on Finalize.
type PNG struct {
	out    io.Writer
	scale  float64
	dc     *gg.Context
	styles styleSet
	faces  map[faceKey]font.Face
	fonts  map[bool]*truetype.Font
}

type faceKey struct {
	size float64
	bold bool
}

// NewPNG returns a PNG backend drawing at scale pixels per unit. A
// non-positive scale selects DefaultScale.
func NewPNG(out io.Writer, scale float64) *PNG {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &PNG{
		out:    out,
		scale:  scale,
		styles: styleSet{},
		faces:  make(map[faceKey]font.Face),
		fonts:  make(map[bool]*truetype.Font),
	}
}

func (p *PNG) NewDocument(width, height int) error {
	if p.dc != nil {
		return errors.New("png: document already started")
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	p.fonts[false] = regular
	p.fonts[true] = bold

	p.dc = gg.NewContext(int(float64(width)*p.scale), int(float64(height)*p.scale))
	p.dc.SetRGB(1, 1, 1)
	p.dc.Clear()
	return nil
}

func (p *PNG) DefineStyles(styles []Style) {
	for class, st := range newStyleSet(styles) {
		p.styles[class] = st
	}
}

func (p *PNG) px(v int) float64 {
	return float64(v) * p.scale
}

func (p *PNG) DrawRect(r geom.Rect, class string) {
	st := p.styles[class]
	p.dc.DrawRectangle(p.px(r.X), p.px(r.Y), p.px(r.W), p.px(r.H))
	if st.Fill != "" && st.Fill != "none" {
		p.setColor(st.Fill, 1)
		p.dc.FillPreserve()
	}
	p.setColor(orDefault(st.Stroke, "black"), 1)
	p.dc.SetLineWidth(orOne(st.StrokeWidth) * p.scale)
	p.dc.Stroke()
}

func (p *PNG) DrawText(text string, at geom.Point, class string, anchor Anchor) {
	st := p.styles[class]
	size := st.FontSize
	if size <= 0 {
		size = 10
	}
	p.dc.SetFontFace(p.face(size, st.Bold))
	p.setColor(orDefault(st.Fill, "black"), 1)

	ax := 0.0
	if anchor == AnchorEnd {
		ax = 1
	}
	p.dc.DrawStringAnchored(text, p.px(at.X), p.px(at.Y), ax, 0)
}

// face returns a cached font face. Font sizes are in diagram units and get
// scaled to pixels here, because gg does not scale glyphs with coordinates.
func (p *PNG) face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(p.fonts[bold], &truetype.Options{
		Size:    size * p.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	p.faces[key] = f
	return f
}

func (p *PNG) DrawCircle(center geom.Point, radius float64, style CircleStyle) {
	p.dc.DrawCircle(p.px(center.X), p.px(center.Y), radius*p.scale)
	if style.Fill != "" && style.Fill != "none" {
		p.setColor(style.Fill, 1)
		p.dc.FillPreserve()
	}
	if style.Stroke != "" {
		p.setColor(style.Stroke, 1)
		p.dc.SetLineWidth(orOne(style.StrokeWidth) * p.scale)
		p.dc.StrokePreserve()
	}
	p.dc.ClearPath()
}

func (p *PNG) DrawPolyline(points []geom.Point, stroke string, width, opacity float64) {
	if len(points) < 2 {
		return
	}
	p.dc.MoveTo(p.px(points[0].X), p.px(points[0].Y))
	for _, pt := range points[1:] {
		p.dc.LineTo(p.px(pt.X), p.px(pt.Y))
	}
	p.setColor(stroke, opacity)
	p.dc.SetLineWidth(orOne(width) * p.scale)
	p.dc.Stroke()
}

// Finalize encodes the image to the output.
func (p *PNG) Finalize() error {
	if p.dc == nil {
		return errors.New("png: no document")
	}
	defer func() { p.dc = nil }()
	for _, f := range p.faces {
		f.Close()
	}
	p.faces = make(map[faceKey]font.Face)
	return p.dc.EncodePNG(p.out)
}

func (p *PNG) setColor(name string, opacity float64) {
	c, err := parseColor(name)
	if err != nil {
		c = colorful.Color{}
	}
	if opacity <= 0 {
		opacity = 1
	}
	p.dc.SetRGBA(c.R, c.G, c.B, opacity)
}

func parseColor(name string) (colorful.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[name]; ok {
		name = hex
	}
	if len(name) == 4 && name[0] == '#' {
		name = "#" + strings.Repeat(name[1:2], 2) + strings.Repeat(name[2:3], 2) + strings.Repeat(name[3:4], 2)
	}
	return colorful.Hex(name)
}

func orDefault(s, def string) string {
	if s == "" || s == "none" {
		return def
	}
	return s
}

func orOne(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
