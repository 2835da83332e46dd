package canvas

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiremap/geom"
)

var testStyles = []Style{
	{Class: "text", FontFamily: "Arial", FontSize: 10},
	{Class: "box", Fill: "#f0f0f0", Stroke: "#000", StrokeWidth: 2},
	{Class: "alert", Fill: "red", Bold: true, FontSize: 12},
}

// draw issues one call of every kind.
func draw(t *testing.T, c Canvas) {
	t.Helper()
	require.NoError(t, c.NewDocument(40, 30))
	c.DefineStyles(testStyles)
	c.DrawRect(geom.Rect{X: 2, Y: 2, W: 20, H: 12}, "box")
	c.DrawText("A & B", geom.Point{X: 4, Y: 8}, "text", AnchorStart)
	c.DrawText("OUT1", geom.Point{X: 38, Y: 28}, "alert", AnchorEnd)
	c.DrawCircle(geom.Point{X: 2, Y: 8}, 2, CircleStyle{Fill: "blue"})
	c.DrawCircle(geom.Point{X: 22, Y: 8}, 4, CircleStyle{Fill: "none", Stroke: "red", StrokeWidth: 2})
	c.DrawPolyline([]geom.Point{{X: 2, Y: 8}, {X: 0, Y: 8}, {X: 0, Y: 28}, {X: 30, Y: 28}}, "purple", 1.5, 0.8)
}

func TestSVG(t *testing.T) {
	var out bytes.Buffer
	s := NewSVG(&out)
	draw(t, s)

	assert.Empty(t, out.String(), "nothing is written before Finalize")
	require.NoError(t, s.Finalize())

	svg := out.String()
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="40mm" height="30mm" viewBox="0 0 40 30">`))
	assert.Contains(t, svg, ".box { fill: #f0f0f0; stroke: #000; stroke-width: 2; }")
	assert.Contains(t, svg, ".alert { font-size: 12px; font-weight: bold; fill: red; }")
	assert.Contains(t, svg, `<rect x="2" y="2" width="20" height="12" class="box" />`)
	assert.Contains(t, svg, `<text x="4" y="8" class="text">A &amp; B</text>`)
	assert.Contains(t, svg, `<text x="38" y="28" class="alert" text-anchor="end">OUT1</text>`)
	assert.Contains(t, svg, `<circle cx="2" cy="8" r="2" fill="blue" />`)
	assert.Contains(t, svg, `<circle cx="22" cy="8" r="4" fill="none" stroke="red" stroke-width="2" />`)
	assert.Contains(t, svg, `<polyline points="2,8 0,8 0,28 30,28" fill="none" stroke="purple" stroke-width="1.5" opacity="0.8" />`)
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}

func TestSVGDocumentLifecycle(t *testing.T) {
	s := NewSVG(&bytes.Buffer{})
	assert.Error(t, s.Finalize())

	require.NoError(t, s.NewDocument(10, 10))
	assert.Error(t, s.NewDocument(10, 10))
	require.NoError(t, s.Finalize())
}

func TestPNG(t *testing.T) {
	var out bytes.Buffer
	p := NewPNG(&out, 2)
	draw(t, p)
	require.NoError(t, p.Finalize())

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())

	// Inside the box, clear of every label: the fill color.
	r, g, b, _ := img.At(12, 24).RGBA()
	assert.Equal(t, uint32(0xf0f0), r)
	assert.Equal(t, uint32(0xf0f0), g)
	assert.Equal(t, uint32(0xf0f0), b)

	// Far corner: untouched background.
	r, g, b, _ = img.At(78, 2).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})

	assert.Error(t, p.Finalize(), "second finalize has no document")
}

func TestPNGDefaultScale(t *testing.T) {
	var out bytes.Buffer
	p := NewPNG(&out, 0)
	require.NoError(t, p.NewDocument(10, 5))
	require.NoError(t, p.Finalize())

	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("Orange")
	require.NoError(t, err)
	assert.Equal(t, "#ffa500", c.Hex())

	c, err = parseColor("#000")
	require.NoError(t, err)
	assert.Equal(t, "#000000", c.Hex())

	_, err = parseColor("not-a-color")
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	var out bytes.Buffer
	g := NewGrid(&out, 1, 1)
	require.NoError(t, g.NewDocument(12, 6))
	g.DefineStyles(testStyles)

	g.DrawRect(geom.Rect{X: 0, Y: 0, W: 5, H: 3}, "box")
	g.DrawText("ab", geom.Point{X: 1, Y: 1}, "alert", AnchorStart)
	g.DrawText("xy", geom.Point{X: 12, Y: 5}, "text", AnchorEnd)
	g.DrawPolyline([]geom.Point{{X: 5, Y: 2}, {X: 8, Y: 2}, {X: 8, Y: 5}}, "green", 1, 1)
	g.DrawCircle(geom.Point{X: 11, Y: 0}, 2, CircleStyle{Fill: "blue"})
	require.NoError(t, g.Finalize())

	assert.Equal(t, []string{
		"┌────┐     •",
		"│ab  │",
		"│    ├──┐",
		"└────┘  │",
		"        │",
		"        │ xy",
		"",
	}, g.Lines())

	cells := g.Cells()
	assert.Equal(t, "red", cells[1][1].Color)
	assert.Equal(t, "green", cells[2][7].Color)
	assert.Equal(t, "blue", cells[0][11].Color)
	assert.Equal(t, g.String()+"\n", out.String())
}

func TestGridRejectsBadCellSize(t *testing.T) {
	assert.Error(t, NewGrid(nil, 0, 1).NewDocument(10, 10))
	assert.Error(t, NewGrid(nil, 1, 1).Finalize())
}

func TestRecorderReplay(t *testing.T) {
	rec := &Recorder{}
	draw(t, rec)
	require.NoError(t, rec.Finalize())

	assert.Len(t, rec.Filter(OpText), 2)
	assert.Len(t, rec.Filter(OpCircle), 2)

	var direct, replayed bytes.Buffer
	s := NewSVG(&direct)
	draw(t, s)
	require.NoError(t, s.Finalize())

	require.NoError(t, rec.Replay(NewSVG(&replayed)))
	assert.Equal(t, direct.String(), replayed.String())
}
