package canvas

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"wiremap/geom"
)

// Cell is one character of a Grid and the color it is drawn in.
type Cell struct {
	Ch    rune
	Color string
}

// Line-joining bits of a cell.
const (
	north uint8 = 1 << iota
	east
	south
	west
)

var lineGlyphs = map[uint8]rune{
	north:                       '│',
	south:                       '│',
	north | south:               '│',
	east:                        '─',
	west:                        '─',
	east | west:                 '─',
	south | east:                '┌',
	south | west:                '┐',
	north | east:                '└',
	north | west:                '┘',
	north | south | east:        '├',
	north | south | west:        '┤',
	east | west | south:         '┬',
	east | west | north:         '┴',
	north | east | south | west: '┼',
}

// Grid draws the diagram as box-drawing characters, one cell per
// cellW×cellH units. Finalize writes the lines to out when out is not nil.
type Grid struct {
	out    io.Writer
	cellW  float64
	cellH  float64
	styles styleSet
	cells  [][]Cell
	joins  [][]uint8
}

// NewGrid returns a grid backend.
func NewGrid(out io.Writer, cellW, cellH float64) *Grid {
	return &Grid{out: out, cellW: cellW, cellH: cellH, styles: styleSet{}}
}

func (g *Grid) NewDocument(width, height int) error {
	if g.cellW <= 0 || g.cellH <= 0 {
		return fmt.Errorf("grid: invalid cell size %gx%g", g.cellW, g.cellH)
	}
	cols := int(math.Ceil(float64(width)/g.cellW)) + 1
	rows := int(math.Ceil(float64(height)/g.cellH)) + 1
	g.cells = make([][]Cell, rows)
	g.joins = make([][]uint8, rows)
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols)
		g.joins[y] = make([]uint8, cols)
		for x := range g.cells[y] {
			g.cells[y][x] = Cell{Ch: ' '}
		}
	}
	return nil
}

func (g *Grid) DefineStyles(styles []Style) {
	for class, st := range newStyleSet(styles) {
		g.styles[class] = st
	}
}

// cell maps a diagram coordinate to its grid column and row.
func (g *Grid) cell(p geom.Point) (int, int) {
	return int(math.Round(float64(p.X) / g.cellW)), int(math.Round(float64(p.Y) / g.cellH))
}

func (g *Grid) isValidPos(x, y int) bool {
	return y >= 0 && y < len(g.cells) && x >= 0 && x < len(g.cells[y])
}

func (g *Grid) set(x, y int, ch rune, color string) {
	if g.isValidPos(x, y) {
		g.cells[y][x] = Cell{Ch: ch, Color: color}
	}
}

func (g *Grid) join(x, y int, bits uint8, color string) {
	if !g.isValidPos(x, y) {
		return
	}
	g.joins[y][x] |= bits
	g.cells[y][x] = Cell{Ch: lineGlyphs[g.joins[y][x]], Color: color}
}

func (g *Grid) DrawRect(r geom.Rect, class string) {
	color := orDefault(g.styles[class].Stroke, "black")
	x1, y1 := g.cell(r.Origin())
	x2, y2 := g.cell(geom.Point{X: r.X + r.W, Y: r.Y + r.H})
	g.segment(x1, y1, x2, y1, color)
	g.segment(x2, y1, x2, y2, color)
	g.segment(x2, y2, x1, y2, color)
	g.segment(x1, y2, x1, y1, color)
}

func (g *Grid) DrawText(text string, at geom.Point, class string, anchor Anchor) {
	color := orDefault(g.styles[class].Fill, "black")
	x, y := g.cell(at)
	runes := []rune(text)
	if anchor == AnchorEnd {
		x -= len(runes)
	}
	for i, r := range runes {
		g.set(x+i, y, r, color)
	}
}

func (g *Grid) DrawCircle(center geom.Point, radius float64, style CircleStyle) {
	x, y := g.cell(center)
	if style.Fill == "" || style.Fill == "none" {
		g.set(x, y, '◎', orDefault(style.Stroke, "black"))
		return
	}
	g.set(x, y, '•', style.Fill)
}

func (g *Grid) DrawPolyline(points []geom.Point, stroke string, width, opacity float64) {
	for i := 1; i < len(points); i++ {
		x1, y1 := g.cell(points[i-1])
		x2, y2 := g.cell(points[i])
		g.segment(x1, y1, x2, y2, stroke)
	}
}

// segment draws an axis-aligned run of line cells between two grid cells.
// Diagonal input is drawn as a horizontal run followed by a vertical one.
func (g *Grid) segment(x1, y1, x2, y2 int, color string) {
	if x1 != x2 {
		step, out, in := 1, east, west
		if x2 < x1 {
			step, out, in = -1, west, east
		}
		for x := x1; x != x2; x += step {
			g.join(x, y1, out, color)
			g.join(x+step, y1, in, color)
		}
	}
	if y1 != y2 {
		step, out, in := 1, south, north
		if y2 < y1 {
			step, out, in = -1, north, south
		}
		for y := y1; y != y2; y += step {
			g.join(x2, y, out, color)
			g.join(x2, y+step, in, color)
		}
	}
}

// Cells returns the grid contents, row by row.
func (g *Grid) Cells() [][]Cell {
	return g.cells
}

// Lines returns the grid as text with trailing spaces trimmed.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.cells))
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Ch)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// String returns the grid as newline-separated text.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Finalize writes the grid to the output, if any.
func (g *Grid) Finalize() error {
	if g.cells == nil {
		return errors.New("grid: no document")
	}
	if g.out == nil {
		return nil
	}
	for _, line := range g.Lines() {
		if _, err := fmt.Fprintln(g.out, line); err != nil {
			return err
		}
	}
	return nil
}
