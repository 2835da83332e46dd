// Package geom contains the coordinate types shared by the layout, routing and
// drawing packages. One unit corresponds to one millimetre of the output
// document.
package geom

import "fmt"

// Point is a position on the board.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the center of the rectangle, rounded down.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// IsOrthogonal reports whether every segment of the polyline is horizontal or
// vertical.
func IsOrthogonal(points []Point) bool {
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if a.X != b.X && a.Y != b.Y {
			return false
		}
	}
	return true
}

// Turns counts the direction changes along an orthogonal polyline. A
// zero-length segment is a collapsed bend: it counts as perpendicular to the
// segment before it.
func Turns(points []Point) int {
	turns := 0
	prev := none
	for i := 1; i < len(points); i++ {
		d := axisOf(points[i-1], points[i])
		if d == none {
			d = prev.perpendicular()
		}
		if prev != none && d != prev {
			turns++
		}
		prev = d
	}
	return turns
}

type axis int

const (
	none axis = iota
	horizontal
	vertical
)

func (a axis) perpendicular() axis {
	switch a {
	case horizontal:
		return vertical
	case vertical:
		return horizontal
	default:
		return none
	}
}

func axisOf(a, b Point) axis {
	switch {
	case a == b:
		return none
	case a.Y == b.Y:
		return horizontal
	default:
		return vertical
	}
}
