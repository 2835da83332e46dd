package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectCenter(t *testing.T) {
	r := Rect{X: 150, Y: 100, W: 60, H: 120}

	assert.Equal(t, Point{X: 180, Y: 160}, r.Center())
	assert.Equal(t, Point{X: 150, Y: 100}, r.Origin())
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 20, H: 5}

	assert.Equal(t, Rect{X: 0, Y: -5, W: 25, H: 15}, a.Union(b))
}

func TestTurns(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   int
	}{
		{"straight", []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}, 0},
		{"one bend", []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, 1},
		{"logic shape", []Point{{X: 150, Y: 125}, {X: 130, Y: 125}, {X: 130, Y: 60}, {X: 20, Y: 60}}, 2},
		{"power shape", []Point{{X: 100, Y: 50}, {X: 110, Y: 50}, {X: 110, Y: 180}, {X: 25, Y: 180}, {X: 25, Y: 195}}, 3},
		{"collapsed bend", []Point{{X: 360, Y: 95}, {X: 375, Y: 95}, {X: 375, Y: 180}, {X: 375, Y: 180}, {X: 375, Y: 195}}, 3},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Turns(tt.points))
		})
	}
}

func TestIsOrthogonal(t *testing.T) {
	assert.True(t, IsOrthogonal([]Point{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 7, Y: 5}}))
	assert.False(t, IsOrthogonal([]Point{{X: 0, Y: 0}, {X: 3, Y: 4}}))
}
