package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiremap/geom"
)

func TestStateLanesPerSide(t *testing.T) {
	s := NewState()

	assert.Equal(t, 0, s.Next(Left))
	assert.Equal(t, 0, s.Next(Right))
	assert.Equal(t, 1, s.Next(Left))
	assert.Equal(t, 2, s.Next(Left))
	assert.Equal(t, 1, s.Next(Right))

	assert.Equal(t, 3, s.Used(Left))
	assert.Equal(t, 2, s.Used(Right))
}

func TestLogicLeftSide(t *testing.T) {
	start := geom.Point{X: 150, Y: 125}
	end := geom.Point{X: 20, Y: 60}

	path := Logic(start, end, Left, 2)

	require.Len(t, path, 4)
	assert.Equal(t, []geom.Point{
		{X: 150, Y: 125},
		{X: 124, Y: 125},
		{X: 124, Y: 60},
		{X: 20, Y: 60},
	}, path)
	assert.True(t, geom.IsOrthogonal(path))
	assert.Equal(t, 2, geom.Turns(path))
}

func TestLogicRightSide(t *testing.T) {
	start := geom.Point{X: 210, Y: 131}
	end := geom.Point{X: 25, Y: 195}

	path := Logic(start, end, Right, 0)

	assert.Equal(t, geom.Point{X: 230, Y: 131}, path[1])
	assert.Equal(t, geom.Point{X: 230, Y: 195}, path[2])
	assert.Equal(t, end, path[3])
}

func TestLogicLanesDoNotOverlap(t *testing.T) {
	start := geom.Point{X: 150, Y: 125}
	end := geom.Point{X: 20, Y: 60}

	seen := make(map[int]bool)
	for lane := 0; lane < 16; lane++ {
		x := Logic(start, end, Left, lane)[1].X
		assert.False(t, seen[x], "lane %d reuses channel x=%d", lane, x)
		seen[x] = true
	}
}

func TestPower(t *testing.T) {
	out1 := geom.Point{X: 100, Y: 50}
	mPlus := geom.Point{X: 25, Y: 195}

	even := Power(out1, mPlus, 0)
	require.Len(t, even, 5)
	assert.Equal(t, []geom.Point{
		{X: 100, Y: 50},
		{X: 110, Y: 50},
		{X: 110, Y: 180},
		{X: 25, Y: 180},
		{X: 25, Y: 195},
	}, even)
	assert.Equal(t, 3, geom.Turns(even))

	odd := Power(out1, mPlus, 1)
	assert.Equal(t, 115, odd[1].X)
	assert.Equal(t, out1.Y, odd[1].Y)
}

func TestPowerCollapsedBend(t *testing.T) {
	// driver2 OUT4 to motorE M-: the odd offset lands on the terminal column.
	out4 := geom.Point{X: 360, Y: 95}
	mMinus := geom.Point{X: 375, Y: 195}

	path := Power(out4, mMinus, 7)

	require.Len(t, path, 5)
	assert.Equal(t, []geom.Point{
		{X: 360, Y: 95},
		{X: 375, Y: 95},
		{X: 375, Y: 180},
		{X: 375, Y: 180},
		{X: 375, Y: 195},
	}, path)
	assert.Equal(t, path[2], path[3], "the clearance jog has zero length")
	assert.Equal(t, out4.Y, path[1].Y)
	assert.Equal(t, mMinus.Y-PowerClearance, path[2].Y)
	assert.Equal(t, mMinus.X, path[3].X)
	assert.True(t, geom.IsOrthogonal(path))
}

func TestColor(t *testing.T) {
	tests := map[string]string{
		"pwm":   "red",
		"dir":   "blue",
		"enc":   "green",
		"in1":   "purple",
		"in2":   "orange",
		"gnd":   "black",
		"other": "black",
	}
	for kind, want := range tests {
		assert.Equal(t, want, Color(kind), kind)
	}
}

func TestWireStrokes(t *testing.T) {
	lw := LogicWire(geom.Point{X: 150, Y: 149}, geom.Point{X: 280, Y: 280}, Left, 0, "pwm")
	assert.Equal(t, "red", lw.Stroke)
	assert.Equal(t, LogicWidth, lw.Width)
	assert.Equal(t, WireOpacity, lw.Opacity)

	pw := PowerWire(geom.Point{X: 100, Y: 50}, geom.Point{X: 25, Y: 195}, 3)
	assert.Equal(t, PowerColor, pw.Stroke)
	assert.Equal(t, PowerWidth, pw.Width)
	assert.Equal(t, 115, pw.Points[1].X)
}
