package route

import "wiremap/geom"

// Wire is a routed path with its stroke.
type Wire struct {
	Points  []geom.Point
	Stroke  string
	Width   float64
	Opacity float64
}

var kindColors = map[string]string{
	"pwm": "red",
	"dir": "blue",
	"enc": "green",
	"in1": "purple",
	"in2": "orange",
}

// Color returns the stroke color of a logic wire carrying the given signal
// kind. Kinds without a color of their own are drawn black.
func Color(kind string) string {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return DefaultColor
}

// LogicWire routes a logic connection and strokes it by signal kind.
func LogicWire(start, end geom.Point, side Side, lane int, kind string) Wire {
	return Wire{
		Points:  Logic(start, end, side, lane),
		Stroke:  Color(kind),
		Width:   LogicWidth,
		Opacity: WireOpacity,
	}
}

// PowerWire routes a driver-to-motor connection.
func PowerWire(start, end geom.Point, index int) Wire {
	return Wire{
		Points:  Power(start, end, index),
		Stroke:  PowerColor,
		Width:   PowerWidth,
		Opacity: WireOpacity,
	}
}
