// Package route turns resolved pin pairs into orthogonal wire paths.
//
// Logic wires leave a controller pin sideways into a vertical channel whose
// distance from the controller grows with the lane index, so wires on the
// same side run in parallel instead of on top of each other. Power wires
// leave a driver output to the right, drop to just above the motor terminal
// row, then step across and down onto the terminal.
package route

import "wiremap/geom"

// Logic routing geometry.
const (
	ChannelOffset = 20 // distance of lane 0 from the controller pin
	LaneSpacing   = 3
)

// Power routing geometry.
const (
	PowerOffset    = 10 // horizontal clearance from the driver output
	PowerAlternate = 5  // extra offset for odd-indexed power wires
	PowerClearance = 15 // height above the motor terminal row
)

// Stroke settings.
const (
	LogicWidth   = 1.5
	PowerWidth   = 2.0
	WireOpacity  = 0.8
	PowerColor   = "orange"
	DefaultColor = "black"
)

// Side is the controller edge a logic wire leaves from.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// State hands out lanes for one render. Lanes grow by one per side and are
// never reused.
type State struct {
	leftLane  int
	rightLane int
}

// NewState returns lane counters starting at zero on both sides.
func NewState() *State {
	return &State{}
}

// Next returns the next free lane on side.
func (s *State) Next(side Side) int {
	if side == Left {
		lane := s.leftLane
		s.leftLane++
		return lane
	}
	lane := s.rightLane
	s.rightLane++
	return lane
}

// Used returns how many lanes have been handed out on side.
func (s *State) Used(side Side) int {
	if side == Left {
		return s.leftLane
	}
	return s.rightLane
}

// Logic builds the four-point path start → channel → channel → end.
func Logic(start, end geom.Point, side Side, lane int) []geom.Point {
	offset := ChannelOffset + lane*LaneSpacing
	channelX := start.X + offset
	if side == Left {
		channelX = start.X - offset
	}
	return []geom.Point{
		start,
		{X: channelX, Y: start.Y},
		{X: channelX, Y: end.Y},
		end,
	}
}

// Power builds the five-point path from a driver output to a motor
// terminal. index is the wire's position among the drawn power wires; its
// parity picks one of two riser columns.
func Power(start, end geom.Point, index int) []geom.Point {
	midX := start.X + PowerOffset + (index%2)*PowerAlternate
	aboveY := end.Y - PowerClearance
	return []geom.Point{
		start,
		{X: midX, Y: start.Y},
		{X: midX, Y: aboveY},
		{X: end.X, Y: aboveY},
		end,
	}
}
