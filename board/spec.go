// Package board describes the motor-control board and places every component
// box and pin on the diagram.
package board

import (
	"fmt"
	"strconv"
)

// ControllerID is the component id under which the controller is registered.
const ControllerID = "controller"

// Spec describes what sits on the board and where. It is usually
// DefaultSpec, optionally overridden by the board section of a wiring file.
type Spec struct {
	Controller ControllerSpec `yaml:"controller"`
	Drivers    []Placement    `yaml:"drivers"`
	Motors     []Placement    `yaml:"motors"`
	Heaters    []Placement    `yaml:"heaters"`
}

// ControllerSpec places the microcontroller and orders its GPIO pins. The
// order of LeftPins and RightPins is the vertical stacking order.
type ControllerSpec struct {
	Label     string `yaml:"label"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	LeftPins  []int  `yaml:"left_pins"`
	RightPins []int  `yaml:"right_pins"`
}

// Placement puts a fixed-size peripheral at an origin.
type Placement struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// DefaultSpec returns the four-axis board: a Lolin32 Lite, two L298N
// drivers, four six-pin encoder motors and two heater MOSFETs.
func DefaultSpec() Spec {
	return Spec{
		Controller: ControllerSpec{
			Label:     "Lolin32 Lite",
			X:         150,
			Y:         100,
			Width:     60,
			Height:    120,
			LeftPins:  []int{22, 21, 17, 16, 4, 0, 2, 15, 13, 12, 14, 27, 26, 25, 33, 32},
			RightPins: []int{35, 34, 39, 36, 19, 23, 18, 5},
		},
		Drivers: []Placement{
			{ID: "driver1", Label: "Driver 1 (X, Y)", X: 20, Y: 20},
			{ID: "driver2", Label: "Driver 2 (Z, E)", X: 280, Y: 20},
		},
		Motors: []Placement{
			{ID: "motorX", Label: "Motor X", X: 20, Y: 150},
			{ID: "motorY", Label: "Motor Y", X: 120, Y: 150},
			{ID: "motorZ", Label: "Motor Z", X: 280, Y: 150},
			{ID: "motorE", Label: "Motor E", X: 360, Y: 150},
		},
		Heaters: []Placement{
			{ID: "hotend", Label: "Hotend FET", X: 280, Y: 250},
			{ID: "bed", Label: "Bed FET", X: 350, Y: 250},
		},
	}
}

// Validate rejects specs that would make lookups ambiguous: empty or
// repeated component ids and GPIO numbers listed more than once.
func (s Spec) Validate() error {
	seen := map[string]bool{ControllerID: true}
	groups := []struct {
		kind  string
		items []Placement
	}{
		{"driver", s.Drivers},
		{"motor", s.Motors},
		{"heater", s.Heaters},
	}
	for _, g := range groups {
		for i, p := range g.items {
			if p.ID == "" {
				return fmt.Errorf("%s %d: missing id", g.kind, i)
			}
			if seen[p.ID] {
				return fmt.Errorf("%s %q: duplicate component id", g.kind, p.ID)
			}
			seen[p.ID] = true
		}
	}

	pins := make(map[int]bool)
	for _, pin := range append(append([]int{}, s.Controller.LeftPins...), s.Controller.RightPins...) {
		if pins[pin] {
			return fmt.Errorf("controller pin %d listed twice", pin)
		}
		pins[pin] = true
	}
	return nil
}

// PinName is the port name under which a GPIO number is exposed on the
// controller.
func PinName(gpio int) string {
	return strconv.Itoa(gpio)
}
