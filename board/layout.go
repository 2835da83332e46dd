package board

import (
	"fmt"

	"wiremap/geom"
)

// Controller geometry.
const (
	pinTop      = 25 // first pin below the controller's top edge
	pinPitch    = 6
	leftLabelDX = 2
	rightLabelW = 15 // right pin labels start this far inside the right edge
	labelDY     = 4
	titleDX     = 5
	titleDY     = 15
)

// Driver (L298N) geometry.
const (
	driverW        = 80
	driverH        = 100
	driverPinTop   = 30
	inputPitch     = 10
	outputPitch    = 15
	outputLabelInX = 5
)

// Motor geometry.
const (
	motorW        = 60
	motorH        = 50
	motorPinLeft  = 5
	motorPinRow   = 45
	motorPinPitch = 10
)

// Heater switch geometry.
const (
	heaterW       = 40
	heaterH       = 40
	heaterTitleDX = 2
	heaterSigY    = 30
)

// Port names per component kind, in placement order.
var (
	DriverInputs  = []string{"ENA", "IN1", "IN2", "IN3", "IN4", "ENB"}
	DriverOutputs = []string{"OUT1", "OUT2", "OUT3", "OUT4"}
	MotorPorts    = []string{"M+", "M-", "5V", "GND", "A", "B"}
	HeaterPorts   = []string{"SIG"}
)

// Dot colors per pin group.
const (
	controllerDot   = "black"
	driverInputDot  = "blue"
	driverOutputDot = "orange"
	motorDot        = "green"
	heaterDot       = "red"
)

// Layout is the result of placing a Spec. It is read-only once built.
type Layout struct {
	controller *Component
	components []*Component
	byID       map[string]*Component
}

// Build places every component of s. Placement is pure: the same Spec always
// yields the same coordinates.
func Build(s Spec) *Layout {
	l := &Layout{byID: make(map[string]*Component)}

	l.controller = buildController(s.Controller)
	l.add(l.controller)
	for _, p := range s.Drivers {
		l.add(buildDriver(p))
	}
	for _, p := range s.Motors {
		l.add(buildMotor(p))
	}
	for _, p := range s.Heaters {
		l.add(buildHeater(p))
	}
	return l
}

func (l *Layout) add(c *Component) {
	l.components = append(l.components, c)
	l.byID[c.ID] = c
}

// Components returns the placed components in drawing order: controller,
// drivers, motors, heater switches.
func (l *Layout) Components() []*Component {
	return l.components
}

// Controller returns the controller component.
func (l *Layout) Controller() *Component {
	return l.controller
}

// Component returns the component registered under id.
func (l *Layout) Component(id string) (*Component, bool) {
	c, ok := l.byID[id]
	return c, ok
}

// PortMap returns the port lookup of the component registered under id.
func (l *Layout) PortMap(id string) (PortMap, bool) {
	c, ok := l.byID[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// Pin returns the coordinate of a controller GPIO.
func (l *Layout) Pin(gpio int) (geom.Point, bool) {
	return l.controller.Port(PinName(gpio))
}

// ControllerCenterX is the vertical line separating left-side from
// right-side controller pins.
func (l *Layout) ControllerCenterX() int {
	return l.controller.Box.Center().X
}

// Bounds returns the box enclosing every component.
func (l *Layout) Bounds() geom.Rect {
	b := l.controller.Box
	for _, c := range l.components {
		b = b.Union(c.Box)
	}
	return b
}

func buildController(s ControllerSpec) *Component {
	c := newComponent(ControllerID, KindController, s.Label, geom.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height})
	c.TitleAt = geom.Point{X: s.X + titleDX, Y: s.Y + titleDY}

	for i, gpio := range s.LeftPins {
		y := s.Y + pinTop + i*pinPitch
		c.addPort(Port{
			Name:    PinName(gpio),
			Label:   fmt.Sprintf("G%d", gpio),
			At:      geom.Point{X: s.X, Y: y},
			LabelAt: geom.Point{X: s.X + leftLabelDX, Y: y + labelDY},
			Dot:     controllerDot,
		})
	}
	for i, gpio := range s.RightPins {
		y := s.Y + pinTop + i*pinPitch
		c.addPort(Port{
			Name:    PinName(gpio),
			Label:   fmt.Sprintf("G%d", gpio),
			At:      geom.Point{X: s.X + s.Width, Y: y},
			LabelAt: geom.Point{X: s.X + s.Width - rightLabelW, Y: y + labelDY},
			Dot:     controllerDot,
		})
	}
	return c
}

func buildDriver(p Placement) *Component {
	c := newComponent(p.ID, KindDriver, p.Label, geom.Rect{X: p.X, Y: p.Y, W: driverW, H: driverH})
	c.TitleAt = geom.Point{X: p.X + titleDX, Y: p.Y + titleDY}

	for i, name := range DriverInputs {
		y := p.Y + driverPinTop + i*inputPitch
		c.addPort(Port{
			Name:    name,
			Label:   name,
			At:      geom.Point{X: p.X, Y: y},
			LabelAt: geom.Point{X: p.X + leftLabelDX, Y: y + labelDY},
			Dot:     driverInputDot,
		})
	}
	for i, name := range DriverOutputs {
		y := p.Y + driverPinTop + i*outputPitch
		c.addPort(Port{
			Name:       name,
			Label:      name,
			At:         geom.Point{X: p.X + driverW, Y: y},
			LabelAt:    geom.Point{X: p.X + driverW - outputLabelInX, Y: y + labelDY},
			LabelAlign: AlignEnd,
			Dot:        driverOutputDot,
		})
	}
	return c
}

func buildMotor(p Placement) *Component {
	c := newComponent(p.ID, KindMotor, p.Label, geom.Rect{X: p.X, Y: p.Y, W: motorW, H: motorH})
	c.TitleAt = geom.Point{X: p.X + titleDX, Y: p.Y + titleDY}

	for j, name := range MotorPorts {
		at := geom.Point{X: p.X + motorPinLeft + j*motorPinPitch, Y: p.Y + motorPinRow}
		c.addPort(Port{
			Name:    name,
			Label:   name,
			At:      at,
			LabelAt: at.Add(-2, -5),
			Dot:     motorDot,
		})
	}
	return c
}

func buildHeater(p Placement) *Component {
	c := newComponent(p.ID, KindHeaterSwitch, p.Label, geom.Rect{X: p.X, Y: p.Y, W: heaterW, H: heaterH})
	c.TitleAt = geom.Point{X: p.X + heaterTitleDX, Y: p.Y + titleDY}

	for _, name := range HeaterPorts {
		c.addPort(Port{
			Name:    name,
			Label:   name,
			At:      geom.Point{X: p.X, Y: p.Y + heaterSigY},
			LabelAt: geom.Point{X: p.X + heaterTitleDX, Y: p.Y + heaterSigY},
			Dot:     heaterDot,
		})
	}
	return c
}
