package board

import "wiremap/geom"

// Kind identifies the symbol drawn for a component.
type Kind int

const (
	KindController Kind = iota
	KindDriver
	KindMotor
	KindHeaterSwitch
)

func (k Kind) String() string {
	switch k {
	case KindController:
		return "controller"
	case KindDriver:
		return "driver"
	case KindMotor:
		return "motor"
	case KindHeaterSwitch:
		return "heater"
	default:
		return "unknown"
	}
}

// Align is the horizontal anchoring of a pin label.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
)

// PortMap resolves a port name to its coordinate. Every component kind,
// the controller included, satisfies it.
type PortMap interface {
	Port(name string) (geom.Point, bool)
}

// Port is a named, placed pin of a component.
type Port struct {
	Name       string
	Label      string
	At         geom.Point
	LabelAt    geom.Point
	LabelAlign Align
	Dot        string
}

// Component is a placed symbol with its ports.
type Component struct {
	ID      string
	Kind    Kind
	Label   string
	Box     geom.Rect
	TitleAt geom.Point

	ports []Port
	index map[string]int
}

func newComponent(id string, kind Kind, label string, box geom.Rect) *Component {
	return &Component{
		ID:    id,
		Kind:  kind,
		Label: label,
		Box:   box,
		index: make(map[string]int),
	}
}

func (c *Component) addPort(p Port) {
	c.index[p.Name] = len(c.ports)
	c.ports = append(c.ports, p)
}

// Port implements PortMap.
func (c *Component) Port(name string) (geom.Point, bool) {
	i, ok := c.index[name]
	if !ok {
		return geom.Point{}, false
	}
	return c.ports[i].At, true
}

// Ports returns the ports in placement order.
func (c *Component) Ports() []Port {
	return c.ports
}
