package wiring

import (
	"fmt"

	"wiremap/board"
	"wiremap/geom"
	"wiremap/route"
)

// Resolved is a logic entry with both ends placed and a lane assigned.
type Resolved struct {
	Entry Entry
	Row   int // position in the logic table
	Start geom.Point
	End   geom.Point
	Side  route.Side
	Lane  int
}

// ResolvedPower is a power entry with both ends placed. Index counts the
// resolved power entries only.
type ResolvedPower struct {
	Entry PowerEntry
	Row   int
	Index int
	Start geom.Point
	End   geom.Point
}

// Dropped records a table row that could not be placed. Dropped rows draw
// nothing and take no part in conflict detection. Row is zero-based.
type Dropped struct {
	Table  string
	Row    int
	Reason string
}

// String numbers rows from one, as a person reading the table would.
func (d Dropped) String() string {
	return fmt.Sprintf("%s row %d: %s", d.Table, d.Row+1, d.Reason)
}

// ResolveLogic places every logic entry against l. Lanes are taken from
// state in table order, one per resolved entry; dropped entries take none.
func ResolveLogic(l *board.Layout, entries []Entry, state *route.State) ([]Resolved, []Dropped) {
	var (
		resolved []Resolved
		dropped  []Dropped
	)
	centerX := l.ControllerCenterX()

	for i, e := range entries {
		start, ok := l.Pin(e.Pin)
		if !ok {
			dropped = append(dropped, Dropped{"logic", i, fmt.Sprintf("controller has no GPIO %d", e.Pin)})
			continue
		}
		end, reason := lookupPort(l, e.Component, e.Port)
		if reason != "" {
			dropped = append(dropped, Dropped{"logic", i, reason})
			continue
		}

		side := route.Right
		if start.X <= centerX {
			side = route.Left
		}
		resolved = append(resolved, Resolved{
			Entry: e,
			Row:   i,
			Start: start,
			End:   end,
			Side:  side,
			Lane:  state.Next(side),
		})
	}
	return resolved, dropped
}

// ResolvePower places every power entry against l.
func ResolvePower(l *board.Layout, entries []PowerEntry) ([]ResolvedPower, []Dropped) {
	var (
		resolved []ResolvedPower
		dropped  []Dropped
	)
	for i, e := range entries {
		start, reason := lookupPort(l, e.From, e.FromPort)
		if reason != "" {
			dropped = append(dropped, Dropped{"power", i, reason})
			continue
		}
		end, reason := lookupPort(l, e.To, e.ToPort)
		if reason != "" {
			dropped = append(dropped, Dropped{"power", i, reason})
			continue
		}
		resolved = append(resolved, ResolvedPower{
			Entry: e,
			Row:   i,
			Index: len(resolved),
			Start: start,
			End:   end,
		})
	}
	return resolved, dropped
}

func lookupPort(l *board.Layout, component, port string) (geom.Point, string) {
	pm, ok := l.PortMap(component)
	if !ok {
		return geom.Point{}, fmt.Sprintf("no component %q", component)
	}
	p, ok := pm.Port(port)
	if !ok {
		c, _ := l.Component(component)
		return geom.Point{}, fmt.Sprintf("%s %s has no port %q", c.Kind, component, port)
	}
	return p, ""
}
