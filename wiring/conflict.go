package wiring

import (
	"fmt"
	"strings"
)

// Conflict is a controller pin claimed by more than one connection.
type Conflict struct {
	Pin    int
	Usages []string
}

// String formats the conflict as a report line.
func (c Conflict) String() string {
	return fmt.Sprintf("GPIO %d: Used by %s", c.Pin, strings.Join(c.Usages, ", "))
}

// Report lists conflicts in the order their pins were first used.
type Report struct {
	Conflicts []Conflict
}

// HasConflicts reports whether any pin is over-subscribed.
func (r Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Lines returns one report line per conflict.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Conflicts))
	for _, c := range r.Conflicts {
		lines = append(lines, c.String())
	}
	return lines
}

// String joins the report lines, one per line.
func (r Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Accumulator tallies the ports each controller pin is wired to.
type Accumulator struct {
	order []int
	usage map[int][]string
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{usage: make(map[int][]string)}
}

// Add records that pin drives port.
func (a *Accumulator) Add(pin int, port string) {
	if _, ok := a.usage[pin]; !ok {
		a.order = append(a.order, pin)
	}
	a.usage[pin] = append(a.usage[pin], port)
}

// Usage returns the ports recorded for pin, in the order they were added.
func (a *Accumulator) Usage(pin int) []string {
	return a.usage[pin]
}

// Report returns every pin with more than one usage.
func (a *Accumulator) Report() Report {
	var r Report
	for _, pin := range a.order {
		usages := a.usage[pin]
		if len(usages) > 1 {
			r.Conflicts = append(r.Conflicts, Conflict{
				Pin:    pin,
				Usages: append([]string(nil), usages...),
			})
		}
	}
	return r
}

// DetectConflicts runs an accumulator over resolved logic connections.
func DetectConflicts(resolved []Resolved) Report {
	acc := NewAccumulator()
	for _, r := range resolved {
		acc.Add(r.Entry.Pin, r.Entry.Port)
	}
	return acc.Report()
}
