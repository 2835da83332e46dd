// Package render runs the diagram pipeline: layout, connection resolution,
// routing and conflict detection, then draws the result onto a canvas.
//
// The stages hand typed values to each other (board.Layout, resolved
// connections, wiring.Report), so Plan can be inspected without drawing and
// Draw never computes geometry of its own.
package render

import (
	"fmt"

	"wiremap/board"
	"wiremap/canvas"
	"wiremap/geom"
	"wiremap/route"
	"wiremap/wiring"
)

// RoutedWire is a wire ready to draw.
type RoutedWire struct {
	route.Wire
	Label string
	Kind  wiring.SignalKind
	Side  route.Side
	Lane  int
}

// Result is everything one render pass computes.
type Result struct {
	Layout    *board.Layout
	Logic     []RoutedWire
	Power     []RoutedWire
	Conflicts wiring.Report
	Dropped   []wiring.Dropped
}

// Plan computes the diagram for spec and table without drawing it. Lane
// counters and the conflict tally live only for this call.
func Plan(spec board.Spec, table wiring.Table) *Result {
	layout := board.Build(spec)
	state := route.NewState()

	logic, droppedLogic := wiring.ResolveLogic(layout, table.Logic, state)
	power, droppedPower := wiring.ResolvePower(layout, table.Power)

	res := &Result{
		Layout:    layout,
		Logic:     make([]RoutedWire, 0, len(logic)),
		Power:     make([]RoutedWire, 0, len(power)),
		Conflicts: wiring.DetectConflicts(logic),
		Dropped:   append(droppedLogic, droppedPower...),
	}
	for _, r := range logic {
		res.Logic = append(res.Logic, RoutedWire{
			Wire:  route.LogicWire(r.Start, r.End, r.Side, r.Lane, string(r.Entry.Kind)),
			Label: fmt.Sprintf("G%d → %s.%s", r.Entry.Pin, r.Entry.Component, r.Entry.Port),
			Kind:  r.Entry.Kind,
			Side:  r.Side,
			Lane:  r.Lane,
		})
	}
	for _, p := range power {
		res.Power = append(res.Power, RoutedWire{
			Wire:  route.PowerWire(p.Start, p.End, p.Index),
			Label: fmt.Sprintf("%s.%s → %s.%s", p.Entry.From, p.Entry.FromPort, p.Entry.To, p.Entry.ToPort),
			Kind:  wiring.KindPwr,
		})
	}
	return res
}

// Render plans the diagram and draws it onto c.
func Render(c canvas.Canvas, spec board.Spec, table wiring.Table) (*Result, error) {
	res := Plan(spec, table)
	if err := Draw(c, res); err != nil {
		return res, err
	}
	return res, nil
}

// Draw emits res onto c: components, logic wires, power wires, then the
// conflict report. The document is finalized exactly once.
func Draw(c canvas.Canvas, res *Result) (err error) {
	if err := c.NewDocument(DocumentWidth, DocumentHeight); err != nil {
		return fmt.Errorf("new document: %w", err)
	}
	defer func() {
		if ferr := c.Finalize(); ferr != nil && err == nil {
			err = fmt.Errorf("finalize: %w", ferr)
		}
	}()

	c.DefineStyles(DefaultStyles())
	drawComponents(c, res.Layout)
	drawWires(c, res.Logic)
	drawWires(c, res.Power)
	drawConflicts(c, res.Layout, res.Conflicts)
	return nil
}

func drawComponents(c canvas.Canvas, l *board.Layout) {
	for _, comp := range l.Components() {
		c.DrawRect(comp.Box, ClassComponentBox)
		c.DrawText(comp.Label, comp.TitleAt, ClassText, canvas.AnchorStart)
		for _, p := range comp.Ports() {
			anchor := canvas.AnchorStart
			if p.LabelAlign == board.AlignEnd {
				anchor = canvas.AnchorEnd
			}
			c.DrawText(p.Label, p.LabelAt, ClassPinLabel, anchor)
			c.DrawCircle(p.At, pinDotRadius, canvas.CircleStyle{Fill: p.Dot})
		}
	}
}

func drawWires(c canvas.Canvas, wires []RoutedWire) {
	for _, w := range wires {
		c.DrawPolyline(w.Points, w.Stroke, w.Width, w.Opacity)
	}
}

func drawConflicts(c canvas.Canvas, l *board.Layout, report wiring.Report) {
	c.DrawText(ConflictBanner, geom.Point{X: reportX, Y: reportY}, ClassConflict, canvas.AnchorStart)
	for i, conflict := range report.Conflicts {
		at := geom.Point{X: reportX, Y: reportY + reportFirstLine + i*reportLineStep}
		c.DrawText(conflict.String(), at, ClassConflictLine, canvas.AnchorStart)

		if pin, ok := l.Pin(conflict.Pin); ok {
			c.DrawCircle(pin, markerRadius, canvas.CircleStyle{
				Fill:        "none",
				Stroke:      "red",
				StrokeWidth: markerWidth,
			})
		}
	}
}
