package canvas

import "wiremap/geom"

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpDocument OpKind = "document"
	OpStyles   OpKind = "styles"
	OpRect     OpKind = "rect"
	OpText     OpKind = "text"
	OpCircle   OpKind = "circle"
	OpPolyline OpKind = "polyline"
	OpFinalize OpKind = "finalize"
)

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind    OpKind
	Rect    geom.Rect
	Text    string
	Class   string
	Anchor  Anchor
	Points  []geom.Point
	Radius  float64
	Circle  CircleStyle
	Stroke  string
	Width   float64
	Opacity float64
	Styles  []Style
}

// Recorder is a Canvas that keeps every call instead of drawing. Viewers
// and tests read the calls back.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) NewDocument(width, height int) error {
	r.Ops = append(r.Ops, Op{Kind: OpDocument, Rect: geom.Rect{W: width, H: height}})
	return nil
}

func (r *Recorder) DefineStyles(styles []Style) {
	r.Ops = append(r.Ops, Op{Kind: OpStyles, Styles: append([]Style(nil), styles...)})
}

func (r *Recorder) DrawRect(rect geom.Rect, class string) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, Class: class})
}

func (r *Recorder) DrawText(text string, at geom.Point, class string, anchor Anchor) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, Points: []geom.Point{at}, Class: class, Anchor: anchor})
}

func (r *Recorder) DrawCircle(center geom.Point, radius float64, style CircleStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []geom.Point{center}, Radius: radius, Circle: style})
}

func (r *Recorder) DrawPolyline(points []geom.Point, stroke string, width, opacity float64) {
	r.Ops = append(r.Ops, Op{
		Kind:    OpPolyline,
		Points:  append([]geom.Point(nil), points...),
		Stroke:  stroke,
		Width:   width,
		Opacity: opacity,
	})
}

func (r *Recorder) Finalize() error {
	r.Ops = append(r.Ops, Op{Kind: OpFinalize})
	return nil
}

// Filter returns the recorded calls of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Replay issues the recorded calls, finalize included, on c.
func (r *Recorder) Replay(c Canvas) error {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpDocument:
			if err := c.NewDocument(op.Rect.W, op.Rect.H); err != nil {
				return err
			}
		case OpStyles:
			c.DefineStyles(op.Styles)
		case OpRect:
			c.DrawRect(op.Rect, op.Class)
		case OpText:
			c.DrawText(op.Text, op.Points[0], op.Class, op.Anchor)
		case OpCircle:
			c.DrawCircle(op.Points[0], op.Radius, op.Circle)
		case OpPolyline:
			c.DrawPolyline(op.Points, op.Stroke, op.Width, op.Opacity)
		case OpFinalize:
			if err := c.Finalize(); err != nil {
				return err
			}
		}
	}
	return nil
}
