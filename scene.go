package tierbar

import (
	"fmt"

	"github.com/gogpu/gg"
)

// OpKind identifies the type of a recorded draw operation.
type OpKind int

const (
	OpLine OpKind = iota
	OpCircle
	OpPolygon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpCircle:
		return "circle"
	case OpPolygon:
		return "polygon"
	case OpText:
		return "text"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded Surface call.
type Op interface {
	Kind() OpKind
	replay(dst Surface)
}

// LineOp records StrokeLine.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Style          LineStyle
}

// Kind implements Op.
func (LineOp) Kind() OpKind { return OpLine }

func (o LineOp) replay(dst Surface) { dst.StrokeLine(o.X1, o.Y1, o.X2, o.Y2, o.Style) }

// CircleOp records FillCircle.
type CircleOp struct {
	CX, CY, R float64
	Color     gg.RGBA
}

// Kind implements Op.
func (CircleOp) Kind() OpKind { return OpCircle }

func (o CircleOp) replay(dst Surface) { dst.FillCircle(o.CX, o.CY, o.R, o.Color) }

// PolygonOp records FillPolygon.
type PolygonOp struct {
	Points []gg.Point
	Color  gg.RGBA
}

// Kind implements Op.
func (PolygonOp) Kind() OpKind { return OpPolygon }

func (o PolygonOp) replay(dst Surface) { dst.FillPolygon(o.Points, o.Color) }

// TextOp records DrawText.
type TextOp struct {
	Text  string
	X, Y  float64
	Style TextStyle
}

// Kind implements Op.
func (TextOp) Kind() OpKind { return OpText }

func (o TextOp) replay(dst Surface) { dst.DrawText(o.Text, o.X, o.Y, o.Style) }

// Scene is a Surface that records draw calls instead of drawing them.
// Text measurement is delegated to the TextMeasurer given to NewScene;
// with a nil measurer all text measures (0, 0).
//
// A Scene is NOT safe for concurrent use.
type Scene struct {
	measurer TextMeasurer
	ops      []Op
}

var _ Surface = (*Scene)(nil)

// NewScene creates an empty Scene.
func NewScene(m TextMeasurer) *Scene {
	return &Scene{measurer: m, ops: make([]Op, 0, 16)}
}

// Layout renders r into a new Scene.
func (r *Renderer) Layout(m TextMeasurer, width, height float64) *Scene {
	s := NewScene(m)
	r.Render(s, width, height)
	return s
}

// StrokeLine implements Surface.
func (s *Scene) StrokeLine(x1, y1, x2, y2 float64, st LineStyle) {
	s.ops = append(s.ops, LineOp{X1: x1, Y1: y1, X2: x2, Y2: y2, Style: st})
}

// FillCircle implements Surface.
func (s *Scene) FillCircle(cx, cy, r float64, c gg.RGBA) {
	s.ops = append(s.ops, CircleOp{CX: cx, CY: cy, R: r, Color: c})
}

// FillPolygon implements Surface. The points are copied.
func (s *Scene) FillPolygon(pts []gg.Point, c gg.RGBA) {
	cp := make([]gg.Point, len(pts))
	copy(cp, pts)
	s.ops = append(s.ops, PolygonOp{Points: cp, Color: c})
}

// DrawText implements Surface.
func (s *Scene) DrawText(text string, x, y float64, st TextStyle) {
	s.ops = append(s.ops, TextOp{Text: text, X: x, Y: y, Style: st})
}

// MeasureText implements Surface.
func (s *Scene) MeasureText(text string, st TextStyle) (w, h float64) {
	if s.measurer == nil {
		return 0, 0
	}
	return s.measurer.MeasureText(text, st)
}

// Ops returns the recorded operations in call order.
func (s *Scene) Ops() []Op { return s.ops }

// Len returns the number of recorded operations.
func (s *Scene) Len() int { return len(s.ops) }

// Reset discards all recorded operations.
func (s *Scene) Reset() { s.ops = s.ops[:0] }

// Count returns the number of operations of kind k.
func (s *Scene) Count(k OpKind) int {
	n := 0
	for _, op := range s.ops {
		if op.Kind() == k {
			n++
		}
	}
	return n
}

// Texts returns the recorded text operations in call order.
func (s *Scene) Texts() []TextOp {
	var out []TextOp
	for _, op := range s.ops {
		if t, ok := op.(TextOp); ok {
			out = append(out, t)
		}
	}
	return out
}

// Replay issues every recorded operation on dst, in order.
func (s *Scene) Replay(dst Surface) {
	for _, op := range s.ops {
		op.replay(dst)
	}
}
