package tierbar

import (
	"reflect"
	"testing"

	"github.com/gogpu/gg"
)

func TestScene_Replay(t *testing.T) {
	r := NewRenderer(WithConfig(labeledConfig(LabelAll)), WithTiers(fourTiers()...), WithProgress(30))
	src := render(r, 400)

	dst := NewScene(fixedMeasurer{})
	src.Replay(dst)

	if !reflect.DeepEqual(src.Ops(), dst.Ops()) {
		t.Error("replayed scene differs from source")
	}
}

func TestScene_FillPolygonCopies(t *testing.T) {
	s := NewScene(nil)
	pts := []gg.Point{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(1, 1)}
	s.FillPolygon(pts, gg.White)
	pts[0] = gg.Pt(9, 9)

	p := s.Ops()[0].(PolygonOp)
	if p.Points[0] != gg.Pt(0, 0) {
		t.Errorf("recorded point = %v, want (0,0)", p.Points[0])
	}
}

func TestScene_Basics(t *testing.T) {
	s := NewScene(nil)
	if w, h := s.MeasureText("abc", TextStyle{Size: 12}); w != 0 || h != 0 {
		t.Errorf("nil measurer MeasureText = %v, %v, want 0, 0", w, h)
	}

	s.StrokeLine(0, 0, 1, 1, LineStyle{})
	s.FillCircle(0, 0, 1, gg.White)
	s.DrawText("x", 0, 0, TextStyle{})
	s.DrawText("y", 0, 0, TextStyle{})

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	counts := map[OpKind]int{OpLine: 1, OpCircle: 1, OpPolygon: 0, OpText: 2}
	for k, want := range counts {
		if got := s.Count(k); got != want {
			t.Errorf("Count(%v) = %d, want %d", k, got, want)
		}
	}

	s.Reset()
	if s.Len() != 0 || len(s.Texts()) != 0 {
		t.Error("Reset() should discard all operations")
	}
}

func TestOpKind_String(t *testing.T) {
	tests := map[OpKind]string{
		OpLine:     "line",
		OpCircle:   "circle",
		OpPolygon:  "polygon",
		OpText:     "text",
		OpKind(17): "OpKind(17)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
