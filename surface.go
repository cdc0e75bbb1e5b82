package tierbar

import "github.com/gogpu/gg"

// LineStyle describes a stroked line.
type LineStyle struct {
	Color gg.RGBA
	Width float64
	Cap   gg.LineCap
}

// TextStyle describes text to draw or measure.
// Size is in device pixels, already scaled by Config.Density.
type TextStyle struct {
	Size  float64
	Color gg.RGBA
}

// TextMeasurer reports the advance width and line height of s.
type TextMeasurer interface {
	MeasureText(s string, st TextStyle) (w, h float64)
}

// Surface is the set of primitives a Renderer draws with.
// Coordinates have the origin at the top-left with y growing down;
// DrawText positions the baseline at y.
type Surface interface {
	TextMeasurer

	StrokeLine(x1, y1, x2, y2 float64, st LineStyle)
	FillCircle(cx, cy, r float64, c gg.RGBA)
	FillPolygon(pts []gg.Point, c gg.RGBA)
	DrawText(s string, x, y float64, st TextStyle)
}
