package tierbar

import "fmt"

// MeasureMode is how a host constrains one dimension during layout.
type MeasureMode int

const (
	// Unspecified lets the renderer choose its desired size.
	Unspecified MeasureMode = iota
	// Exactly forces the given size.
	Exactly
	// AtMost caps the desired size at the given size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case Exactly:
		return "exactly"
	case AtMost:
		return "at_most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// MeasureSpec is a host layout constraint for one dimension.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

// ExactSpec returns an Exactly constraint.
func ExactSpec(size float64) MeasureSpec { return MeasureSpec{Mode: Exactly, Size: size} }

// AtMostSpec returns an AtMost constraint.
func AtMostSpec(size float64) MeasureSpec { return MeasureSpec{Mode: AtMost, Size: size} }

// UnspecifiedSpec returns an unconstrained spec.
func UnspecifiedSpec() MeasureSpec { return MeasureSpec{} }

// Resolve applies the spec to a desired size.
func (s MeasureSpec) Resolve(desired float64) float64 {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		return min(s.Size, desired)
	default:
		return desired
	}
}

// Size is a width and height in pixels.
type Size struct {
	Width, Height float64
}

// ContentWidth returns the natural width of the bar's labels: the sum of
// each tier's widest text plus LabelSpacing between tiers, never less
// than MinContentWidth.
func (r *Renderer) ContentWidth(m TextMeasurer) float64 {
	if !r.cfg.LabelEnabled || r.tiers.Len() == 0 || m == nil {
		return MinContentWidth
	}
	labelStyle := r.cfg.LabelStyle()
	subStyle := r.cfg.SubLabelStyle()
	var w float64
	for i := range r.tiers.Len() {
		e := r.tiers.At(i)
		lw, _ := m.MeasureText(e.Label, labelStyle)
		if r.cfg.SubLabelEnabled {
			sub := e.SubLabel
			if i == 0 {
				sub = FirstSubLabel
			}
			sw, _ := m.MeasureText(sub, subStyle)
			lw = max(lw, sw)
		}
		if i > 0 {
			w += LabelSpacing
		}
		w += lw
	}
	return max(w, MinContentWidth)
}

// Measure resolves the renderer's size against host constraints.
// The desired width is ContentWidth plus horizontal padding; the desired
// height is DesiredHeight plus vertical padding.
func (r *Renderer) Measure(m TextMeasurer, width, height MeasureSpec) Size {
	desiredW := r.ContentWidth(m) + r.cfg.Padding.Horizontal()
	desiredH := DesiredHeight + r.cfg.Padding.Vertical()
	return Size{
		Width:  width.Resolve(desiredW),
		Height: height.Resolve(desiredH),
	}
}
