package tierbar

import "github.com/gogpu/gg"

// Fixed geometry, in pixels.
const (
	TrackY          = 15.0
	TrackStartX     = 20.0 // left end of the track and minimum indicator x
	TrackEndInset   = 10.0 // gap between the track's right end and the width
	IndicatorRadius = 10.0
	DiamondSize     = 15.0
	LabelOffsetY    = 60.0 // label baseline
	SubLabelGap     = 10.0 // between the label height and the sub-label baseline

	DesiredHeight   = 120.0
	MinContentWidth = 100.0
	LabelSpacing    = 10.0
)

// FirstSubLabel replaces the sub-label of the first tier.
const FirstSubLabel = "0 points"

// Tick is the computed layout of one tier for a given width.
type Tick struct {
	Index int
	Role  Role
	// X is the tier's position on the track.
	X float64
	// Labeled reports whether the label mode shows this tier.
	Labeled bool
	// Diamond reports whether a diamond marker is drawn at X.
	Diamond bool
}

// Ticks computes the position and visibility of every tier at the given
// width. Labeled and Diamond are false for all tiers when labels are
// disabled.
func (r *Renderer) Ticks(width float64) []Tick {
	n := r.tiers.Len()
	if n == 0 {
		return nil
	}
	ticks := make([]Tick, n)
	for i := range n {
		role := RoleOf(i, n)
		labeled := r.cfg.LabelEnabled && r.cfg.LabelMode.Shows(role)
		ticks[i] = Tick{
			Index:   i,
			Role:    role,
			X:       width * r.tiers.Ratio(r.tiers.At(i).Value),
			Labeled: labeled,
			Diamond: labeled && role.IsMiddle(),
		}
	}
	return ticks
}

// IndicatorX returns the x of the progress indicator at the given width.
// It never falls below TrackStartX and has no upper bound.
func (r *Renderer) IndicatorX(width float64) float64 {
	return max(width*r.tiers.Ratio(r.progress), TrackStartX)
}

// labelX places a tier's text: first tiers start at 0, last tiers are
// right-aligned to the width, middle tiers are centered on their tick.
// A single tier is right-aligned.
func labelX(role Role, tick, width, labelW, subW float64) float64 {
	switch {
	case role.IsLast():
		return width - max(labelW, subW)
	case role.IsFirst():
		return 0
	default:
		return tick - labelW/2
	}
}

// diamondPoints returns the rhombus centered at (cx, cy), starting at
// the left vertex and running clockwise.
func diamondPoints(cx, cy float64) []gg.Point {
	const h = DiamondSize / 2
	return []gg.Point{
		gg.Pt(cx-h, cy),
		gg.Pt(cx, cy-h),
		gg.Pt(cx+h, cy),
		gg.Pt(cx, cy+h),
	}
}
