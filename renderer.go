package tierbar

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Renderer owns the visual state of one tiered progress bar and draws it
// onto a Surface.
//
// Every setter marks the renderer dirty and notifies the functions
// registered with OnInvalidate, in registration order. Render reads state
// only; hosts call ClearDirty once they have repainted.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	cfg      Config
	tiers    TierSet
	progress int

	dirty     bool
	observers []func()
}

// NewRenderer creates a Renderer with DefaultConfig, no tiers and zero
// progress, then applies opts. Options do not notify observers.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:   DefaultConfig(),
		tiers: NewTierSet(nil),
		dirty: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnInvalidate registers fn to run after every state change.
func (r *Renderer) OnInvalidate(fn func()) {
	if fn != nil {
		r.observers = append(r.observers, fn)
	}
}

// Dirty reports whether state changed since the last ClearDirty.
// A new Renderer starts dirty.
func (r *Renderer) Dirty() bool { return r.dirty }

// ClearDirty resets the dirty flag.
func (r *Renderer) ClearDirty() { r.dirty = false }

func (r *Renderer) invalidate() {
	r.dirty = true
	for _, fn := range r.observers {
		fn()
	}
}

// Config returns a copy of the current configuration.
func (r *Renderer) Config() Config { return r.cfg }

// SetConfig replaces the whole configuration.
func (r *Renderer) SetConfig(cfg Config) {
	r.cfg = cfg
	r.invalidate()
}

// Tiers returns the current tier set.
func (r *Renderer) Tiers() TierSet { return r.tiers }

// MaxValue returns the maximum of the current tier set.
func (r *Renderer) MaxValue() int { return r.tiers.MaxValue() }

// SetTiers replaces the tier set. entries may be empty.
func (r *Renderer) SetTiers(entries []TierEntry) {
	r.tiers = NewTierSet(entries)
	Logger().Debug("tierbar: tiers replaced",
		slog.Int("count", r.tiers.Len()),
		slog.Int("max", r.tiers.MaxValue()))
	r.invalidate()
}

// Progress returns the current progress value.
func (r *Renderer) Progress() int { return r.progress }

// SetProgress sets the progress value. It is not clamped here; Render
// keeps the indicator at or right of the track start.
func (r *Renderer) SetProgress(v int) {
	r.progress = v
	r.invalidate()
}

// SetColor sets the color of one channel. Unknown channels are ignored
// and do not invalidate.
func (r *Renderer) SetColor(ch Channel, c gg.RGBA) {
	if !r.cfg.Colors.Set(ch, c) {
		Logger().Warn("tierbar: unknown color channel", slog.Int("channel", int(ch)))
		return
	}
	r.invalidate()
}

// SetLabelMode sets which tiers get labels.
func (r *Renderer) SetLabelMode(m LabelMode) {
	r.cfg.LabelMode = m
	r.invalidate()
}

// SetLabelEnabled turns all labels, and with them the diamond markers,
// on or off.
func (r *Renderer) SetLabelEnabled(on bool) {
	r.cfg.LabelEnabled = on
	r.invalidate()
}

// SetSubLabelEnabled turns sub-labels on or off.
func (r *Renderer) SetSubLabelEnabled(on bool) {
	r.cfg.SubLabelEnabled = on
	r.invalidate()
}

// SetStrokeWidth sets the width of the track and progress lines.
func (r *Renderer) SetStrokeWidth(w float64) {
	r.cfg.StrokeWidth = w
	r.invalidate()
}

// SetFontSizes sets the label and sub-label sizes in points.
func (r *Renderer) SetFontSizes(fs FontSizes) {
	r.cfg.FontSizes = fs
	r.invalidate()
}

// Render draws the bar into a box of the given size, in layer order:
// track, progress line and indicator, then for each labeled tier its
// diamond (middle tiers only) followed by its text.
//
// Render does not modify the renderer; the same state and box always
// produce the same sequence of Surface calls.
func (r *Renderer) Render(s Surface, width, height float64) {
	Logger().Debug("tierbar: render",
		slog.Float64("width", width),
		slog.Float64("height", height),
		slog.Int("tiers", r.tiers.Len()),
		slog.Int("progress", r.progress))

	r.drawTrack(s, width)
	r.drawProgress(s, width)
	if !r.cfg.LabelEnabled {
		return
	}
	for _, t := range r.Ticks(width) {
		if t.Labeled {
			r.drawTier(s, t, width)
		}
	}
}

func (r *Renderer) drawTrack(s Surface, width float64) {
	s.StrokeLine(TrackStartX, TrackY, width-TrackEndInset, TrackY, LineStyle{
		Color: r.cfg.Colors.Main,
		Width: r.cfg.StrokeWidth,
		Cap:   gg.LineCapRound,
	})
}

func (r *Renderer) drawProgress(s Surface, width float64) {
	cx := r.IndicatorX(width)
	s.StrokeLine(TrackStartX, TrackY, cx, TrackY, LineStyle{
		Color: r.cfg.Colors.Progress,
		Width: r.cfg.StrokeWidth,
		Cap:   gg.LineCapRound,
	})
	s.FillCircle(cx, TrackY, IndicatorRadius, r.cfg.Colors.Indicator)
}

func (r *Renderer) drawTier(s Surface, t Tick, width float64) {
	entry := r.tiers.At(t.Index)
	labelStyle := r.cfg.LabelStyle()
	subStyle := r.cfg.SubLabelStyle()

	sub := entry.SubLabel
	if t.Role.IsFirst() {
		sub = FirstSubLabel
	}
	labelW, labelH := s.MeasureText(entry.Label, labelStyle)
	subW, _ := s.MeasureText(sub, subStyle)

	if t.Diamond {
		s.FillPolygon(diamondPoints(t.X, TrackY), r.cfg.Colors.Diamond)
	}

	x := labelX(t.Role, t.X, width, labelW, subW)
	s.DrawText(entry.Label, x, LabelOffsetY, labelStyle)
	if r.cfg.SubLabelEnabled {
		s.DrawText(sub, x, LabelOffsetY+labelH+SubLabelGap, subStyle)
	}
}
