package tierbar

// Option configures a Renderer during creation.
//
// Example:
//
//	r := tierbar.NewRenderer(
//	    tierbar.WithConfig(cfg),
//	    tierbar.WithTiers(tiers...),
//	    tierbar.WithProgress(25),
//	)
type Option func(*Renderer)

// WithConfig sets the initial configuration.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) {
		r.cfg = cfg
	}
}

// WithTiers sets the initial tier set.
func WithTiers(entries ...TierEntry) Option {
	return func(r *Renderer) {
		r.tiers = NewTierSet(entries)
	}
}

// WithProgress sets the initial progress value.
func WithProgress(v int) Option {
	return func(r *Renderer) {
		r.progress = v
	}
}

// WithInvalidateFunc registers fn as if by OnInvalidate.
//
// Example:
//
//	// Schedule a repaint on the host's UI loop
//	r := tierbar.NewRenderer(tierbar.WithInvalidateFunc(view.RequestRedraw))
func WithInvalidateFunc(fn func()) Option {
	return func(r *Renderer) {
		r.OnInvalidate(fn)
	}
}
