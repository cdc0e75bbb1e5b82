package tierbar

import "testing"

func TestMeasureSpec_Resolve(t *testing.T) {
	tests := []struct {
		spec    MeasureSpec
		desired float64
		want    float64
	}{
		{ExactSpec(300), 120, 300},
		{ExactSpec(50), 120, 50},
		{AtMostSpec(300), 120, 120},
		{AtMostSpec(80), 120, 80},
		{UnspecifiedSpec(), 120, 120},
	}
	for _, tt := range tests {
		if got := tt.spec.Resolve(tt.desired); got != tt.want {
			t.Errorf("%v(%v).Resolve(%v) = %v, want %v", tt.spec.Mode, tt.spec.Size, tt.desired, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(*Config)
		entries []TierEntry
		want    float64
	}{
		{"labels disabled", func(c *Config) { c.LabelEnabled = false }, fourTiers(), MinContentWidth},
		{"no tiers", nil, nil, MinContentWidth},
		// max(30, 48) + 10 + max(30, 54) * 3 + 10 * 2
		{"with sub-labels", nil, fourTiers(), 48 + 54*3 + 30},
		{"labels only", func(c *Config) { c.SubLabelEnabled = false }, fourTiers(), 30*4 + 30},
		{"narrow", nil, []TierEntry{{Label: "a", SubLabel: "b", Value: 1}}, MinContentWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := labeledConfig(LabelAll)
			if tt.cfg != nil {
				tt.cfg(&cfg)
			}
			r := NewRenderer(WithConfig(cfg), WithTiers(tt.entries...))
			if got := r.ContentWidth(fixedMeasurer{}); got != tt.want {
				t.Errorf("ContentWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentWidth_NilMeasurer(t *testing.T) {
	r := NewRenderer(WithConfig(labeledConfig(LabelAll)), WithTiers(fourTiers()...))
	if got := r.ContentWidth(nil); got != MinContentWidth {
		t.Errorf("ContentWidth(nil) = %v, want %v", got, MinContentWidth)
	}
}

func TestMeasure(t *testing.T) {
	cfg := labeledConfig(LabelAll)
	cfg.Padding = Insets{Left: 5, Top: 2, Right: 7, Bottom: 8}
	r := NewRenderer(WithConfig(cfg), WithTiers(fourTiers()...))
	desiredW := 48 + 54*3 + 30 + 12.0
	desiredH := DesiredHeight + 10

	tests := []struct {
		name string
		w, h MeasureSpec
		want Size
	}{
		{"unspecified", UnspecifiedSpec(), UnspecifiedSpec(), Size{desiredW, desiredH}},
		{"exactly", ExactSpec(400), ExactSpec(90), Size{400, 90}},
		{"at most larger", AtMostSpec(1000), AtMostSpec(1000), Size{desiredW, desiredH}},
		{"at most smaller", AtMostSpec(100), AtMostSpec(40), Size{100, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Measure(fixedMeasurer{}, tt.w, tt.h); got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
