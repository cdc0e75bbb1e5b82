package tierbar

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestDecodeStyle(t *testing.T) {
	st, err := DecodeStyle(map[string]any{
		"label_mode":          "sides",
		"Main_Color":          "#112233",
		"indicator_color":     0xFF00FF00,
		"diamond_color":       gg.Black,
		"label_color":         color.NRGBA{R: 255, A: 255},
		"label_font_size":     "14",
		"sub_label_font_size": 10,
		"label_enabled":       "true",
		"sub_label_enabled":   true,
		"stroke_width":        6.5,
		"progress":            "25",
		"density":             2,
		"padding_left":        4,
		"padding_bottom":      "3",
	})
	if err != nil {
		t.Fatalf("DecodeStyle() error = %v", err)
	}

	cfg := st.Config
	if cfg.LabelMode != LabelSides {
		t.Errorf("LabelMode = %v, want sides", cfg.LabelMode)
	}
	if cfg.Colors.Main != gg.Hex("#112233") {
		t.Errorf("Main = %v", cfg.Colors.Main)
	}
	if cfg.Colors.Indicator != (gg.RGBA{G: 1, A: 1}) {
		t.Errorf("Indicator = %v, want opaque green", cfg.Colors.Indicator)
	}
	if cfg.Colors.Diamond != gg.Black {
		t.Errorf("Diamond = %v", cfg.Colors.Diamond)
	}
	if cfg.Colors.Label != (gg.RGBA{R: 1, A: 1}) {
		t.Errorf("Label = %v, want opaque red", cfg.Colors.Label)
	}
	if cfg.Colors.Progress != gg.White {
		t.Errorf("Progress = %v, want default white", cfg.Colors.Progress)
	}
	if cfg.FontSizes != (FontSizes{Label: 14, SubLabel: 10}) {
		t.Errorf("FontSizes = %+v", cfg.FontSizes)
	}
	if !cfg.LabelEnabled || !cfg.SubLabelEnabled {
		t.Error("labels should be enabled")
	}
	if cfg.StrokeWidth != 6.5 || cfg.Density != 2 {
		t.Errorf("StrokeWidth = %v, Density = %v", cfg.StrokeWidth, cfg.Density)
	}
	if cfg.Padding != (Insets{Left: 4, Bottom: 3}) {
		t.Errorf("Padding = %+v", cfg.Padding)
	}
	if st.Progress != 25 {
		t.Errorf("Progress = %d, want 25", st.Progress)
	}
}

func TestDecodeStyle_Empty(t *testing.T) {
	st, err := DecodeStyle(nil)
	if err != nil {
		t.Fatalf("DecodeStyle(nil) error = %v", err)
	}
	if st.Config != DefaultConfig() || st.Progress != 0 {
		t.Errorf("DecodeStyle(nil) = %+v, want defaults", st)
	}
}

func TestDecodeStyle_LabelModeOrdinal(t *testing.T) {
	tests := []struct {
		v       any
		want    LabelMode
		wantErr bool
	}{
		{0, LabelNone, false},
		{5, LabelMid, false},
		{"3", LabelStart, false},
		{" 2 ", LabelSides, false},
		{"Mid", LabelMid, false},
		{"7", LabelAll, true},
		{"middle", LabelAll, true},
		{LabelEnd, LabelEnd, false},
		{6, LabelAll, true},
		{-1, LabelAll, true},
		{LabelMode(9), LabelAll, true},
	}
	for _, tt := range tests {
		st, err := DecodeStyle(map[string]any{KeyLabelMode: tt.v})
		if (err != nil) != tt.wantErr {
			t.Errorf("label_mode %v: error = %v, wantErr %v", tt.v, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrUnknownLabelMode) {
				t.Errorf("label_mode %v: error %v does not wrap ErrUnknownLabelMode", tt.v, err)
			}
			continue
		}
		if st.Config.LabelMode != tt.want {
			t.Errorf("label_mode %v = %v, want %v", tt.v, st.Config.LabelMode, tt.want)
		}
	}
}

func TestDecodeStyle_Errors(t *testing.T) {
	st, err := DecodeStyle(map[string]any{
		"bogus":           1,
		"stroke_width":    0,
		"label_font_size": -3,
		"main_color":      "#12",
		"label_enabled":   "maybe",
	})
	if err == nil {
		t.Fatal("DecodeStyle() should fail")
	}
	if !errors.Is(err, ErrUnknownStyleKey) {
		t.Errorf("error %v does not wrap ErrUnknownStyleKey", err)
	}
	msg := err.Error()
	for _, key := range []string{"bogus", "stroke_width", "label_font_size", "main_color", "label_enabled"} {
		if !strings.Contains(msg, key+":") {
			t.Errorf("error does not mention %s:\n%s", key, msg)
		}
	}

	// Rejected entries keep their defaults.
	def := DefaultConfig()
	if st.Config.StrokeWidth != def.StrokeWidth {
		t.Errorf("StrokeWidth = %v, want default %v", st.Config.StrokeWidth, def.StrokeWidth)
	}
	if st.Config.FontSizes.Label != def.FontSizes.Label {
		t.Errorf("FontSizes.Label = %v, want default %v", st.Config.FontSizes.Label, def.FontSizes.Label)
	}
	if st.Config.Colors.Main != def.Colors.Main {
		t.Errorf("Colors.Main = %v, want default %v", st.Config.Colors.Main, def.Colors.Main)
	}
	if st.Config.LabelEnabled != def.LabelEnabled {
		t.Errorf("LabelEnabled = %v, want default %v", st.Config.LabelEnabled, def.LabelEnabled)
	}
}

func TestDecodeStyle_PartialKeepsDefaults(t *testing.T) {
	st, err := DecodeStyle(map[string]any{
		"stroke_width":        0,
		"sub_label_font_size": "big",
		"density":             -1,
		"padding_left":        "wide",
		"progress":            "lots",
		"label_mode":          "diagonal",
		"label_font_size":     20,
	})
	if err == nil {
		t.Fatal("DecodeStyle() should fail")
	}
	want := DefaultConfig()
	want.FontSizes.Label = 20
	if st.Config != want {
		t.Errorf("Config = %+v, want %+v", st.Config, want)
	}
	if st.Progress != 0 {
		t.Errorf("Progress = %d, want 0", st.Progress)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		want    gg.RGBA
		wantErr bool
	}{
		{"hex6", "#FF0000", gg.Hex("FF0000"), false},
		{"hex3 no hash", "0f0", gg.Hex("0f0"), false},
		{"hex8", "#00000080", gg.Hex("00000080"), false},
		{"argb opaque", 0xFF0000FF, gg.RGBA{B: 1, A: 1}, false},
		{"argb transparent", 0x00FFFFFF, gg.RGBA{R: 1, G: 1, B: 1}, false},
		{"rgba", gg.RGBA{R: 0.5, A: 1}, gg.RGBA{R: 0.5, A: 1}, false},
		{"bad length", "#12345", gg.RGBA{}, true},
		{"bad digit", "#GG0000", gg.RGBA{}, true},
		{"signed white", -1, gg.White, false},
		{"signed blue", -16776961, gg.RGBA{B: 1, A: 1}, false},
		{"signed half red", int32(-0x7F010000), gg.RGBA{R: 1, A: float64(0x80) / 255}, false},
		{"below int32", int64(math.MinInt32) - 1, gg.RGBA{}, true},
		{"too large", int64(0x1FFFFFFFF), gg.RGBA{}, true},
		{"wrong type", []int{1}, gg.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
