package tierbar

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// Default visual parameters.
const (
	DefaultFontSize    = 12
	DefaultStrokeWidth = 12
)

// Channel names one of the renderer's color slots.
type Channel int

const (
	ColorMain Channel = iota
	ColorProgress
	ColorIndicator
	ColorDiamond
	ColorLabel
	ColorSubLabel
)

var channelNames = [...]string{
	ColorMain:      "main",
	ColorProgress:  "progress",
	ColorIndicator: "indicator",
	ColorDiamond:   "diamond",
	ColorLabel:     "label",
	ColorSubLabel:  "sub_label",
}

func (c Channel) String() string {
	if c >= 0 && int(c) < len(channelNames) {
		return channelNames[c]
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// ParseChannel parses a channel name ("main", "sub_label", ...).
func ParseChannel(s string) (Channel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("tierbar: unknown color channel %q", s)
}

// Palette holds one color per channel.
type Palette struct {
	Main      gg.RGBA
	Progress  gg.RGBA
	Indicator gg.RGBA
	Diamond   gg.RGBA
	Label     gg.RGBA
	SubLabel  gg.RGBA
}

// Get returns the color for ch. Unknown channels return transparent black.
func (p Palette) Get(ch Channel) gg.RGBA {
	if slot := p.slot(ch); slot != nil {
		return *slot
	}
	return gg.RGBA{}
}

// Set assigns the color for ch and reports whether ch was known.
func (p *Palette) Set(ch Channel, c gg.RGBA) bool {
	slot := p.slot(ch)
	if slot == nil {
		return false
	}
	*slot = c
	return true
}

func (p *Palette) slot(ch Channel) *gg.RGBA {
	switch ch {
	case ColorMain:
		return &p.Main
	case ColorProgress:
		return &p.Progress
	case ColorIndicator:
		return &p.Indicator
	case ColorDiamond:
		return &p.Diamond
	case ColorLabel:
		return &p.Label
	case ColorSubLabel:
		return &p.SubLabel
	}
	return nil
}

// FontSizes are in points, before Density scaling.
type FontSizes struct {
	Label    float64
	SubLabel float64
}

// Insets is padding around the drawable area.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left + Right.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns Top + Bottom.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// Config is the complete visual configuration of a Renderer.
type Config struct {
	LabelMode       LabelMode
	LabelEnabled    bool
	SubLabelEnabled bool
	StrokeWidth     float64
	Colors          Palette
	FontSizes       FontSizes

	// Density scales font sizes to device pixels. Values <= 0 mean 1.
	Density float64

	// Padding is added to the natural size by Measure.
	Padding Insets
}

// DefaultConfig returns white colors, 12pt fonts, a 12px stroke,
// LabelAll mode and labels disabled.
func DefaultConfig() Config {
	return Config{
		LabelMode:   LabelAll,
		StrokeWidth: DefaultStrokeWidth,
		Colors: Palette{
			Main:      gg.White,
			Progress:  gg.White,
			Indicator: gg.White,
			Diamond:   gg.White,
			Label:     gg.White,
			SubLabel:  gg.White,
		},
		FontSizes: FontSizes{Label: DefaultFontSize, SubLabel: DefaultFontSize},
		Density:   1,
	}
}

func (c Config) density() float64 {
	if c.Density <= 0 {
		return 1
	}
	return c.Density
}

// LabelStyle returns the text style used for tier labels.
func (c Config) LabelStyle() TextStyle {
	return TextStyle{Size: c.FontSizes.Label * c.density(), Color: c.Colors.Label}
}

// SubLabelStyle returns the text style used for tier sub-labels.
func (c Config) SubLabelStyle() TextStyle {
	return TextStyle{Size: c.FontSizes.SubLabel * c.density(), Color: c.Colors.SubLabel}
}
