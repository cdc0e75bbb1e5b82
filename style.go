package tierbar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/spf13/cast"
)

// Style keys understood by DecodeStyle.
const (
	KeyLabelMode        = "label_mode"
	KeyMainColor        = "main_color"
	KeyProgressColor    = "progress_color"
	KeyIndicatorColor   = "indicator_color"
	KeyDiamondColor     = "diamond_color"
	KeyLabelColor       = "label_color"
	KeySubLabelColor    = "sub_label_color"
	KeyLabelFontSize    = "label_font_size"
	KeySubLabelFontSize = "sub_label_font_size"
	KeyLabelEnabled     = "label_enabled"
	KeySubLabelEnabled  = "sub_label_enabled"
	KeyStrokeWidth      = "stroke_width"
	KeyProgress         = "progress"
	KeyDensity          = "density"
	KeyPaddingLeft      = "padding_left"
	KeyPaddingTop       = "padding_top"
	KeyPaddingRight     = "padding_right"
	KeyPaddingBottom    = "padding_bottom"
)

// ErrUnknownStyleKey is wrapped by DecodeStyle for keys it does not know.
var ErrUnknownStyleKey = errors.New("tierbar: unknown style key")

// Style is a decoded style map: a configuration plus the initial progress.
type Style struct {
	Config   Config
	Progress int
}

var colorKeys = map[string]Channel{
	KeyMainColor:      ColorMain,
	KeyProgressColor:  ColorProgress,
	KeyIndicatorColor: ColorIndicator,
	KeyDiamondColor:   ColorDiamond,
	KeyLabelColor:     ColorLabel,
	KeySubLabelColor:  ColorSubLabel,
}

// DecodeStyle builds a Style from a flat key/value map, starting from
// DefaultConfig. Keys are matched case-insensitively. Every bad entry is
// reported; the returned Style holds the defaults for those keys.
//
// Colors may be hex strings ("#RGB", "#RRGGBB", "#RRGGBBAA"), integers
// in 0xAARRGGBB form (signed 32-bit values included, so -1 is opaque
// white), gg.RGBA or any color.Color. The label mode may be a name or an
// ordinal, given as a number or a numeric string.
func DecodeStyle(m map[string]any) (Style, error) {
	st := Style{Config: DefaultConfig()}
	cfg := &st.Config

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		v := m[k]
		key := strings.ToLower(k)
		var err error
		if ch, ok := colorKeys[key]; ok {
			var c gg.RGBA
			if c, err = ParseColor(v); err == nil {
				cfg.Colors.Set(ch, c)
			}
		} else {
			err = decodeScalar(&st, key, v)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
	}
	return st, errors.Join(errs...)
}

func decodeScalar(st *Style, key string, v any) error {
	cfg := &st.Config
	switch key {
	case KeyLabelMode:
		return assign(&cfg.LabelMode, v, decodeLabelMode)
	case KeyLabelEnabled:
		return assign(&cfg.LabelEnabled, v, cast.ToBoolE)
	case KeySubLabelEnabled:
		return assign(&cfg.SubLabelEnabled, v, cast.ToBoolE)
	case KeyLabelFontSize:
		return assign(&cfg.FontSizes.Label, v, positive)
	case KeySubLabelFontSize:
		return assign(&cfg.FontSizes.SubLabel, v, positive)
	case KeyStrokeWidth:
		return assign(&cfg.StrokeWidth, v, positive)
	case KeyDensity:
		return assign(&cfg.Density, v, positive)
	case KeyProgress:
		return assign(&st.Progress, v, cast.ToIntE)
	case KeyPaddingLeft:
		return assign(&cfg.Padding.Left, v, cast.ToFloat64E)
	case KeyPaddingTop:
		return assign(&cfg.Padding.Top, v, cast.ToFloat64E)
	case KeyPaddingRight:
		return assign(&cfg.Padding.Right, v, cast.ToFloat64E)
	case KeyPaddingBottom:
		return assign(&cfg.Padding.Bottom, v, cast.ToFloat64E)
	default:
		return ErrUnknownStyleKey
	}
}

// assign stores decode(v) in dst only when decoding succeeds.
func assign[T any](dst *T, v any, decode func(any) (T, error)) error {
	x, err := decode(v)
	if err != nil {
		return err
	}
	*dst = x
	return nil
}

func decodeLabelMode(v any) (LabelMode, error) {
	switch x := v.(type) {
	case LabelMode:
		if !x.Valid() {
			return LabelAll, fmt.Errorf("%w: %d", ErrUnknownLabelMode, int(x))
		}
		return x, nil
	case string:
		m, err := ParseLabelMode(x)
		if err == nil {
			return m, nil
		}
		n, nerr := strconv.Atoi(strings.TrimSpace(x))
		if nerr != nil {
			return LabelAll, err
		}
		return labelModeOrdinal(n)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return LabelAll, err
	}
	return labelModeOrdinal(n)
}

func labelModeOrdinal(n int) (LabelMode, error) {
	m := LabelModeFromOrdinal(n, -1)
	if m < 0 {
		return LabelAll, fmt.Errorf("%w: ordinal %d", ErrUnknownLabelMode, n)
	}
	return m, nil
}

func positive(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, fmt.Errorf("must be positive, got %v", f)
	}
	return f, nil
}

// ParseColor converts a style value to a color. See DecodeStyle for the
// accepted forms.
func ParseColor(v any) (gg.RGBA, error) {
	switch c := v.(type) {
	case gg.RGBA:
		return c, nil
	case color.Color:
		return gg.FromColor(c), nil
	case string:
		return parseHexColor(c)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("invalid color %v: %w", v, err)
	}
	var argb uint32
	switch {
	case n >= 0 && n <= math.MaxUint32:
		argb = uint32(n)
	case n < 0 && n >= math.MinInt32:
		// Signed 32-bit ARGB: every opaque color is negative.
		argb = uint32(int32(n))
	default:
		return gg.RGBA{}, fmt.Errorf("invalid color %d: out of range", n)
	}
	return gg.RGBA{
		R: float64(argb>>16&0xFF) / 255,
		G: float64(argb>>8&0xFF) / 255,
		B: float64(argb&0xFF) / 255,
		A: float64(argb>>24) / 255,
	}, nil
}

func parseHexColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("invalid color %q: want #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return gg.RGBA{}, fmt.Errorf("invalid color %q: bad hex digit %q", s, r)
		}
	}
	return gg.Hex(hex), nil
}
