package tierbar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLabelMode is returned when a label mode name cannot be parsed.
var ErrUnknownLabelMode = errors.New("tierbar: unknown label mode")

// LabelMode selects which tiers receive text labels.
type LabelMode int

const (
	// LabelNone draws no labels.
	LabelNone LabelMode = iota
	// LabelAll labels every tier.
	LabelAll
	// LabelSides labels the first and last tier.
	LabelSides
	// LabelStart labels only the first tier.
	LabelStart
	// LabelEnd labels only the last tier.
	LabelEnd
	// LabelMid labels every tier except the first and last.
	LabelMid
)

var labelModeNames = [...]string{
	LabelNone:  "none",
	LabelAll:   "all",
	LabelSides: "sides",
	LabelStart: "start",
	LabelEnd:   "end",
	LabelMid:   "mid",
}

// String returns the lower-case name of the mode.
func (m LabelMode) String() string {
	if m >= 0 && int(m) < len(labelModeNames) {
		return labelModeNames[m]
	}
	return fmt.Sprintf("LabelMode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m LabelMode) Valid() bool {
	return m >= LabelNone && m <= LabelMid
}

// ParseLabelMode parses a mode name such as "sides" or "MID".
// Surrounding whitespace and case are ignored.
func ParseLabelMode(s string) (LabelMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range labelModeNames {
		if n == name {
			return LabelMode(i), nil
		}
	}
	return LabelAll, fmt.Errorf("%w: %q", ErrUnknownLabelMode, s)
}

// LabelModeFromOrdinal converts a stored ordinal to a mode.
// Out-of-range ordinals, including the -1 "unset" marker, return def.
func LabelModeFromOrdinal(n int, def LabelMode) LabelMode {
	m := LabelMode(n)
	if !m.Valid() {
		return def
	}
	return m
}

// MarshalText implements encoding.TextMarshaler.
func (m LabelMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabelMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LabelMode) UnmarshalText(b []byte) error {
	v, err := ParseLabelMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Shows reports whether a tier with the given role gets a label.
func (m LabelMode) Shows(r Role) bool {
	switch m {
	case LabelAll:
		return true
	case LabelSides:
		return r.IsFirst() || r.IsLast()
	case LabelStart:
		return r.IsFirst()
	case LabelEnd:
		return r.IsLast()
	case LabelMid:
		return r.IsMiddle()
	default:
		return false
	}
}

// Role is the position class of a tier within its set.
// A single tier is both first and last.
type Role uint8

const (
	// RoleFirst marks index 0.
	RoleFirst Role = 1 << iota
	// RoleLast marks the final index.
	RoleLast
)

// RoleMiddle is the role of every tier that is neither first nor last.
const RoleMiddle Role = 0

// RoleOf returns the role of index i in a set of n tiers.
func RoleOf(i, n int) Role {
	var r Role
	if i == 0 {
		r |= RoleFirst
	}
	if i == n-1 {
		r |= RoleLast
	}
	return r
}

// IsFirst reports whether the tier starts the bar.
func (r Role) IsFirst() bool { return r&RoleFirst != 0 }

// IsLast reports whether the tier ends the bar.
func (r Role) IsLast() bool { return r&RoleLast != 0 }

// IsMiddle reports whether the tier is neither first nor last.
func (r Role) IsMiddle() bool { return r == RoleMiddle }

func (r Role) String() string {
	switch r {
	case RoleMiddle:
		return "middle"
	case RoleFirst:
		return "first"
	case RoleLast:
		return "last"
	default:
		return "only"
	}
}
