package tierbar

import "math"

// Unbounded is the MaxValue of an empty TierSet.
// Any ratio computed against it is zero.
const Unbounded = math.MaxInt

// TierEntry is one labeled checkpoint along the bar.
// Value must be non-negative; it positions the tier relative to the
// largest value in its set.
type TierEntry struct {
	Label    string
	SubLabel string
	Value    int
}

// TierSet is an ordered, immutable sequence of tiers with its derived
// maximum value. Index 0 is the start of the bar and the last index is
// the end. The order is taken as given and is never sorted.
type TierSet struct {
	entries []TierEntry
	max     int
}

// NewTierSet copies entries into a new TierSet and computes its maximum.
func NewTierSet(entries []TierEntry) TierSet {
	if len(entries) == 0 {
		return TierSet{max: Unbounded}
	}
	s := TierSet{
		entries: make([]TierEntry, len(entries)),
		max:     entries[0].Value,
	}
	copy(s.entries, entries)
	for _, e := range entries[1:] {
		s.max = max(s.max, e.Value)
	}
	return s
}

// Len returns the number of tiers.
func (s TierSet) Len() int { return len(s.entries) }

// At returns the tier at index i.
func (s TierSet) At(i int) TierEntry { return s.entries[i] }

// Entries returns a copy of the tiers in order.
func (s TierSet) Entries() []TierEntry {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]TierEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// MaxValue returns the largest tier value, or Unbounded for an empty set.
// The zero TierSet also reports Unbounded.
func (s TierSet) MaxValue() int {
	if len(s.entries) == 0 {
		return Unbounded
	}
	return s.max
}

// Bounded reports whether ratios against this set can be non-zero.
func (s TierSet) Bounded() bool {
	return len(s.entries) > 0 && s.max > 0
}

// Ratio returns v / MaxValue. It is 0 when the set is empty or its
// maximum is zero. v is not clamped: values above the maximum yield
// ratios above 1, negative values yield negative ratios.
func (s TierSet) Ratio(v int) float64 {
	if !s.Bounded() {
		return 0
	}
	return float64(v) / float64(s.max)
}
