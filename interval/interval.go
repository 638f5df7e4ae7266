package interval

import (
	"fmt"
	"math/bits"
)

// Interval is the half-open range [Start, End) over uint64.
// Start == End denotes an empty interval.
type Interval struct {
	Start uint64
	End   uint64
}

// New returns [start, end). It fails with ErrInverted if start > end.
func New(start, end uint64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: [%d, %d)", ErrInverted, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// FromLength returns [start, start+length).
// It fails with ErrOverflow when start+length exceeds math.MaxUint64.
func FromLength(start, length uint64) (Interval, error) {
	end, carry := bits.Add64(start, length, 0)
	if carry != 0 {
		return Interval{}, fmt.Errorf("%w: %d + %d", ErrOverflow, start, length)
	}

	return Interval{Start: start, End: end}, nil
}

// Len reports the number of values covered by iv.
func (iv Interval) Len() uint64 {
	if iv.End <= iv.Start {
		return 0
	}

	return iv.End - iv.Start
}

// Empty reports whether iv covers no values.
func (iv Interval) Empty() bool { return iv.Start >= iv.End }

// Contains reports whether v lies inside iv.
func (iv Interval) Contains(v uint64) bool { return iv.Start <= v && v < iv.End }

// String renders iv as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// Min returns the smallest Start among the non-empty intervals of ivs.
// ok is false when ivs holds no non-empty interval.
func Min(ivs []Interval) (lowest uint64, ok bool) {
	for _, iv := range ivs {
		if iv.Empty() {
			continue
		}
		if !ok || iv.Start < lowest {
			lowest, ok = iv.Start, true
		}
	}

	return lowest, ok
}

// TotalLen sums the lengths of ivs. Overlapping intervals are counted once
// per occurrence, so this is not the size of their union.
func TotalLen(ivs []Interval) uint64 {
	var total uint64
	for _, iv := range ivs {
		total += iv.Len()
	}

	return total
}
