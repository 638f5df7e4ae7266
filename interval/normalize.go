package interval

import "github.com/b97tsk/rangeset"

// Normalize returns the union of ivs as a sorted slice of disjoint,
// non-adjacent, non-empty intervals. The input is left untouched.
//
// Complexity: O(n log n) for n input intervals.
func Normalize(ivs []Interval) []Interval {
	var set rangeset.RangeSet[uint64]
	for _, iv := range ivs {
		// AddRange ignores empty ranges.
		set.AddRange(iv.Start, iv.End)
	}

	out := make([]Interval, 0, len(set))
	for _, r := range set {
		out = append(out, Interval{Start: r.Low, End: r.High})
	}

	return out
}
