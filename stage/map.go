package stage

import "github.com/katalvlaran/rangemap/interval"

// Map returns the image of in under the stage.
//
// Input intervals may be unsorted or overlapping; empty ones are ignored.
// The output holds every matched fragment, shifted into destination space,
// followed by the fragments no rule touched. It is neither sorted nor
// merged. in is never modified.
func (s *Stage) Map(in []interval.Interval) []interval.Interval {
	pending := make([]interval.Interval, 0, len(in))
	for _, iv := range in {
		if !iv.Empty() {
			pending = append(pending, iv)
		}
	}

	// Worst case every pending interval contributes one matched fragment.
	out := make([]interval.Interval, 0, 2*len(pending))

	for _, r := range s.rules {
		if len(pending) == 0 {
			break
		}
		lo, hi := r.Source, r.Source+r.Length

		// before + after per pending interval at most.
		next := make([]interval.Interval, 0, 2*len(pending))
		for _, iv := range pending {
			before := interval.Interval{Start: iv.Start, End: min(iv.End, lo)}
			matched := interval.Interval{Start: max(iv.Start, lo), End: min(iv.End, hi)}
			after := interval.Interval{Start: max(iv.Start, hi), End: iv.End}

			if !before.Empty() {
				next = append(next, before)
			}
			if !matched.Empty() {
				out = append(out, interval.Interval{
					Start: r.Destination + (matched.Start - lo),
					End:   r.Destination + (matched.End - lo),
				})
			}
			if !after.Empty() {
				next = append(next, after)
			}
		}
		pending = next
	}

	// Untouched by every rule: identity.
	return append(out, pending...)
}
