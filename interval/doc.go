// Package interval provides the half-open numeric range used throughout
// rangemap: Interval{Start, End} covers every uint64 v with Start <= v < End.
//
// What is it for?
//
//	Stages and pipelines never enumerate individual values. They split,
//	shift and forward whole intervals, so the only primitive they need is a
//	cheap value type with bounds arithmetic that refuses to wrap around.
//
// Key properties:
//   - Value semantics: an Interval has no identity beyond its bounds and is
//     never mutated in place; every split produces fresh fragments.
//   - Empty intervals (Start == End) are legal values but carry no points.
//     Helpers such as Min and Normalize skip them.
//   - Construction from (start, length) checks for uint64 overflow and fails
//     with ErrOverflow instead of silently wrapping.
//
// Collections:
//
//	Mapping results are plain []Interval: unsorted, possibly overlapping.
//	Normalize turns such a collection into the canonical sorted, merged
//	tiling of its union (backed by github.com/b97tsk/rangeset). The core
//	mapping path never normalizes; Normalize exists for presentation and
//	for verifying coverage in tests.
//
// Errors (sentinel):
//   - ErrInverted — New called with start > end.
//   - ErrOverflow — start + length does not fit in uint64.
package interval
