// Package stage implements one step of a remapping pipeline: an immutable,
// sorted set of disjoint source→destination interval shifts.
//
// Overview:
//
//   - A Rule (Source, Destination, Length) maps Source+k ↦ Destination+k for
//     every k in [0, Length). Values outside every rule map to themselves.
//   - New copies the rules, drops zero-length ones and sorts the rest by
//     Source once. The Stage is read-only afterwards and safe to share
//     between goroutines.
//   - Map pushes a whole collection of intervals through the stage in one
//     pass, splitting each interval against the rules instead of visiting
//     individual values.
//
// The splitting fold:
//
//	For each rule [rs, rs+len), in ascending rs order, every pending interval
//	i is cut into three fragments:
//
//	    [i.Start                                            i.End)
//	                  [rs                  rs+len)
//	    [  before    )[       matched      )[      after       )
//
//	matched is shifted by (Destination − rs) and emitted; it is never seen
//	again by this stage. before and after go back to the pending set and are
//	tried against the next rule. Because rules are sorted and disjoint, a
//	fragment left of the current rule can only meet rules with a larger rs,
//	so forwarding terminates. Whatever is still pending after the last rule
//	is emitted unchanged (identity).
//
// Preconditions:
//
//   - Rules of one stage must not overlap in source range. This is not
//     checked unless WithStrict() is given; violating it yields
//     implementation-defined output.
//
// Complexity:
//
//   - New:    O(R log R) for R rules.
//   - Map:    O(R · F) where F is the number of live fragments; near-linear
//     in practice since each rule splits an interval into at most
//     three pieces and only two of them stay pending.
//   - Lookup: O(log R).
//
// Errors (sentinel):
//   - ErrOverflow          — Source+Length or Destination+Length exceeds uint64.
//   - ErrOverlappingRules  — two rules share source values (WithStrict only).
package stage
