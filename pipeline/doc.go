// Package pipeline chains stages and reduces a set of starting intervals to
// the lowest value reachable after the last stage.
//
// Overview:
//
//	A Pipeline is an ordered, fixed list of *stage.Stage. Stage i's output is
//	stage i+1's input. Evaluate folds each starting interval (as a singleton
//	collection) through every stage with stage.Map, takes the minimum lower
//	bound of the final fragments, and returns the minimum over all starting
//	intervals.
//
//	Nothing is ever enumerated value by value, so cost grows with the number
//	of rules and fragments, not with the width of the seed ranges. Lookup
//	offers the per-value path for single seeds and for cross-checking.
//
// Concurrency:
//
//	Stages are read-only and each starting interval is independent, so
//	WithWorkers(n) evaluates them on n goroutines; min is associative and
//	commutative, so the answer does not depend on scheduling. The default is
//	one worker, which is the sequential reference behavior.
//
// Options:
//   - WithWorkers(n) — size of the worker pool (n >= 1, default 1).
//   - WithContext(ctx) — checked between starting intervals; Evaluate returns
//     ctx.Err() once cancelled.
//   - WithLogger(l) — zerolog logger receiving one debug event per starting
//     interval; zerolog.Nop() by default.
//
// Errors (sentinel):
//   - ErrNilStage     — New was given a nil stage.
//   - ErrNoIntervals  — Evaluate was called with no starting intervals.
//   - ErrNoValue      — every starting interval was empty, nothing is reachable.
//   - ErrBadWorkers   — WithWorkers was given n < 1.
//
// Example:
//
//	p, err := pipeline.New(seedToSoil, soilToFertilizer /* ... */)
//	if err != nil {
//	    return err
//	}
//	lowest, err := p.Evaluate(seedRanges, pipeline.WithWorkers(runtime.NumCPU()))
package pipeline
