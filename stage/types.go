package stage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

var (
	// ErrOverflow indicates a rule whose source or destination range does not fit in uint64.
	ErrOverflow = errors.New("stage: rule range overflows uint64")

	// ErrOverlappingRules indicates two rules whose source ranges intersect.
	// Only reported when the stage is built with WithStrict().
	ErrOverlappingRules = errors.New("stage: rules overlap in source range")
)

// Rule shifts the source range [Source, Source+Length) onto
// [Destination, Destination+Length).
type Rule struct {
	Source      uint64
	Destination uint64
	Length      uint64
}

// SourceInterval returns [Source, Source+Length).
// The caller must have validated the rule; New does.
func (r Rule) SourceInterval() interval.Interval {
	return interval.Interval{Start: r.Source, End: r.Source + r.Length}
}

// DestinationInterval returns [Destination, Destination+Length).
func (r Rule) DestinationInterval() interval.Interval {
	return interval.Interval{Start: r.Destination, End: r.Destination + r.Length}
}

// String renders the rule in source→destination form.
func (r Rule) String() string {
	return fmt.Sprintf("%s→%d", r.SourceInterval(), r.Destination)
}

// validate rejects rules whose upper bounds wrap around.
func (r Rule) validate() error {
	if _, err := interval.FromLength(r.Source, r.Length); err != nil {
		return fmt.Errorf("%w: source of rule (%d, %d, %d)", ErrOverflow, r.Source, r.Destination, r.Length)
	}
	if _, err := interval.FromLength(r.Destination, r.Length); err != nil {
		return fmt.Errorf("%w: destination of rule (%d, %d, %d)", ErrOverflow, r.Source, r.Destination, r.Length)
	}

	return nil
}

// Options configures stage construction.
//
//   - Name   — label used in logs and traces; empty by default.
//   - Strict — verify that source ranges are pairwise disjoint.
type Options struct {
	Name   string
	Strict bool
}

// Option is a functional option for New.
type Option func(*Options)

// WithName labels the stage, e.g. "seed-soil".
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithStrict makes New reject overlapping rules with ErrOverlappingRules
// instead of leaving the overlap undefined.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// DefaultOptions returns an unnamed, non-strict configuration.
func DefaultOptions() Options {
	return Options{}
}
