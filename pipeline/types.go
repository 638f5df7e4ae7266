package pipeline

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the pipeline package.
var (
	// ErrNilStage indicates a nil *stage.Stage passed to New.
	ErrNilStage = errors.New("pipeline: stage is nil")

	// ErrNoIntervals indicates that Evaluate received no starting intervals;
	// there is no minimum to report.
	ErrNoIntervals = errors.New("pipeline: no starting intervals")

	// ErrNoValue indicates that every starting interval was empty.
	ErrNoValue = errors.New("pipeline: starting intervals cover no values")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("pipeline: workers must be at least 1")
)

// Options configures Evaluate.
//
//   - Ctx     — cancellation; context.Background() by default.
//   - Workers — goroutines evaluating starting intervals; 1 by default.
//   - Logger  — debug sink; zerolog.Nop() by default.
type Options struct {
	Ctx     context.Context
	Workers int
	Logger  zerolog.Logger
}

// Option is a functional option for Evaluate.
type Option func(*Options)

// WithContext sets the context checked between starting intervals.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithWorkers sets the number of goroutines used by Evaluate.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger routes per-interval debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the sequential, silent, never-cancelled configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  zerolog.Nop(),
	}
}
