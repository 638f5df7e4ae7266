package pipeline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rangemap/interval"
)

// outcome is the per-interval minimum; ok is false for empty intervals.
type outcome struct {
	lowest uint64
	ok     bool
}

// merge keeps the smaller of two outcomes.
func (o outcome) merge(other outcome) outcome {
	switch {
	case !other.ok:
		return o
	case !o.ok || other.lowest < o.lowest:
		return other
	default:
		return o
	}
}

// Evaluate returns the lowest value reachable from any of starts after all
// stages.
//
// Steps:
//  1. Apply options; reject an empty starts (ErrNoIntervals) and a worker
//     count below one (ErrBadWorkers).
//  2. For each starting interval, fold it through the stages and take the
//     minimum Start of the resulting fragments.
//  3. Reduce those minima with min. If no interval produced a value,
//     return ErrNoValue.
//
// Cancellation is observed between starting intervals. The result does not
// depend on the number of workers.
func (p *Pipeline) Evaluate(starts []interval.Interval, opts ...Option) (uint64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	if len(starts) == 0 {
		return 0, ErrNoIntervals
	}
	if cfg.Workers < 1 {
		return 0, ErrBadWorkers
	}

	var (
		best outcome
		err  error
	)
	if cfg.Workers == 1 || len(starts) == 1 {
		best, err = p.evaluateSequential(starts, cfg)
	} else {
		best, err = p.evaluateConcurrent(starts, cfg)
	}
	if err != nil {
		return 0, err
	}
	if !best.ok {
		return 0, ErrNoValue
	}

	cfg.Logger.Debug().
		Int("intervals", len(starts)).
		Int("stages", len(p.stages)).
		Int("workers", cfg.Workers).
		Uint64("lowest", best.lowest).
		Msg("pipeline evaluated")

	return best.lowest, nil
}

// evaluateOne folds a single starting interval and logs the result.
func (p *Pipeline) evaluateOne(idx int, iv interval.Interval, log zerolog.Logger) outcome {
	fragments := p.Map(iv)
	lowest, ok := interval.Min(fragments)

	log.Debug().
		Int("index", idx).
		Stringer("start", iv).
		Int("fragments", len(fragments)).
		Bool("reachable", ok).
		Uint64("lowest", lowest).
		Msg("starting interval evaluated")

	return outcome{lowest: lowest, ok: ok}
}

// evaluateSequential is the reference path: one interval after another.
func (p *Pipeline) evaluateSequential(starts []interval.Interval, cfg Options) (outcome, error) {
	var best outcome
	for i, iv := range starts {
		if err := cfg.Ctx.Err(); err != nil {
			return outcome{}, err
		}
		best = best.merge(p.evaluateOne(i, iv, cfg.Logger))
	}

	return best, nil
}

// evaluateConcurrent fans starting intervals out to a fixed pool. Each worker
// reduces into its own slot, so the only synchronization is the job channel
// and the final Wait.
func (p *Pipeline) evaluateConcurrent(starts []interval.Interval, cfg Options) (outcome, error) {
	workers := min(cfg.Workers, len(starts))
	jobs := make(chan int, workers*2)
	partial := make([]outcome, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(slot int) {
			defer wg.Done()
			for i := range jobs {
				// Keep draining after cancellation so the producer never blocks.
				if cfg.Ctx.Err() != nil {
					continue
				}
				partial[slot] = partial[slot].merge(p.evaluateOne(i, starts[i], cfg.Logger))
			}
		}(w)
	}

feed:
	for i := range starts {
		select {
		case jobs <- i:
		case <-cfg.Ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := cfg.Ctx.Err(); err != nil {
		return outcome{}, err
	}

	var best outcome
	for _, o := range partial {
		best = best.merge(o)
	}

	return best, nil
}
