package pipeline

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/stage"
)

// Pipeline is an ordered, immutable sequence of stages.
type Pipeline struct {
	stages []*stage.Stage
}

// New returns a pipeline applying stages in the given order.
// A pipeline with no stages maps every interval to itself.
func New(stages ...*stage.Stage) (*Pipeline, error) {
	for i, st := range stages {
		if st == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilStage, i)
		}
	}

	return &Pipeline{stages: slices.Clone(stages)}, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns the stages in application order.
func (p *Pipeline) Stages() []*stage.Stage { return slices.Clone(p.stages) }

// Map folds iv through every stage and returns the final fragments,
// unsorted and possibly overlapping.
func (p *Pipeline) Map(iv interval.Interval) []interval.Interval {
	acc := []interval.Interval{iv}
	for _, st := range p.stages {
		acc = st.Map(acc)
	}

	return acc
}

// Trace is Map that also keeps the collection produced by each stage:
// out[i] is the output of stage i, so out[len-1] equals Map(iv).
func (p *Pipeline) Trace(iv interval.Interval) [][]interval.Interval {
	out := make([][]interval.Interval, 0, len(p.stages))
	acc := []interval.Interval{iv}
	for _, st := range p.stages {
		acc = st.Map(acc)
		out = append(out, acc)
	}

	return out
}

// Lookup maps a single value through every stage.
func (p *Pipeline) Lookup(v uint64) uint64 {
	for _, st := range p.stages {
		v = st.Lookup(v)
	}

	return v
}
