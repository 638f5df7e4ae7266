package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/pipeline"
	"github.com/katalvlaran/rangemap/stage"
)

// referenceMaps holds the seven maps of the reference almanac as
// (destination, source, length) triples, in file order.
var referenceMaps = [][][3]uint64{
	// seed-to-soil
	{{50, 98, 2}, {52, 50, 48}},
	// soil-to-fertilizer
	{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}},
	// fertilizer-to-water
	{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}},
	// water-to-light
	{{88, 18, 7}, {18, 25, 70}},
	// light-to-temperature
	{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}},
	// temperature-to-humidity
	{{0, 69, 1}, {1, 0, 69}},
	// humidity-to-location
	{{60, 56, 37}, {56, 93, 4}},
}

// referenceSeeds are the seed pairs (79,14) and (55,13) as intervals.
var referenceSeeds = []interval.Interval{{Start: 79, End: 93}, {Start: 55, End: 68}}

// referencePipeline builds the seven-stage reference pipeline.
func referencePipeline(tb testing.TB) *pipeline.Pipeline {
	tb.Helper()

	stages := make([]*stage.Stage, 0, len(referenceMaps))
	for _, triples := range referenceMaps {
		rules := make([]stage.Rule, 0, len(triples))
		for _, t := range triples {
			rules = append(rules, stage.Rule{Destination: t[0], Source: t[1], Length: t[2]})
		}
		st, err := stage.New(rules, stage.WithStrict())
		require.NoError(tb, err)
		stages = append(stages, st)
	}

	p, err := pipeline.New(stages...)
	require.NoError(tb, err)

	return p
}
