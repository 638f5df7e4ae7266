// Package rangemap pushes numeric ranges through chains of remapping tables
// without ever visiting the values inside them.
//
// 🚀 What is rangemap?
//
//	Given seed ranges and an ordered list of maps, each map a set of disjoint
//	source→destination shifts, rangemap finds the lowest value reachable at
//	the end of the chain. Ranges are split against map rules and shifted as
//	whole intervals, so the cost follows the number of rules, not the width
//	of the ranges.
//
// Under the hood, everything is organized in small packages:
//
//	interval/ — the half-open [Start, End) value type, Min, Normalize
//	stage/    — one map: sorted rules, Map (interval splitting), Lookup
//	pipeline/ — ordered stages, Map/Trace/Lookup, Evaluate (min reduction, worker pool)
//	almanac/  — participle parser for the puzzle text, seed modes, pipeline builder
//	config/   — koanf settings: embedded defaults, YAML/TOML file, RANGEMAP_* env
//	logging/  — zerolog console setup
//	cmd/rangemap — cobra CLI: lowest, trace, version
//
// Quick example:
//
//	a, _ := almanac.ParseString(input)
//	p, _ := a.Pipeline()
//	starts, _ := a.Starts(almanac.ModeRanges)
//	lowest, err := p.Evaluate(starts, pipeline.WithWorkers(4))
//
//	go install github.com/katalvlaran/rangemap/cmd/rangemap@latest
package rangemap
