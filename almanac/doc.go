// Package almanac reads the puzzle text that feeds a remapping pipeline and
// turns it into starting intervals and stages.
//
// Input format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each map line is "destination source length". Maps must chain: the
// category a map ends in is the category the next one starts from.
//
// The grammar is a participle parser (github.com/alecthomas/participle/v2)
// over a small lexer of integers, identifiers and the "-" ":" punctuation.
// Whitespace, including blank lines, is insignificant.
//
// Seeds are read in one of two modes:
//   - ModeRanges — consecutive pairs (start, length) are intervals.
//   - ModeSeeds  — every number is a single seed, i.e. a length-1 interval.
//
// Both modes are evaluated by the same interval pipeline.
package almanac
