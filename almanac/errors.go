package almanac

import "errors"

var (
	// ErrSyntax wraps participle errors for malformed input.
	ErrSyntax = errors.New("almanac: syntax error")
	// ErrNoMaps indicates input without a single map section.
	ErrNoMaps = errors.New("almanac: no maps")
	// ErrBrokenChain indicates a map that does not start where the previous one ended.
	ErrBrokenChain = errors.New("almanac: maps do not chain")
	// ErrOddSeeds indicates an odd number of seeds in ModeRanges.
	ErrOddSeeds = errors.New("almanac: seed ranges need an even number of values")
	// ErrUnknownMode indicates a seed mode other than ModeRanges or ModeSeeds.
	ErrUnknownMode = errors.New("almanac: unknown seed mode")
)
