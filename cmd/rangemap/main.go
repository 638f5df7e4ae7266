// Command rangemap reads an almanac and reports the lowest location
// reachable from its seeds.
//
// Usage:
//
//	rangemap lowest input.txt              # seed ranges
//	rangemap lowest --mode seeds input.txt # single seeds
//	rangemap trace --format yaml input.txt
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("rangemap failed")
		os.Exit(1)
	}
}
