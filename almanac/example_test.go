package almanac_test

import (
	"fmt"

	"github.com/katalvlaran/rangemap/almanac"
)

// ExampleParseString parses a two-map almanac and evaluates both seed modes.
func ExampleParseString() {
	a, err := almanac.ParseString(`seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := a.Pipeline()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, mode := range []almanac.Mode{almanac.ModeSeeds, almanac.ModeRanges} {
		starts, _ := a.Starts(mode)
		lowest, _ := p.Evaluate(starts)
		fmt.Printf("%s: %d\n", mode, lowest)
	}
	// Output:
	// seeds: 52
	// ranges: 57
}
