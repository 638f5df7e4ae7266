package interval_test

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
)

// ExampleFromLength builds the interval described by a (start, length) seed pair.
func ExampleFromLength() {
	iv, err := interval.FromLength(55, 13)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(iv, iv.Len())
	// Output: [55, 68) 13
}

// ExampleNormalize collapses overlapping fragments into their union.
func ExampleNormalize() {
	fragments := []interval.Interval{{Start: 60, End: 61}, {Start: 46, End: 56}, {Start: 56, End: 60}}
	fmt.Println(interval.Normalize(fragments))
	// Output: [[46, 61)]
}
