package stage_test

import (
	"fmt"

	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/stage"
)

// ExampleStage_Map splits one interval against the seed-to-soil rules.
func ExampleStage_Map() {
	st, err := stage.New([]stage.Rule{
		{Source: 98, Destination: 50, Length: 2},
		{Source: 50, Destination: 52, Length: 48},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(st.Map([]interval.Interval{{Start: 79, End: 93}}))
	fmt.Println(st.Map([]interval.Interval{{Start: 96, End: 102}}))
	// Output:
	// [[81, 95)]
	// [[98, 100) [50, 52) [100, 102)]
}

// ExampleStage_Lookup maps single seeds.
func ExampleStage_Lookup() {
	st, _ := stage.New([]stage.Rule{
		{Source: 98, Destination: 50, Length: 2},
		{Source: 50, Destination: 52, Length: 48},
	})
	fmt.Println(st.Lookup(79), st.Lookup(14), st.Lookup(99))
	// Output: 81 14 51
}
