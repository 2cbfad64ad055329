package maxcut_test

import (
	"fmt"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/maxcut"
)

// ExampleCutSize evaluates one labeling of the demo square.
func ExampleCutSize() {
	g := graph.Demo()
	a, _ := graph.Parse("0110")

	cut, _ := maxcut.CutSize(g, a)
	fmt.Printf("cut(%s) = %d\n", a, cut)
	// Output:
	// cut(0110) = 4
}

// ExampleSolve finds the exact optimum of the demo square by
// exhaustive enumeration.
func ExampleSolve() {
	res, _ := maxcut.Solve(graph.Demo())

	fmt.Println("Max-Cut value:", res.Value)
	for _, a := range res.Assignments {
		fmt.Println("partition:", a)
	}
	// Output:
	// Max-Cut value: 4
	// partition: 0110
	// partition: 1001
}
