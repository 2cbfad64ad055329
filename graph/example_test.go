package graph_test

import (
	"fmt"

	"github.com/katalvlaran/isingcut/graph"
)

// ExampleDemo prints the fixed instance shared by every solver in the
// repository: the 4-node square.
func ExampleDemo() {
	g := graph.Demo()

	fmt.Println("order:", g.Order())
	fmt.Println("size:", g.Size())
	for _, e := range g.Edges() {
		fmt.Printf("(%d,%d)\n", e.U, e.V)
	}
	// Output:
	// order: 4
	// size: 4
	// (0,1)
	// (0,2)
	// (1,3)
	// (2,3)
}

// ExampleFromIndex walks the first few steps of the enumeration order
// used by all exhaustive passes.
func ExampleFromIndex() {
	for i := uint64(0); i < 4; i++ {
		fmt.Println(graph.FromIndex(4, i))
	}
	// Output:
	// 0000
	// 1000
	// 0100
	// 1100
}

// ExampleAssignment_Canonical shows bit-flip normalization collapsing
// the two labelings of one partition onto a single normal form.
func ExampleAssignment_Canonical() {
	a, _ := graph.Parse("1100")

	fmt.Println(a.Canonical())
	fmt.Println(a.Flip().Canonical())
	// Output:
	// 0011
	// 0011
}
