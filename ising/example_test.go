package ising_test

import (
	"fmt"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
)

// ExampleFromGraph prints the Hamiltonian terms of the demo square:
// no local fields, one +1/2 coupling per edge.
func ExampleFromGraph() {
	g := graph.Demo()
	m := ising.FromGraph(g)

	fmt.Println("h:", m.H)
	for _, e := range g.Edges() {
		fmt.Printf("J[(%d,%d)] = %+.1f\n", e.U, e.V, m.J[e])
	}
	// Output:
	// h: [0 0 0 0]
	// J[(0,1)] = +0.5
	// J[(0,2)] = +0.5
	// J[(1,3)] = +0.5
	// J[(2,3)] = +0.5
}

// ExampleModel_Energy evaluates the ground state of the demo square:
// the checkerboard partition anti-aligns every edge.
func ExampleModel_Energy() {
	m := ising.FromGraph(graph.Demo())
	a, _ := graph.Parse("0110")

	e, _ := m.Energy(a)
	fmt.Printf("energy(%s) = %.1f\n", a, e)
	fmt.Printf("cut from energy = %.0f\n", ising.CutValue(e, m.EdgeCount()))
	// Output:
	// energy(0110) = -2.0
	// cut from energy = 4
}
