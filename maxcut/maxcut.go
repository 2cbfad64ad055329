// SPDX-License-Identifier: MIT

package maxcut

import (
	"fmt"

	"github.com/katalvlaran/isingcut/graph"
)

// CutSize counts the edges of g whose endpoints carry different labels
// under a. An edge crosses the cut exactly when its endpoints lie in
// different partitions.
//
// Contract:
//   - a labels exactly g.Order() nodes with binary values, else
//     graph.ErrAssignmentLength / graph.ErrAssignmentValue.
//
// Complexity: O(|E|) time. Pure and deterministic.
func CutSize(g graph.Graph, a graph.Assignment) (int, error) {
	if err := a.Validate(g.Order()); err != nil {
		return 0, err
	}

	return cutOverEdges(g.Edges(), a), nil
}

// cutOverEdges is the shared core of CutSize and Solve: edges canonical,
// assignment already validated.
func cutOverEdges(edges []graph.Edge, a graph.Assignment) int {
	cut := 0
	for _, e := range edges {
		if a[e.U] != a[e.V] {
			cut++
		}
	}

	return cut
}

// Solve enumerates all 2^order assignments of g and returns the maximum
// cut value together with every assignment achieving it.
//
// Contract:
//   - g.Order() ≤ MaxBruteForceOrder, else ErrGraphTooLarge.
//   - Order 0 yields Value 0 with the single empty assignment.
//
// Complexity: O(2^order · (order + |E|)) time, exponential by nature;
// see the package documentation for the scale boundary.
func Solve(g graph.Graph) (Result, error) {
	order := g.Order()
	if order > MaxBruteForceOrder {
		return Result{}, fmt.Errorf("%w: order %d exceeds %d", ErrGraphTooLarge, order, MaxBruteForceOrder)
	}

	var (
		edges = g.Edges()
		best  Result
		total = uint64(1) << order
	)
	for i := uint64(0); i < total; i++ {
		a := graph.FromIndex(order, i)
		switch cut := cutOverEdges(edges, a); {
		case cut > best.Value:
			best.Value = cut
			best.Assignments = append(best.Assignments[:0], a)
		case cut == best.Value:
			best.Assignments = append(best.Assignments, a)
		}
	}

	return best, nil
}
