// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/isingcut/graph"
)

// Energy evaluates the Hamiltonian on one assignment: bits become spins
// via the fixed convention (label 0 → +1, label 1 → −1), then
//
//	energy = Σ_i H[i]·s_i + Σ_{(i,j)∈J} J[(i,j)]·s_i·s_j.
//
// Contract:
//   - a labels exactly len(H) nodes with binary values, else
//     graph.ErrAssignmentLength / graph.ErrAssignmentValue.
//   - every J key is a canonical in-range edge, else ErrCouplingKey.
//
// Coupling terms are accumulated in sorted canonical edge order, so
// evaluating the same assignment twice returns bit-identical results
// regardless of map iteration order.
//
// Complexity: O(N + |E| log |E|) time. Pure and deterministic.
func (m Model) Energy(a graph.Assignment) (float64, error) {
	order := len(m.H)
	if err := a.Validate(order); err != nil {
		return 0, err
	}

	spins := make([]float64, order)
	for i, v := range a {
		spins[i] = 1 - 2*float64(v)
	}

	energy := 0.0
	for i, h := range m.H {
		energy += h * spins[i]
	}

	terms := make([]graph.Edge, 0, len(m.J))
	for e := range m.J {
		if e.U < 0 || e.U >= e.V || e.V >= order {
			return 0, fmt.Errorf("%w: (%d,%d) with order %d", ErrCouplingKey, e.U, e.V, order)
		}
		terms = append(terms, e)
	}
	sort.Slice(terms, func(x, y int) bool {
		if terms[x].U != terms[y].U {
			return terms[x].U < terms[y].U
		}

		return terms[x].V < terms[y].V
	})
	for _, e := range terms {
		energy += m.J[e] * spins[e.U] * spins[e.V]
	}

	return energy, nil
}

// CutValue recovers a cut size from an Ising energy via the identity
// C = |E|/2 − E, exact for FromGraph models: each crossing edge
// contributes −EdgeCoupling to the energy and each internal edge
// +EdgeCoupling, so energy = (|E| − 2C)/2.
func CutValue(energy float64, edgeCount int) float64 {
	return float64(edgeCount)/2 - energy
}
