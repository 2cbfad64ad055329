// SPDX-License-Identifier: MIT
// Package ising: model type, mapping constructor, sentinel errors.

package ising

import (
	"errors"

	"github.com/katalvlaran/isingcut/graph"
)

// EdgeCoupling is the coupling coefficient FromGraph assigns to every
// edge: +1/2, the algebraic residue of H = −C after the constant term
// is dropped.
const EdgeCoupling = 0.5

// ErrCouplingKey is returned by Energy when a model's J contains a key
// that is not a canonical in-range edge (U < V, both valid node
// indices). FromGraph models never trigger it; hand-built ones can.
var ErrCouplingKey = errors.New("ising: coupling key must be a canonical in-range edge")

// Model is an Ising Hamiltonian over the spins of a graph's nodes:
//
//	H(s) = Σ_i H[i]·s_i + Σ_{(i,j)} J[(i,j)]·s_i·s_j,  s ∈ {+1,−1}^N.
//
// Build one with FromGraph and treat both fields as read-only
// afterwards; Energy assumes they do not change between calls.
type Model struct {
	// H holds the local-field coefficient of each node (index = node).
	// Max-Cut introduces no bias toward either partition, so FromGraph
	// leaves every entry zero.
	H []float64

	// J holds one coupling coefficient per canonical edge (U < V). For
	// a FromGraph model the key set equals the graph's edge set exactly
	// and every value is EdgeCoupling.
	J map[graph.Edge]float64
}

// FromGraph maps a Max-Cut instance onto its Ising Hamiltonian:
// h ≡ 0 and J[(i,j)] = EdgeCoupling for every canonical edge. See the
// package documentation for the derivation and the sign convention.
//
// Complexity: O(N + |E|). Pure and deterministic.
func FromGraph(g graph.Graph) Model {
	j := make(map[graph.Edge]float64, g.Size())
	for _, e := range g.Edges() {
		j[e] = EdgeCoupling
	}

	return Model{
		H: make([]float64, g.Order()),
		J: j,
	}
}

// EdgeCount returns the number of coupling terms.
func (m Model) EdgeCount() int { return len(m.J) }
