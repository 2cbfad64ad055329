// SPDX-License-Identifier: MIT
// Package ising maps Max-Cut instances onto Ising Hamiltonians and
// evaluates their energy, so that minimizing energy is exactly
// maximizing the cut.
//
// What
//
//   - FromGraph: build the Hamiltonian terms (h, J) of a graph.
//   - Model.Energy: evaluate one assignment's energy.
//   - CutValue: recover a cut size from an energy via the identity
//     C = |E|/2 − E.
//
// The mapping
//
//	Assign each node i a spin Z_i ∈ {+1,−1}; an edge (i,j) crosses the
//	cut exactly when its spins anti-align, so the cut size is
//
//	    C = Σ_{(i,j)∈E} (1 − Z_i·Z_j) / 2.
//
//	Define the Hamiltonian as H = −C up to an additive constant:
//
//	    H = −|E|/2 + (1/2) Σ_{(i,j)∈E} Z_i·Z_j.
//
//	Dropping the constant leaves h[i] = 0 for every node and
//	J[(i,j)] = +1/2 for every edge. Anti-aligned spins contribute −0.5
//	per edge, so the minimum-energy spin configurations are precisely
//	the maximum-cut partitions. This sign convention is the single one
//	used everywhere in the repository; pairing these couplings with an
//	evaluator assuming H = +C would silently invert correctness, which
//	is why Energy lives next to FromGraph in this package.
//
// Spin convention
//
//	Label 0 → spin +1, label 1 → spin −1, fixed across every component.
//	With h ≡ 0 the Hamiltonian contains only pairwise terms, so energy
//	is invariant under the global flip, mirroring the cut's symmetry.
//
// Complexity
//
//   - FromGraph:    O(N + |E|).
//   - Model.Energy: O(N + |E| log |E|); coupling terms are accumulated
//     in sorted canonical edge order so repeated evaluation of the same
//     assignment is bit-identical.
//
// Errors
//
//   - graph.ErrAssignmentLength / graph.ErrAssignmentValue on a
//     malformed assignment.
//   - ErrCouplingKey on a hand-built model whose J contains a
//     non-canonical or out-of-range key.
package ising
