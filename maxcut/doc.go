// SPDX-License-Identifier: MIT
// Package maxcut evaluates and exhaustively solves the Max-Cut problem:
// partition the nodes of an undirected graph into two sets so that the
// number of edges crossing between the sets is maximized.
//
// What
//
//   - CutSize: count the crossing edges of one assignment. O(|E|).
//   - Solve: enumerate all 2^order assignments and return the maximum
//     cut together with every assignment achieving it.
//
// Why
//
//   - The exact optimum of a small instance is the ground truth the
//     Ising mapping (package ising), its verification (package verify)
//     and the QAOA runs (package qaoa) are all measured against.
//
// Scale boundary
//
//	Enumeration is exponential: 2^order assignments. Solve refuses
//	orders above MaxBruteForceOrder (20, about a million assignments)
//	with ErrGraphTooLarge rather than silently hanging. This is a
//	validation tool for small instances, not an optimizer that scales.
//
// Complexity
//
//   - CutSize: O(|E|) time.
//   - Solve:   O(2^order · (order + |E|)) time, O(order) memory per
//     retained witness.
//
// Errors
//
//   - graph.ErrAssignmentLength / graph.ErrAssignmentValue from CutSize
//     on a malformed assignment.
//   - ErrGraphTooLarge from Solve beyond the enumeration guard.
//
// Deterministic and print-free: results come back as values, never as
// output.
package maxcut
