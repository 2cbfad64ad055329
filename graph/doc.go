// SPDX-License-Identifier: MIT
// Package graph defines the immutable value types every solver in this
// repository shares: an undirected Graph over integer node indices, a
// binary Assignment labeling its nodes, and the fixed demonstration
// instance returned by Demo.
//
// What
//
//   - Graph: node count plus canonical undirected edge list (smaller
//     index first, no self-loops, duplicates collapsed). Constructed
//     once via New and never mutated; accessors return copies.
//   - Assignment: one {0,1} label per node, a 2-coloring naming which
//     side of the cut each node is on. Conversions to and from the
//     enumeration index (bit j = node j, node 0 in the least
//     significant bit) and the bitstring form "0011" (node 0 leftmost,
//     the rendering measured bitstrings arrive in).
//   - Canonical: the normal form of an assignment under global bit-flip
//     symmetry. An assignment and its flip name the same partition;
//     Canonical picks the lexicographically smaller of the two so
//     partition sets can be compared as plain sets.
//
// Why
//
//   - Every solver (brute force, Ising energy, QAOA sampling, hardware
//     runs) must agree on one problem instance and one labeling
//     convention, or results silently stop being comparable.
//   - An explicit value passed to every function replaces module-level
//     constants: constructed at program start, read-only afterwards.
//
// Errors
//
//   - ErrNegativeOrder     if a Graph is requested with order < 0.
//   - ErrEdgeRange         if an edge endpoint is outside 0..order-1.
//   - ErrSelfLoop          if an edge joins a node to itself.
//   - ErrAssignmentLength  if an assignment labels the wrong node count.
//   - ErrAssignmentValue   if a label (or parsed symbol) is not 0 or 1.
//
// All operations are pure and deterministic; nothing here allocates
// beyond the returned values, locks, or touches global state.
package graph
