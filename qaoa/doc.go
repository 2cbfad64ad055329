// SPDX-License-Identifier: MIT
// Package qaoa prepares, simulates, and samples depth-p QAOA circuits
// for the Max-Cut cost Hamiltonian of a graph.
//
// What
//
// The Quantum Approximate Optimization Algorithm encodes Max-Cut as a
// phase-separation step exp(−iγC) alternated with a transverse-field
// mixer exp(−iβΣX). This package provides:
//
//   - Build: the circuit itself (Hadamard wall, then per layer a
//     CNOT·RZ·CNOT block per edge and an RX mixer per qubit).
//   - Probabilities / ExpectedCut: exact, noise-free analysis of the
//     prepared state via package circuit.
//   - Sample / Run: seeded categorical shot sampling over the exact
//     distribution, plus report assembly.
//   - Sweep: a small (γ, β) grid scan reporting the modal bitstring
//     of each combination.
//   - Summarize: turns raw bitstring counts into a ranked outcome
//     table. Simulator and hardware runs share this one code path, so
//     their reports are comparable line for line.
//
// Why it works on the demo square
//
// At the default angles (γ=1.0, β=0.5) a single layer already places
// roughly half the probability mass on the two optimal partitions of
// graph.Demo, against 1/8 for uniform guessing. The angles are fixed
// teaching constants; there is no classical optimizer loop here.
//
// Conventions
//
// Basis index k of a probability vector is the enumeration index of
// the measured assignment (qubit q in bit q of k), so results line up
// with graph.FromIndex and the exhaustive solver without re-indexing.
// Sampling uses gonum's categorical distribution over a PCG source:
// equal seeds give equal counts, and sweep combinations derive their
// seeds from Options.Seed plus the combination index.
//
// Complexity
//
//   - Build: O(p·(V+E)) gates.
//   - Probabilities: O(p·(V+E)·2^V) time, O(2^V) memory.
//   - Sample: O(2^V + shots·log(2^V)).
//
// Errors
//
//   - ErrLayers, ErrShots for parameter violations here.
//   - circuit.ErrTooManyQubits, circuit.ErrAngleNotFinite and the
//     graph sentinels pass through from the layers below.
//
// Deterministic given (graph, params, options); print-free.
package qaoa
