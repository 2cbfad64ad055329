// Package isingcut walks one combinatorial problem all the way down the
// stack: Max-Cut on a four-node square, solved classically, mapped to an
// Ising model, approximated by QAOA, and finally measured on real
// quantum hardware.
//
// 🚀 What is isingcut?
//
//	A compact, fully verified teaching pipeline that brings together:
//		• Core primitives: immutable graphs, assignments, bitstring enumeration
//		• Classical baseline: exhaustive Max-Cut with every optimum reported
//		• Ising mapping: couplings J=+1/2 per edge, energy ↔ cut identity
//		• Verification: brute force against brute force, bit for bit
//		• Quantum circuits: statevector simulation + OpenQASM 3 export
//		• QAOA: exact distributions, seeded sampling, (γ, β) grid sweeps
//		• Hardware: AWS Braket task submission, polling, result parsing
//
// ✨ Why choose isingcut?
//
//   - Everything checkable – the instance is small enough to enumerate,
//     so every quantum claim is verified against classical truth
//   - Deterministic – seeded sampling, canonical orderings, exact pins
//   - One report – simulator shots and QPU shots print identically
//   - Honest errors – sentinel per failure mode, wrapped with context
//
// Under the hood, everything is organized under eight subpackages:
//
//	graph/   — demo square, assignments, enumeration & parsing
//	maxcut/  — cut evaluator + exhaustive solver
//	ising/   — Hamiltonian construction & energy evaluation
//	verify/  — cut-vs-energy cross-check over the full spectrum
//	circuit/ — gates, statevector simulator, OpenQASM 3 export
//	qaoa/    — circuit builder, exact analysis, sampling, sweeps
//	braket/  — AWS Braket hardware runs: preflight, submit, poll, parse
//	cmd/     — the isingcut CLI tying every stage into one walkthrough
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	the demo square: cut it like a checkerboard (0110) and all four
//	edges cross, which is the maximum.
//
// Next up: deeper QAOA layers, angle optimization and beyond. Dive into
// the package docs for the conventions (spin mapping, basis ordering)
// everything else builds on.
//
//	go get github.com/katalvlaran/isingcut
package isingcut
