// SPDX-License-Identifier: MIT
// Package verify exhaustively checks that the Max-Cut → Ising mapping
// is correct for a concrete graph: the assignments maximizing the cut
// must be exactly the assignments minimizing the Ising energy, once
// each assignment is collapsed with its global bit-flip.
//
// What
//
//   - Mapping enumerates all 2^order assignments once, evaluating both
//     the cut (package maxcut) and the energy (package ising), and
//     reports the two extrema, bounded witness previews, total optimum
//     counts, distinct-partition counts, and the Match verdict.
//
// Why
//
//   - The mapping's sign convention is easy to invert silently; a wrong
//     sign still produces plausible numbers, just anti-correlated ones.
//     An exhaustive comparison on a small instance is the cheapest
//     proof the convention in use is the right one.
//
// This is a property check over static data, not an optimizer: it
// inherits the enumeration guard of package maxcut and refuses orders
// beyond maxcut.MaxBruteForceOrder with maxcut.ErrGraphTooLarge.
//
// Extremal-set comparison uses exact float equality, which is sound
// here because FromGraph energies are sums of ±1/2 terms: every
// partial sum is an exact binary fraction.
package verify
