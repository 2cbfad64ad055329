// SPDX-License-Identifier: MIT
// Package verify: report type and tunables.

package verify

import "github.com/katalvlaran/isingcut/graph"

// WitnessLimit bounds the witness previews in a Report. The full
// extremal sets still drive the counts and the Match verdict; only the
// listings are truncated.
const WitnessLimit = 4

// Report is the outcome of one exhaustive mapping verification.
type Report struct {
	// MaxCut is the maximum cut value over all assignments.
	MaxCut int

	// MinEnergy is the minimum Ising energy over all assignments.
	MinEnergy float64

	// CutWitnesses previews assignments achieving MaxCut, in
	// enumeration order, at most WitnessLimit of them.
	CutWitnesses []graph.Assignment

	// EnergyWitnesses previews assignments achieving MinEnergy, in
	// enumeration order, at most WitnessLimit of them.
	EnergyWitnesses []graph.Assignment

	// CutOptima and EnergyOptima count ALL assignments achieving the
	// respective extremum (each partition is counted twice, once per
	// labeling).
	CutOptima    int
	EnergyOptima int

	// CutPartitions and EnergyPartitions count the distinct optimal
	// partitions after collapsing bit-flip pairs.
	CutPartitions    int
	EnergyPartitions int

	// Match reports whether the argmax-cut set equals the argmin-energy
	// set after bit-flip normalization: the mapping-correctness
	// verdict.
	Match bool
}
