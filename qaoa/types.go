// SPDX-License-Identifier: MIT
package qaoa

import "fmt"

// TopOutcomes caps the ranked outcome table in a Summary. Eight rows
// cover half the demo spectrum and keep terminal reports one screen
// tall.
const TopOutcomes = 8

// Params are the variational angles and depth of a QAOA circuit.
type Params struct {
	// Gamma is the phase-separation angle γ applied per edge.
	Gamma float64
	// Beta is the mixer angle β; each qubit receives RX(2β).
	Beta float64
	// Layers is the QAOA depth p. Must be at least 1.
	Layers int
}

// DefaultParams returns the teaching constants used throughout the
// package examples: γ=1.0, β=0.5 at depth 1. On the demo square these
// already concentrate about half the mass on the optimal partitions.
func DefaultParams() Params {
	return Params{Gamma: 1.0, Beta: 0.5, Layers: 1}
}

// validate checks the depth. Angle finiteness is enforced by the
// circuit layer, whose sentinel passes through unchanged.
func (p Params) validate() error {
	if p.Layers < 1 {
		return fmt.Errorf("%w: got %d", ErrLayers, p.Layers)
	}

	return nil
}

// Options control shot sampling.
type Options struct {
	// Shots is the number of simulated measurements. Must be at
	// least 1.
	Shots int
	// Seed initializes the PCG sampling source. Equal seeds reproduce
	// counts exactly; sweep combination i samples with Seed+i.
	Seed uint64
}

// DefaultOptions returns 1000 shots on seed 1.
func DefaultOptions() Options {
	return Options{Shots: 1000, Seed: 1}
}

func (o Options) validate() error {
	if o.Shots < 1 {
		return fmt.Errorf("%w: got %d", ErrShots, o.Shots)
	}

	return nil
}

// Counts maps measured bitstrings (node 0 leftmost) to how many shots
// produced them. Both the simulator and the hardware runner emit this
// shape, so one Summarize serves both.
type Counts map[string]int

// Outcome is one row of a ranked measurement table.
type Outcome struct {
	// Bitstring is the measured assignment, node 0 leftmost.
	Bitstring string
	// Count is how many shots produced the bitstring.
	Count int
	// Cut is the cut value of the assignment.
	Cut int
	// Probability is Count over the shot total.
	Probability float64
}

// Summary is the shot report shared by simulator and hardware runs.
type Summary struct {
	// Shots is the total the probabilities are normalized by.
	Shots int
	// MaxCut is the exhaustively verified optimum of the graph.
	MaxCut int
	// Top holds the most frequent outcomes, at most TopOutcomes rows,
	// ordered by descending count with ties broken by bitstring.
	Top []Outcome
	// OptimalMass is the fraction of shots that landed on an optimal
	// partition.
	OptimalMass float64
	// SampleMean is the shot-weighted mean cut value, the sampling
	// estimate of the exact expectation ExpectedCut computes.
	SampleMean float64
}

// SweepPoint is the result of one (γ, β) combination in a grid scan.
type SweepPoint struct {
	Gamma float64
	Beta  float64
	// Best is the modal bitstring of the combination, ties broken by
	// bitstring order.
	Best string
	// Count is how many shots produced Best.
	Count int
	// Cut is the cut value of Best.
	Cut int
}

// DefaultSweep returns the standard 3×3 teaching grid:
// γ ∈ {0.5, 1.0, 1.5} crossed with β ∈ {0.25, 0.5, 0.75}.
func DefaultSweep() (gammas, betas []float64) {
	return []float64{0.5, 1.0, 1.5}, []float64{0.25, 0.5, 0.75}
}
