// SPDX-License-Identifier: MIT
package qaoa

import (
	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/maxcut"
)

// Sweep samples every (γ, β) combination of the given grids at depth
// 1 and reports each combination's modal bitstring. Points come back
// in row-major order with γ as the outer axis. Combination i samples
// with seed o.Seed+i, so the whole grid is reproducible while the
// points stay statistically independent.
func Sweep(g graph.Graph, gammas, betas []float64, o Options) ([]SweepPoint, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}

	points := make([]SweepPoint, 0, len(gammas)*len(betas))
	combo := uint64(0)
	for _, gamma := range gammas {
		for _, beta := range betas {
			counts, err := Sample(g,
				Params{Gamma: gamma, Beta: beta, Layers: 1},
				Options{Shots: o.Shots, Seed: o.Seed + combo})
			combo++
			if err != nil {
				return nil, err
			}

			best, count := modal(counts)
			a, err := graph.Parse(best)
			if err != nil {
				return nil, err
			}
			cut, err := maxcut.CutSize(g, a)
			if err != nil {
				return nil, err
			}
			points = append(points, SweepPoint{Gamma: gamma, Beta: beta, Best: best, Count: count, Cut: cut})
		}
	}

	return points, nil
}

// modal returns the most frequent bitstring of a tally, ties broken
// toward the smaller bitstring so results do not depend on map order.
func modal(counts Counts) (string, int) {
	best, bestN := "", -1
	for bits, n := range counts {
		if n > bestN || (n == bestN && bits < best) {
			best, bestN = bits, n
		}
	}

	return best, bestN
}
