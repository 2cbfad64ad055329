// SPDX-License-Identifier: MIT
package qaoa

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/maxcut"
)

// Summarize ranks raw bitstring counts into the report both the
// simulator and the hardware runner print: the most frequent outcomes
// (at most TopOutcomes) with their cut values and frequencies, the
// shot-weighted mean cut, and the share of shots that landed on an
// exhaustively verified optimal partition. Rows sort by descending
// count, ties by bitstring, so the table is stable across runs.
//
// Counts may come from any source; malformed bitstrings surface the
// graph and maxcut sentinels unchanged.
func Summarize(g graph.Graph, counts Counts, shots int) (Summary, error) {
	if shots < 1 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrShots, shots)
	}
	solved, err := maxcut.Solve(g)
	if err != nil {
		return Summary{}, err
	}
	optimal := make(map[string]struct{}, len(solved.Assignments))
	for _, a := range solved.Assignments {
		optimal[a.String()] = struct{}{}
	}

	outcomes := make([]Outcome, 0, len(counts))
	cuts := make([]float64, 0, len(counts))
	weights := make([]float64, 0, len(counts))
	optimalShots := 0
	for bits, n := range counts {
		a, err := graph.Parse(bits)
		if err != nil {
			return Summary{}, err
		}
		cut, err := maxcut.CutSize(g, a)
		if err != nil {
			return Summary{}, err
		}
		outcomes = append(outcomes, Outcome{
			Bitstring:   bits,
			Count:       n,
			Cut:         cut,
			Probability: float64(n) / float64(shots),
		})
		cuts = append(cuts, float64(cut))
		weights = append(weights, float64(n))
		if _, ok := optimal[bits]; ok {
			optimalShots += n
		}
	}
	sort.Slice(outcomes, func(i, j int) bool {
		if outcomes[i].Count != outcomes[j].Count {
			return outcomes[i].Count > outcomes[j].Count
		}

		return outcomes[i].Bitstring < outcomes[j].Bitstring
	})
	if len(outcomes) > TopOutcomes {
		outcomes = outcomes[:TopOutcomes]
	}

	mean := 0.0
	if len(cuts) > 0 {
		mean = stat.Mean(cuts, weights)
	}

	return Summary{
		Shots:       shots,
		MaxCut:      solved.Value,
		Top:         outcomes,
		OptimalMass: float64(optimalShots) / float64(shots),
		SampleMean:  mean,
	}, nil
}
