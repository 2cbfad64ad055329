// SPDX-License-Identifier: MIT
package qaoa

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/isingcut/graph"
)

// Sample draws o.Shots measurements from the exact QAOA distribution
// and tallies them per bitstring. Draws come from a categorical
// distribution over the statevector probabilities, running on a PCG
// source seeded from o.Seed: equal inputs reproduce equal counts.
func Sample(g graph.Graph, p Params, o Options) (Counts, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	probs, err := Probabilities(g, p)
	if err != nil {
		return nil, err
	}

	dist := distuv.NewCategorical(probs, rand.NewPCG(o.Seed, o.Seed))
	counts := make(Counts)
	for shot := 0; shot < o.Shots; shot++ {
		k := uint64(dist.Rand())
		counts[graph.FromIndex(g.Order(), k).String()]++
	}

	return counts, nil
}

// Run is Sample followed by Summarize: one call from a graph and
// angles to the ranked shot report.
func Run(g graph.Graph, p Params, o Options) (Summary, error) {
	counts, err := Sample(g, p, o)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(g, counts, o.Shots)
}
