// SPDX-License-Identifier: MIT
package qaoa

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/maxcut"
)

// Probabilities returns the exact measurement distribution of the
// prepared QAOA state. Entry k is the probability of measuring the
// assignment with enumeration index k, so the vector lines up with
// graph.FromIndex without re-indexing.
func Probabilities(g graph.Graph, p Params) ([]float64, error) {
	c, err := Build(g, p)
	if err != nil {
		return nil, err
	}
	state, err := c.Simulate()
	if err != nil {
		return nil, err
	}

	return state.Probabilities(), nil
}

// ExpectedCut returns ⟨C⟩, the cut value averaged over the exact
// distribution. The uniform superposition scores exactly half the
// edge count; useful angles push the demo square well above that.
func ExpectedCut(g graph.Graph, p Params) (float64, error) {
	probs, err := Probabilities(g, p)
	if err != nil {
		return 0, err
	}

	cuts := make([]float64, len(probs))
	for k := range cuts {
		cut, err := maxcut.CutSize(g, graph.FromIndex(g.Order(), uint64(k)))
		if err != nil {
			return 0, err
		}
		cuts[k] = float64(cut)
	}

	return stat.Mean(cuts, probs), nil
}
