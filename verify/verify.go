// SPDX-License-Identifier: MIT

package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/ising"
	"github.com/katalvlaran/isingcut/maxcut"
)

// Mapping enumerates all 2^order assignments of g, evaluates cut size
// and Ising energy for each, and reports whether the two extremal sets
// coincide under bit-flip normalization.
//
// Contract:
//   - g.Order() ≤ maxcut.MaxBruteForceOrder, else
//     maxcut.ErrGraphTooLarge.
//
// Complexity: O(2^order · (order + |E| log |E|)) time, one exhaustive
// pass sharing the enumeration order of maxcut.Solve.
func Mapping(g graph.Graph) (Report, error) {
	order := g.Order()
	if order > maxcut.MaxBruteForceOrder {
		return Report{}, fmt.Errorf("%w: order %d exceeds %d", maxcut.ErrGraphTooLarge, order, maxcut.MaxBruteForceOrder)
	}

	var (
		model       = ising.FromGraph(g)
		rep         = Report{MaxCut: -1, MinEnergy: math.Inf(1)}
		cutForms    = make(map[string]struct{})
		energyForms = make(map[string]struct{})
		total       = uint64(1) << order
	)
	for i := uint64(0); i < total; i++ {
		a := graph.FromIndex(order, i)

		cut, err := maxcut.CutSize(g, a)
		if err != nil {
			return Report{}, err
		}
		energy, err := model.Energy(a)
		if err != nil {
			return Report{}, err
		}

		if cut > rep.MaxCut {
			rep.MaxCut = cut
			rep.CutOptima = 0
			rep.CutWitnesses = rep.CutWitnesses[:0]
			cutForms = make(map[string]struct{})
		}
		if cut == rep.MaxCut {
			rep.CutOptima++
			if len(rep.CutWitnesses) < WitnessLimit {
				rep.CutWitnesses = append(rep.CutWitnesses, a)
			}
			cutForms[a.Canonical().String()] = struct{}{}
		}

		if energy < rep.MinEnergy {
			rep.MinEnergy = energy
			rep.EnergyOptima = 0
			rep.EnergyWitnesses = rep.EnergyWitnesses[:0]
			energyForms = make(map[string]struct{})
		}
		if energy == rep.MinEnergy {
			rep.EnergyOptima++
			if len(rep.EnergyWitnesses) < WitnessLimit {
				rep.EnergyWitnesses = append(rep.EnergyWitnesses, a)
			}
			energyForms[a.Canonical().String()] = struct{}{}
		}
	}

	rep.CutPartitions = len(cutForms)
	rep.EnergyPartitions = len(energyForms)
	rep.Match = equalForms(cutForms, energyForms)

	return rep, nil
}

// equalForms compares two normalized extremal sets.
func equalForms(x, y map[string]struct{}) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if _, ok := y[k]; !ok {
			return false
		}
	}

	return true
}
