// SPDX-License-Identifier: MIT
package qaoa

import (
	"github.com/katalvlaran/isingcut/circuit"
	"github.com/katalvlaran/isingcut/graph"
)

// Build assembles the QAOA circuit for the Max-Cut cost of g:
//
//	H on every qubit                    uniform superposition
//	per layer, per edge (i, j):
//	    CNOT(i, j); RZ(j, −γ); CNOT(i, j)
//	per layer, per qubit: RX(2β)        transverse-field mixer
//
// The conjugated rotation equals exp(+i(γ/2)·Z_i·Z_j), which is the
// edge factor of exp(−iγC) up to a global phase, so the block order
// over edges cannot change the prepared distribution. Edges enter in
// the order Edges returns them to keep simulations bit-identical.
func Build(g graph.Graph, p Params) (*circuit.Circuit, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	c := circuit.New(g.Order())
	for q := 0; q < g.Order(); q++ {
		c.H(q)
	}
	for layer := 0; layer < p.Layers; layer++ {
		for _, e := range g.Edges() {
			c.CNOT(e.U, e.V).RZ(e.V, -p.Gamma).CNOT(e.U, e.V)
		}
		for q := 0; q < g.Order(); q++ {
			c.RX(q, 2*p.Beta)
		}
	}

	return c, nil
}
