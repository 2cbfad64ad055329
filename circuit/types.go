// SPDX-License-Identifier: MIT
package circuit

import (
	"fmt"
	"math"
)

// MaxQubits bounds statevector simulation. 2^20 amplitudes of
// complex128 occupy sixteen MiB; one more qubit doubles it.
const MaxQubits = 20

// GateKind enumerates the gate set: the Hadamard, the two rotations,
// and the controlled-NOT. The set is exactly what a depth-one QAOA
// circuit needs and what the OpenQASM exporter knows how to spell.
type GateKind int

const (
	// GateH is the Hadamard gate.
	GateH GateKind = iota
	// GateRX is a rotation about the X axis by Gate.Angle.
	GateRX
	// GateRZ is a rotation about the Z axis by Gate.Angle.
	GateRZ
	// GateCNOT is the controlled-NOT gate.
	GateCNOT
)

// String returns the lowercase gate mnemonic used in OpenQASM output.
func (k GateKind) String() string {
	switch k {
	case GateH:
		return "h"
	case GateRX:
		return "rx"
	case GateRZ:
		return "rz"
	case GateCNOT:
		return "cnot"
	default:
		return fmt.Sprintf("gate(%d)", int(k))
	}
}

// Gate is one instruction in a circuit. Target is the acted-on qubit.
// Control is the controlling qubit for GateCNOT and -1 otherwise.
// Angle is the rotation angle in radians for GateRX and GateRZ and
// zero otherwise.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Angle   float64
}

// Circuit is an ordered list of gates over a fixed qubit register.
// Build one with New and the chainable gate methods; the builder
// records every call and Validate inspects the whole program at once,
// so construction code stays free of per-call error plumbing.
type Circuit struct {
	qubits int
	gates  []Gate
}

// New returns an empty circuit over the given number of qubits.
// Qubit counts are checked by Validate, not here, so a bad count
// surfaces as an error rather than a panic.
func New(qubits int) *Circuit {
	return &Circuit{qubits: qubits}
}

// H appends a Hadamard gate on qubit q and returns the circuit.
func (c *Circuit) H(q int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateH, Target: q, Control: -1})

	return c
}

// RX appends a rotation about X by angle radians on qubit q and
// returns the circuit.
func (c *Circuit) RX(q int, angle float64) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateRX, Target: q, Control: -1, Angle: angle})

	return c
}

// RZ appends a rotation about Z by angle radians on qubit q and
// returns the circuit.
func (c *Circuit) RZ(q int, angle float64) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateRZ, Target: q, Control: -1, Angle: angle})

	return c
}

// CNOT appends a controlled-NOT with the given control and target
// qubits and returns the circuit.
func (c *Circuit) CNOT(control, target int) *Circuit {
	c.gates = append(c.gates, Gate{Kind: GateCNOT, Target: target, Control: control})

	return c
}

// Qubits returns the width of the qubit register.
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Gates returns a copy of the instruction list in program order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Validate checks the whole circuit: the register width, then every
// gate's qubit indices and angles in program order. It returns the
// first violation wrapped around its sentinel, or nil.
func (c *Circuit) Validate() error {
	if c.qubits < 0 {
		return fmt.Errorf("%w: got %d", ErrQubitCount, c.qubits)
	}
	for i, g := range c.gates {
		if g.Target < 0 || g.Target >= c.qubits {
			return fmt.Errorf("%w: gate %d (%s) targets qubit %d of %d", ErrQubitRange, i, g.Kind, g.Target, c.qubits)
		}
		switch g.Kind {
		case GateCNOT:
			if g.Control < 0 || g.Control >= c.qubits {
				return fmt.Errorf("%w: gate %d (%s) controls on qubit %d of %d", ErrQubitRange, i, g.Kind, g.Control, c.qubits)
			}
			if g.Control == g.Target {
				return fmt.Errorf("%w: gate %d acts on qubit %d twice", ErrControlTarget, i, g.Target)
			}
		case GateRX, GateRZ:
			if math.IsNaN(g.Angle) || math.IsInf(g.Angle, 0) {
				return fmt.Errorf("%w: gate %d (%s) has angle %v", ErrAngleNotFinite, i, g.Kind, g.Angle)
			}
		}
	}

	return nil
}
