// SPDX-License-Identifier: MIT
package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// State is a dense statevector: amplitude State[k] belongs to the
// basis state whose qubit q is bit q of k (qubit 0 in the least
// significant bit).
type State []complex128

// Probabilities returns the Born-rule measurement distribution
// |amplitude|² per basis index. The result sums to 1 up to float
// rounding because every gate is unitary.
func (s State) Probabilities() []float64 {
	probs := make([]float64, len(s))
	for k, amp := range s {
		probs[k] = real(amp * cmplx.Conj(amp))
	}

	return probs
}

// Simulate validates the circuit, then evolves the register exactly
// from |0…0⟩ by applying each gate to a dense statevector in program
// order. Circuits wider than MaxQubits are refused with
// ErrTooManyQubits before any allocation.
//
// The evolution is fully deterministic: equal circuits yield
// bit-identical states.
func (c *Circuit) Simulate() (State, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.qubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits, limit %d", ErrTooManyQubits, c.qubits, MaxQubits)
	}

	state := make(State, 1<<uint(c.qubits))
	state[0] = 1
	for _, g := range c.gates {
		switch g.Kind {
		case GateH:
			applyH(state, g.Target)
		case GateRX:
			applyRX(state, g.Target, g.Angle)
		case GateRZ:
			applyRZ(state, g.Target, g.Angle)
		case GateCNOT:
			applyCNOT(state, g.Control, g.Target)
		}
	}

	return state, nil
}

// applyH mixes each amplitude pair that differs only in bit q:
// (a, b) -> ((a+b)/√2, (a−b)/√2).
func applyH(state State, q int) {
	bit := 1 << uint(q)
	inv := complex(1/math.Sqrt2, 0)
	for k := range state {
		if k&bit == 0 {
			j := k | bit
			a, b := state[k], state[j]
			state[k] = (a + b) * inv
			state[j] = (a - b) * inv
		}
	}
}

// applyRX rotates each amplitude pair about X:
// (a, b) -> (cos(θ/2)·a − i·sin(θ/2)·b, −i·sin(θ/2)·a + cos(θ/2)·b).
func applyRX(state State, q int, theta float64) {
	bit := 1 << uint(q)
	cos := complex(math.Cos(theta/2), 0)
	mis := complex(0, -math.Sin(theta/2))
	for k := range state {
		if k&bit == 0 {
			j := k | bit
			a, b := state[k], state[j]
			state[k] = cos*a + mis*b
			state[j] = mis*a + cos*b
		}
	}
}

// applyRZ multiplies amplitudes by e^{∓iθ/2} according to bit q:
// phase e^{−iθ/2} where the bit is 0, e^{+iθ/2} where it is 1.
func applyRZ(state State, q int, theta float64) {
	bit := 1 << uint(q)
	phase0 := cmplx.Exp(complex(0, -theta/2))
	phase1 := cmplx.Exp(complex(0, theta/2))
	for k := range state {
		if k&bit == 0 {
			state[k] *= phase0
		} else {
			state[k] *= phase1
		}
	}
}

// applyCNOT swaps the target-bit pair of every basis state whose
// control bit is 1.
func applyCNOT(state State, control, target int) {
	cbit := 1 << uint(control)
	tbit := 1 << uint(target)
	for k := range state {
		if k&cbit != 0 && k&tbit == 0 {
			j := k | tbit
			state[k], state[j] = state[j], state[k]
		}
	}
}
