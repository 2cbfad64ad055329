// SPDX-License-Identifier: MIT
package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// OpenQASM renders the circuit as an OpenQASM 3 program in the
// dialect Braket's gate-model simulators and QPUs accept: a version
// header, one qubit register named q, one line per gate. Measurement
// is implicit; Braket measures every qubit of a program without
// explicit measure statements.
//
// The circuit is validated first, so a program string is always a
// well-formed submission. Angles print via strconv.FormatFloat with
// the shortest round-trip form, keeping the text stable across runs.
func (c *Circuit) OpenQASM() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("OPENQASM 3.0;\n")
	if c.qubits > 0 {
		fmt.Fprintf(&b, "qubit[%d] q;\n", c.qubits)
	}
	for _, g := range c.gates {
		switch g.Kind {
		case GateH:
			fmt.Fprintf(&b, "h q[%d];\n", g.Target)
		case GateRX, GateRZ:
			fmt.Fprintf(&b, "%s(%s) q[%d];\n", g.Kind, formatAngle(g.Angle), g.Target)
		case GateCNOT:
			fmt.Fprintf(&b, "cnot q[%d], q[%d];\n", g.Control, g.Target)
		}
	}

	return b.String(), nil
}

// formatAngle prints an angle in the shortest form that parses back
// to the same float64.
func formatAngle(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
