// SPDX-License-Identifier: MIT
package circuit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingcut/circuit"
)

// TestNew_BuilderRecordsGates checks that the chainable builder keeps
// gates in call order with the expected fields.
func TestNew_BuilderRecordsGates(t *testing.T) {
	c := circuit.New(3).H(0).CNOT(0, 2).RZ(2, -1.5).RX(1, 0.25)

	gates := c.Gates()
	require.Len(t, gates, 4, "four builder calls record four gates")

	assert.Equal(t, circuit.Gate{Kind: circuit.GateH, Target: 0, Control: -1}, gates[0], "first gate")
	assert.Equal(t, circuit.Gate{Kind: circuit.GateCNOT, Target: 2, Control: 0}, gates[1], "second gate")
	assert.Equal(t, circuit.Gate{Kind: circuit.GateRZ, Target: 2, Control: -1, Angle: -1.5}, gates[2], "third gate")
	assert.Equal(t, circuit.Gate{Kind: circuit.GateRX, Target: 1, Control: -1, Angle: 0.25}, gates[3], "fourth gate")
	assert.Equal(t, 3, c.Qubits(), "register width is preserved")
}

// TestGates_ReturnsCopy checks that mutating the returned slice does
// not corrupt the circuit.
func TestGates_ReturnsCopy(t *testing.T) {
	c := circuit.New(1).H(0)

	leaked := c.Gates()
	leaked[0].Target = 99

	assert.Equal(t, 0, c.Gates()[0].Target, "circuit must not observe caller mutation")
}

// TestValidate_AcceptsWellFormed checks that a correct program
// validates cleanly, including an empty one.
func TestValidate_AcceptsWellFormed(t *testing.T) {
	assert.NoError(t, circuit.New(0).Validate(), "empty register is valid")
	assert.NoError(t, circuit.New(2).H(0).CNOT(0, 1).RZ(1, -1).RX(0, 1).Validate(), "well-formed program is valid")
}

// TestValidate_Preconditions checks every validation sentinel with a
// minimal offending circuit.
func TestValidate_Preconditions(t *testing.T) {
	cases := []struct {
		name    string
		build   func() *circuit.Circuit
		wantErr error
	}{
		{
			name:    "negative_register",
			build:   func() *circuit.Circuit { return circuit.New(-1) },
			wantErr: circuit.ErrQubitCount,
		},
		{
			name:    "target_out_of_range",
			build:   func() *circuit.Circuit { return circuit.New(2).H(2) },
			wantErr: circuit.ErrQubitRange,
		},
		{
			name:    "target_negative",
			build:   func() *circuit.Circuit { return circuit.New(2).RX(-1, 0.5) },
			wantErr: circuit.ErrQubitRange,
		},
		{
			name:    "control_out_of_range",
			build:   func() *circuit.Circuit { return circuit.New(2).CNOT(5, 1) },
			wantErr: circuit.ErrQubitRange,
		},
		{
			name:    "control_equals_target",
			build:   func() *circuit.Circuit { return circuit.New(2).CNOT(1, 1) },
			wantErr: circuit.ErrControlTarget,
		},
		{
			name:    "angle_nan",
			build:   func() *circuit.Circuit { return circuit.New(1).RZ(0, math.NaN()) },
			wantErr: circuit.ErrAngleNotFinite,
		},
		{
			name:    "angle_infinite",
			build:   func() *circuit.Circuit { return circuit.New(1).RX(0, math.Inf(1)) },
			wantErr: circuit.ErrAngleNotFinite,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			require.Error(t, err, "malformed circuit must be rejected")
			assert.ErrorIs(t, err, tc.wantErr, "rejection must expose its sentinel")
		})
	}
}

// TestGateKind_String checks the OpenQASM mnemonics of the gate set.
func TestGateKind_String(t *testing.T) {
	assert.Equal(t, "h", circuit.GateH.String(), "Hadamard mnemonic")
	assert.Equal(t, "rx", circuit.GateRX.String(), "X-rotation mnemonic")
	assert.Equal(t, "rz", circuit.GateRZ.String(), "Z-rotation mnemonic")
	assert.Equal(t, "cnot", circuit.GateCNOT.String(), "controlled-NOT mnemonic")
}

// TestOpenQASM_Program checks the exact textual rendering of a small
// program: header, register, one line per gate, shortest angle form.
func TestOpenQASM_Program(t *testing.T) {
	c := circuit.New(2).H(0).H(1).CNOT(0, 1).RZ(1, -1).CNOT(0, 1).RX(0, 1.5)

	program, err := c.OpenQASM()
	require.NoError(t, err, "valid circuit must export")

	want := "OPENQASM 3.0;\n" +
		"qubit[2] q;\n" +
		"h q[0];\n" +
		"h q[1];\n" +
		"cnot q[0], q[1];\n" +
		"rz(-1) q[1];\n" +
		"cnot q[0], q[1];\n" +
		"rx(1.5) q[0];\n"
	assert.Equal(t, want, program, "program text must match the Braket dialect line for line")
}

// TestOpenQASM_RejectsInvalid checks that export refuses a malformed
// circuit instead of emitting a broken program.
func TestOpenQASM_RejectsInvalid(t *testing.T) {
	_, err := circuit.New(1).CNOT(0, 0).OpenQASM()
	require.Error(t, err, "malformed circuit must not export")
	assert.ErrorIs(t, err, circuit.ErrControlTarget, "export must surface the validation sentinel")
}

// TestOpenQASM_WideRegister checks that export has no simulation size
// limit: a register far beyond MaxQubits still renders.
func TestOpenQASM_WideRegister(t *testing.T) {
	c := circuit.New(64)
	for q := 0; q < 64; q++ {
		c.H(q)
	}

	program, err := c.OpenQASM()
	require.NoError(t, err, "export carries no statevector boundary")
	assert.Contains(t, program, "qubit[64] q;\n", "register line must name all qubits")
	assert.Contains(t, program, "h q[63];\n", "last gate line must be present")
}
