// SPDX-License-Identifier: MIT
package circuit

import "errors"

var (
	// ErrQubitCount reports a negative qubit count passed to New.
	ErrQubitCount = errors.New("circuit: qubit count must be non-negative")

	// ErrQubitRange reports a gate whose target or control qubit lies
	// outside 0..Qubits()-1.
	ErrQubitRange = errors.New("circuit: gate qubit out of range")

	// ErrControlTarget reports a CNOT whose control and target are the
	// same qubit.
	ErrControlTarget = errors.New("circuit: control and target must differ")

	// ErrAngleNotFinite reports a rotation angle that is NaN or ±Inf.
	ErrAngleNotFinite = errors.New("circuit: gate angle must be finite")

	// ErrTooManyQubits reports a simulation request whose statevector
	// would exceed the MaxQubits memory boundary.
	ErrTooManyQubits = errors.New("circuit: too many qubits for statevector simulation")
)
