// SPDX-License-Identifier: MIT
// Package circuit builds small gate-model quantum circuits, simulates
// them exactly on a dense statevector, and exports them as OpenQASM 3
// programs for hardware submission.
//
// What
//
//   - Circuit: an ordered gate list over a fixed qubit count, built
//     with chainable H / RX / RZ / CNOT calls and validated as a whole
//     before any use (staged validate-then-execute).
//   - Simulate: exact statevector evolution from |0…0⟩.
//   - State.Probabilities: measurement distribution over basis states.
//   - OpenQASM: textual program in the dialect Braket accepts.
//
// Basis-state convention
//
//	Basis index k encodes qubit q in bit q of k: qubit 0 lives in the
//	least significant bit. This is the same convention graph.FromIndex
//	uses for assignments, so index k of a probability vector IS the
//	enumeration index of the measured assignment, and the bitstring
//	rendering puts qubit 0 leftmost, exactly how measured bitstrings
//	come back from hardware.
//
// Gate semantics (standard)
//
//	H        = (1/√2) [[1, 1], [1, −1]]
//	RX(θ)    = exp(−iθX/2)
//	RZ(θ)    = diag(e^{−iθ/2}, e^{+iθ/2})
//	CNOT c,t = flip target where the control bit is 1
//
// Scale boundary
//
//	A dense statevector holds 2^qubits amplitudes. Simulate refuses
//	circuits above MaxQubits (20, sixteen million complex amplitudes)
//	with ErrTooManyQubits rather than exhausting memory; OpenQASM
//	export carries no such limit.
//
// Complexity
//
//   - Simulate: O(gates · 2^qubits) time, O(2^qubits) memory.
//   - OpenQASM: O(gates) time.
//
// Errors
//
//   - ErrQubitCount      negative qubit count.
//   - ErrQubitRange      gate touches a qubit outside 0..qubits-1.
//   - ErrControlTarget   CNOT with control == target.
//   - ErrAngleNotFinite  NaN or ±Inf rotation angle.
//   - ErrTooManyQubits   simulation beyond MaxQubits.
//
// Deterministic and print-free; sampling noise lives in package qaoa,
// never here.
package circuit
