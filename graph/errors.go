// SPDX-License-Identifier: MIT
// Package graph: sentinel error set.
// These sentinels are returned by constructors and validators across the
// whole repository (evaluators in maxcut and ising reuse the assignment
// sentinels). Tests match them via errors.Is; callers may wrap them with
// fmt.Errorf("%w: context") but never replace them.

package graph

import "errors"

var (
	// ErrNegativeOrder is returned by New when the node count is negative.
	ErrNegativeOrder = errors.New("graph: order must be non-negative")

	// ErrEdgeRange is returned when an edge endpoint is not in 0..order-1.
	ErrEdgeRange = errors.New("graph: edge endpoint out of range")

	// ErrSelfLoop is returned when an edge joins a node to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrAssignmentLength is returned when an assignment's length does not
	// match the node count it is evaluated against.
	ErrAssignmentLength = errors.New("graph: assignment length mismatch")

	// ErrAssignmentValue is returned when an assignment label, or a parsed
	// bitstring symbol, is anything other than 0 or 1.
	ErrAssignmentValue = errors.New("graph: assignment value must be 0 or 1")
)
