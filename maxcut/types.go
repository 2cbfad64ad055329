// SPDX-License-Identifier: MIT
// Package maxcut: types, tunables, and sentinel errors.

package maxcut

import (
	"errors"

	"github.com/katalvlaran/isingcut/graph"
)

// MaxBruteForceOrder is the largest graph order Solve will enumerate.
// 2^20 assignments is the point where "instant" stops being true; the
// limit is an explicit scale boundary, not a tunable.
const MaxBruteForceOrder = 20

// ErrGraphTooLarge is returned by Solve (and the exhaustive verifier
// built on it) when the order exceeds MaxBruteForceOrder.
var ErrGraphTooLarge = errors.New("maxcut: graph too large for exhaustive enumeration")

// Result is the outcome of an exhaustive Max-Cut search.
type Result struct {
	// Value is the maximum number of crossing edges over all assignments.
	Value int

	// Assignments lists every assignment achieving Value, in enumeration
	// order. Each optimal partition appears twice, once per bit-flip
	// labeling; normalize with Assignment.Canonical to collapse pairs.
	Assignments []graph.Assignment
}
