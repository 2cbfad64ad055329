// SPDX-License-Identifier: MIT

package graph

import (
	"bytes"
	"fmt"
	"strings"
)

// Assignment is a binary labeling of graph nodes: one value in {0,1}
// per node, index = node. It names a 2-coloring, i.e. which side of the
// cut each node belongs to. The spin convention used by the Ising
// evaluator maps label 0 to spin +1 and label 1 to spin −1.
type Assignment []uint8

// FromIndex expands an enumeration index into an Assignment of the
// given order: bit j of index is node j's label, with node 0 in the
// least significant bit. Indices 0..2^order-1 therefore enumerate every
// assignment exactly once, in the order all exhaustive passes (and the
// statevector simulator's basis states) use.
func FromIndex(order int, index uint64) Assignment {
	a := make(Assignment, order)
	for j := 0; j < order; j++ {
		a[j] = uint8((index >> j) & 1)
	}

	return a
}

// Parse reads an Assignment from its bitstring form ("0011", node 0
// leftmost), the same rendering measured bitstrings arrive in.
// Returns ErrAssignmentValue on any symbol other than '0' or '1'.
func Parse(s string) (Assignment, error) {
	a := make(Assignment, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			a[i] = 0
		case '1':
			a[i] = 1
		default:
			return nil, fmt.Errorf("%w: symbol %q at position %d", ErrAssignmentValue, s[i], i)
		}
	}

	return a, nil
}

// Validate checks that the assignment labels exactly order nodes and
// every label is binary. Evaluators call this before computing, so a
// malformed assignment fails fast instead of producing a wrong number.
func (a Assignment) Validate(order int) error {
	if len(a) != order {
		return fmt.Errorf("%w: got %d labels, want %d", ErrAssignmentLength, len(a), order)
	}
	for i, v := range a {
		if v > 1 {
			return fmt.Errorf("%w: value %d at node %d", ErrAssignmentValue, v, i)
		}
	}

	return nil
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Flip returns the complement labeling: every 0 becomes 1 and vice
// versa. The flipped assignment names the same partition, so cut size
// and Ising energy (with zero local fields) are unchanged under Flip.
func (a Assignment) Flip() Assignment {
	out := make(Assignment, len(a))
	for i, v := range a {
		out[i] = v ^ 1
	}

	return out
}

// Canonical returns the lexicographically smaller of the assignment and
// its flip: the normal form under global bit-flip symmetry. Two
// assignments name the same partition iff their canonical forms are
// equal, which is how extremal sets are compared. The result is always
// a fresh copy.
func (a Assignment) Canonical() Assignment {
	f := a.Flip()
	if bytes.Compare(a, f) <= 0 {
		return a.Clone()
	}

	return f
}

// Index packs the assignment back into its enumeration index (the
// inverse of FromIndex). Meaningful for orders up to 64.
func (a Assignment) Index() uint64 {
	var idx uint64
	for j, v := range a {
		idx |= uint64(v&1) << j
	}

	return idx
}

// String renders the assignment as a bitstring with node 0 leftmost:
// Assignment{0,0,1,1}.String() == "0011".
func (a Assignment) String() string {
	var b strings.Builder
	b.Grow(len(a))
	for _, v := range a {
		b.WriteByte('0' + (v & 1))
	}

	return b.String()
}
