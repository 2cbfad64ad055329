package graph_test

import (
	"testing"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromIndex_Enumeration verifies the index convention: bit j of the
// index is node j's label, node 0 in the least significant bit.
func TestFromIndex_Enumeration(t *testing.T) {
	assert.Equal(t, graph.Assignment{0, 0, 0, 0}, graph.FromIndex(4, 0))
	assert.Equal(t, graph.Assignment{1, 0, 0, 0}, graph.FromIndex(4, 1))
	assert.Equal(t, graph.Assignment{0, 0, 1, 1}, graph.FromIndex(4, 12))
	assert.Equal(t, graph.Assignment{1, 1, 1, 1}, graph.FromIndex(4, 15))
}

// TestFromIndex_RoundTrip verifies Index is the inverse of FromIndex
// over the whole 4-node enumeration.
func TestFromIndex_RoundTrip(t *testing.T) {
	for i := uint64(0); i < 16; i++ {
		assert.Equal(t, i, graph.FromIndex(4, i).Index(), "round-trip of index %d", i)
	}
}

// TestParse_Bitstring verifies parsing of the bitstring rendering and
// its round-trip through String.
func TestParse_Bitstring(t *testing.T) {
	a, err := graph.Parse("0011")
	require.NoError(t, err, "valid bitstring must parse")

	assert.Equal(t, graph.Assignment{0, 0, 1, 1}, a)
	assert.Equal(t, "0011", a.String(), "String must invert Parse")
}

// TestParse_BadSymbol verifies ErrAssignmentValue on any non-binary
// symbol.
func TestParse_BadSymbol(t *testing.T) {
	_, err := graph.Parse("01x1")
	assert.ErrorIs(t, err, graph.ErrAssignmentValue, "non-binary symbol must error")
}

// TestValidate_LengthAndValues verifies both precondition sentinels.
func TestValidate_LengthAndValues(t *testing.T) {
	assert.NoError(t, graph.Assignment{0, 1, 1, 0}.Validate(4), "well-formed assignment passes")

	err := graph.Assignment{0, 1}.Validate(4)
	assert.ErrorIs(t, err, graph.ErrAssignmentLength, "wrong length must error")

	err = graph.Assignment{0, 2, 0, 0}.Validate(4)
	assert.ErrorIs(t, err, graph.ErrAssignmentValue, "label outside {0,1} must error")
}

// TestFlip_Involution verifies Flip flips every label and is its own
// inverse.
func TestFlip_Involution(t *testing.T) {
	a := graph.Assignment{0, 0, 1, 1}

	assert.Equal(t, graph.Assignment{1, 1, 0, 0}, a.Flip())
	assert.Equal(t, a, a.Flip().Flip(), "double flip restores the original")
}

// TestCanonical_BitFlipNormalForm verifies that an assignment and its
// flip share one canonical form, the lexicographically smaller of the
// two.
func TestCanonical_BitFlipNormalForm(t *testing.T) {
	a := graph.Assignment{1, 1, 0, 0}

	assert.Equal(t, graph.Assignment{0, 0, 1, 1}, a.Canonical(), "flip is smaller")
	assert.Equal(t, a.Canonical(), a.Flip().Canonical(), "flip pair shares a normal form")
}

// TestCanonical_ReturnsCopy verifies the canonical form is detached
// from the receiver.
func TestCanonical_ReturnsCopy(t *testing.T) {
	a := graph.Assignment{0, 0, 1, 1}
	c := a.Canonical()
	c[0] = 1

	assert.Equal(t, uint8(0), a[0], "receiver must stay intact")
}

// TestString_EmptyAssignment verifies the boundary rendering for the
// order-0 instance.
func TestString_EmptyAssignment(t *testing.T) {
	assert.Equal(t, "", graph.Assignment{}.String())
	assert.Equal(t, graph.Assignment{}, graph.FromIndex(0, 0), "order 0 has the single empty assignment")
}
