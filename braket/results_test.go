// SPDX-License-Identifier: MIT
package braket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingcut/braket"
	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/qaoa"
)

// TestParseResult_Measurements checks the preferred path: per-shot
// rows tallied into bitstrings, node 0 leftmost.
func TestParseResult_Measurements(t *testing.T) {
	doc := []byte(`{
		"measurements": [[0,1,1,0],[1,0,0,1],[0,1,1,0],[0,0,1,1]],
		"measuredQubits": [0,1,2,3]
	}`)

	counts, err := braket.ParseResult(doc, 4, 4)
	require.NoError(t, err, "well-formed document must parse")
	assert.Equal(t, qaoa.Counts{"0110": 2, "1001": 1, "0011": 1}, counts, "each row tallies under its bitstring")
}

// TestParseResult_MeasuredQubitsPermutation checks that columns land
// on the qubits the document names, not on their positions.
func TestParseResult_MeasuredQubitsPermutation(t *testing.T) {
	doc := []byte(`{
		"measurements": [[1,1,0,0]],
		"measuredQubits": [3,2,1,0]
	}`)

	counts, err := braket.ParseResult(doc, 4, 1)
	require.NoError(t, err, "permuted document must parse")
	assert.Equal(t, qaoa.Counts{"0011": 1}, counts, "columns must be reordered by their named qubits")
}

// TestParseResult_NoQubitList checks the fallback when the document
// omits measuredQubits: column order is qubit order.
func TestParseResult_NoQubitList(t *testing.T) {
	doc := []byte(`{"measurements": [[1,0,0,1]]}`)

	counts, err := braket.ParseResult(doc, 4, 1)
	require.NoError(t, err, "listless document must parse")
	assert.Equal(t, qaoa.Counts{"1001": 1}, counts, "columns map to qubits positionally")
}

// TestParseResult_ProbabilityFallback checks aggregate-only documents:
// counts reconstruct as probability times shots.
func TestParseResult_ProbabilityFallback(t *testing.T) {
	doc := []byte(`{
		"measurementProbabilities": {"0110": 0.5, "1001": 0.3, "0000": 0.2}
	}`)

	counts, err := braket.ParseResult(doc, 4, 500)
	require.NoError(t, err, "aggregate document must parse")
	assert.Equal(t, qaoa.Counts{"0110": 250, "1001": 150, "0000": 100}, counts, "counts must round from probabilities")
}

// TestParseResult_MeasurementsPreferred checks that per-shot rows win
// when a document carries both representations.
func TestParseResult_MeasurementsPreferred(t *testing.T) {
	doc := []byte(`{
		"measurements": [[0,1,1,0]],
		"measurementProbabilities": {"0000": 1.0}
	}`)

	counts, err := braket.ParseResult(doc, 4, 1)
	require.NoError(t, err, "dual document must parse")
	assert.Equal(t, qaoa.Counts{"0110": 1}, counts, "per-shot rows take precedence")
}

// TestParseResult_EmptyDocument checks the no-data sentinel.
func TestParseResult_EmptyDocument(t *testing.T) {
	_, err := braket.ParseResult([]byte(`{"taskMetadata": {"id": "arn:task"}}`), 4, 500)
	require.Error(t, err, "document without data must be rejected")
	assert.ErrorIs(t, err, braket.ErrNoMeasurements, "rejection must expose its sentinel")
}

// TestParseResult_MalformedJSON checks decoder failure reporting.
func TestParseResult_MalformedJSON(t *testing.T) {
	_, err := braket.ParseResult([]byte(`{"measurements": [[0,1`), 4, 1)
	require.Error(t, err, "truncated JSON must be rejected")
	assert.ErrorContains(t, err, "decode result document", "wrap must name the decoding stage")
}

// TestParseResult_MalformedRows checks the shape and value guards on
// per-shot rows.
func TestParseResult_MalformedRows(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "short_row", doc: `{"measurements": [[0,1,1]]}`},
		{name: "bad_value", doc: `{"measurements": [[0,1,2,0]]}`},
		{name: "bad_qubit_name", doc: `{"measurements": [[0,1,1,0]], "measuredQubits": [0,1,2,7]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := braket.ParseResult([]byte(tc.doc), 4, 1)
			require.Error(t, err, "malformed rows must be rejected")
			assert.ErrorIs(t, err, braket.ErrResultFormat, "rejection must expose its sentinel")
		})
	}
}

// TestParseResult_MalformedProbabilityKeys checks that bad aggregate
// keys surface the graph sentinels.
func TestParseResult_MalformedProbabilityKeys(t *testing.T) {
	_, err := braket.ParseResult([]byte(`{"measurementProbabilities": {"01x0": 1.0}}`), 4, 100)
	require.Error(t, err, "non-binary key must be rejected")
	assert.ErrorIs(t, err, graph.ErrAssignmentValue, "parse sentinel must pass through")

	_, err = braket.ParseResult([]byte(`{"measurementProbabilities": {"011": 1.0}}`), 4, 100)
	require.Error(t, err, "short key must be rejected")
	assert.ErrorIs(t, err, graph.ErrAssignmentLength, "length sentinel must pass through")
}

// TestDefaultConfig checks the walkthrough defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := braket.DefaultConfig()

	assert.Equal(t, braket.DefaultDeviceARN, cfg.DeviceARN, "default device")
	assert.Equal(t, braket.DefaultShots, cfg.Shots, "default shot budget")
	assert.Equal(t, braket.DefaultPollInterval, cfg.PollInterval, "default poll pacing")
	assert.Equal(t, braket.DefaultPrefix, cfg.Prefix, "default output prefix")
	assert.Empty(t, cfg.Bucket, "bucket has no default and must be supplied")
}
