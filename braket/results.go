// SPDX-License-Identifier: MIT
package braket

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/qaoa"
)

// gateModelResult mirrors the slice of Braket's gate-model task
// result schema this package consumes. Everything else in the
// document (task metadata, device parameters) is ignored.
type gateModelResult struct {
	// Measurements holds one row per shot, one column per measured
	// qubit, values 0 or 1.
	Measurements [][]int `json:"measurements"`
	// MeasuredQubits names the qubit behind each measurement column.
	MeasuredQubits []int `json:"measuredQubits"`
	// MeasurementProbabilities is the aggregate alternative some
	// devices return instead of per-shot rows.
	MeasurementProbabilities map[string]float64 `json:"measurementProbabilities"`
}

// ParseResult extracts bitstring counts from a gate-model result
// document for a circuit over the given qubit count. Per-shot
// measurement rows are preferred; the probability map serves as the
// fallback, with counts rounded from probability times shots.
func ParseResult(data []byte, order int, shots int64) (qaoa.Counts, error) {
	var res gateModelResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("braket: decode result document: %w", err)
	}

	if len(res.Measurements) > 0 {
		return countsFromMeasurements(res.Measurements, res.MeasuredQubits, order)
	}
	if len(res.MeasurementProbabilities) > 0 {
		return countsFromProbabilities(res.MeasurementProbabilities, order, shots)
	}

	return nil, ErrNoMeasurements
}

// countsFromMeasurements tallies per-shot rows. When the document
// names its measurement columns, each column lands on its named
// qubit; otherwise column order is taken as qubit order.
func countsFromMeasurements(rows [][]int, measured []int, order int) (qaoa.Counts, error) {
	counts := make(qaoa.Counts)
	for shot, row := range rows {
		if len(row) != order {
			return nil, fmt.Errorf("%w: shot %d measures %d qubits, want %d", ErrResultFormat, shot, len(row), order)
		}

		bits := make(graph.Assignment, order)
		for col, v := range row {
			q := col
			if len(measured) == len(row) {
				q = measured[col]
			}
			if q < 0 || q >= order {
				return nil, fmt.Errorf("%w: shot %d names qubit %d of %d", ErrResultFormat, shot, q, order)
			}
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: shot %d holds value %d", ErrResultFormat, shot, v)
			}
			bits[q] = uint8(v)
		}
		counts[bits.String()]++
	}

	return counts, nil
}

// countsFromProbabilities reconstructs approximate counts from an
// aggregate distribution. Rounding can make the total drift from the
// shot budget by a hair; reports normalize by the requested budget
// regardless.
func countsFromProbabilities(probs map[string]float64, order int, shots int64) (qaoa.Counts, error) {
	counts := make(qaoa.Counts, len(probs))
	for bits, p := range probs {
		a, err := graph.Parse(bits)
		if err != nil {
			return nil, err
		}
		if err := a.Validate(order); err != nil {
			return nil, err
		}
		if n := int(math.Round(p * float64(shots))); n > 0 {
			counts[bits] = n
		}
	}
	if len(counts) == 0 {
		return nil, ErrNoMeasurements
	}

	return counts, nil
}
