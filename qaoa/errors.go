// SPDX-License-Identifier: MIT
package qaoa

import "errors"

var (
	// ErrLayers reports a non-positive QAOA depth in Params.Layers.
	ErrLayers = errors.New("qaoa: layer count must be positive")

	// ErrShots reports a non-positive shot budget in Options.Shots or
	// a Summarize call with a non-positive total.
	ErrShots = errors.New("qaoa: shot count must be positive")
)
