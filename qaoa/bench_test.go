// SPDX-License-Identifier: MIT
package qaoa_test

import (
	"testing"

	"github.com/katalvlaran/isingcut/graph"
	"github.com/katalvlaran/isingcut/qaoa"
)

// ringGraph builds a cycle of the given order, the natural family for
// scaling the statevector width.
func ringGraph(b *testing.B, order int) graph.Graph {
	edges := make([]graph.Edge, order)
	for i := 0; i < order; i++ {
		edges[i] = graph.Edge{U: i, V: (i + 1) % order}
	}
	g, err := graph.New(order, edges)
	if err != nil {
		b.Fatalf("ring graph: %v", err)
	}

	return g
}

// benchmarkProbabilities measures the exact-distribution path, the
// inner loop of every analysis call.
func benchmarkProbabilities(b *testing.B, order int) {
	g := ringGraph(b, order)
	p := qaoa.DefaultParams()

	b.ResetTimer() // exclude graph construction
	for i := 0; i < b.N; i++ {
		if _, err := qaoa.Probabilities(g, p); err != nil {
			b.Fatalf("Probabilities failed: %v", err)
		}
	}
}

func BenchmarkProbabilities_Ring4(b *testing.B)  { benchmarkProbabilities(b, 4) }
func BenchmarkProbabilities_Ring10(b *testing.B) { benchmarkProbabilities(b, 10) }
func BenchmarkProbabilities_Ring16(b *testing.B) { benchmarkProbabilities(b, 16) }

// BenchmarkSample_Demo measures a full default sampling run on the
// demo square, statevector plus one thousand categorical draws.
func BenchmarkSample_Demo(b *testing.B) {
	g := graph.Demo()
	p := qaoa.DefaultParams()
	o := qaoa.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := qaoa.Sample(g, p, o); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}
