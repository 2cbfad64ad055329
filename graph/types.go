// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Edge is an undirected connection between two node indices.
// Canonical form keeps the smaller index in U; New normalizes input
// pairs, so every Edge held by a Graph satisfies U < V.
type Edge struct {
	U, V int
}

// Graph is an immutable undirected graph over nodes 0..Order()-1.
// The zero value is the empty graph (order 0, no edges). Build richer
// instances via New, which validates and canonicalizes the edge list.
// Graph is a small value type: pass it by value and share it freely.
type Graph struct {
	order int
	edges []Edge
}

// New builds a Graph with the given order (node count) and edge list.
// Edges are canonicalized (smaller index first) and duplicates collapse;
// the surviving edges keep their first-seen input order.
//
// Contract:
//   - order ≥ 0, else ErrNegativeOrder.
//   - every endpoint in 0..order-1, else ErrEdgeRange.
//   - no self-loops, else ErrSelfLoop.
//
// Complexity: O(|edges|) time and memory.
func New(order int, edges []Edge) (Graph, error) {
	if order < 0 {
		return Graph{}, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}
	canon := make([]Edge, 0, len(edges))
	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.U < 0 || e.U >= order || e.V < 0 || e.V >= order {
			return Graph{}, fmt.Errorf("%w: (%d,%d) with order %d", ErrEdgeRange, e.U, e.V, order)
		}
		if e.U == e.V {
			return Graph{}, fmt.Errorf("%w: (%d,%d)", ErrSelfLoop, e.U, e.V)
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		canon = append(canon, e)
	}

	return Graph{order: order, edges: canon}, nil
}

// Demo returns the fixed four-node instance used throughout the
// repository: the square 0─1─3─2─0, i.e. edges (0,1), (0,2), (1,3)
// and (2,3).
//
//	0───1
//	│   │
//	2───3
//
// Its maximum cut is 4: color the square like a checkerboard, i.e.
// assignment 0110 (nodes 0 and 3 on one side), and every edge crosses
// the cut.
func Demo() Graph {
	return Graph{
		order: 4,
		edges: []Edge{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
	}
}

// Order returns the node count.
func (g Graph) Order() int { return g.order }

// Size returns the edge count.
func (g Graph) Size() int { return len(g.edges) }

// Edges returns a copy of the canonical edge list in construction order.
func (g Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}
