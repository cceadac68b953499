// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/ToggleEdge/HasEdge/Edges.
// Determinism:
//   - Edges() returns canonical pairs (U<V) sorted by U then V.
// Invariants:
//   - Every mutation writes both adjacency[a][b] and adjacency[b][a].
//   - The diagonal is never written.

package core

import "fmt"

// AddEdge inserts the undirected edge {a, b}. Adding an existing edge is a no-op.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, N).
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int) error {
	if err := g.checkPair(a, b); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", a, b, err)
	}
	if !g.adjacency[a][b] {
		g.set(a, b, true)
	}

	return nil
}

// RemoveEdge deletes the undirected edge {a, b}. Removing an absent edge is a no-op.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, N).
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	if err := g.checkPair(a, b); err != nil {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", a, b, err)
	}
	if g.adjacency[a][b] {
		g.set(a, b, false)
	}

	return nil
}

// ToggleEdge flips the presence of edge {a, b} and reports whether the edge
// is present afterwards.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside [0, N).
//   - ErrLoopNotAllowed if a == b; a loop can never be introduced by toggling.
//
// Complexity: O(1).
func (g *Graph) ToggleEdge(a, b int) (bool, error) {
	if err := g.checkPair(a, b); err != nil {
		return false, fmt.Errorf("ToggleEdge(%d,%d): %w", a, b, err)
	}
	present := !g.adjacency[a][b]
	g.set(a, b, present)

	return present, nil
}

// HasEdge reports whether {a, b} is an edge. Out-of-range ids and a == b
// report false.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	if g.checkPair(a, b) != nil {
		return false
	}

	return g.adjacency[a][b]
}

// Edges returns every edge once in canonical form, ordered by (U, V).
// Complexity: O(N²) time, O(E) space.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	n := len(g.adjacency)
	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if g.adjacency[u][v] {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}

	return out
}

// set writes both mirrored cells and keeps edgeCount in sync.
// Callers guarantee a != b, both in range, and that the value changes.
func (g *Graph) set(a, b int, present bool) {
	g.adjacency[a][b] = present
	g.adjacency[b][a] = present
	if present {
		g.edgeCount++
	} else {
		g.edgeCount--
	}
}
