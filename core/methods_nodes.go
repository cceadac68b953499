// File: methods_nodes.go
// Role: Node-level queries (Neighbors, Degree, MaxDegree) and growth.
// Determinism:
//   - Neighbors() is always ascending by node id.

package core

import "fmt"

// Grow extends the graph to at least n nodes. New nodes are isolated.
// Existing edges are preserved; shrinking is never performed.
// Complexity: O(n²) when the graph grows, O(1) otherwise.
func (g *Graph) Grow(n int) {
	old := len(g.adjacency)
	if n <= old {
		return
	}
	rows := make([][]bool, n)
	var i int
	for i = 0; i < n; i++ {
		rows[i] = make([]bool, n)
		if i < old {
			copy(rows[i], g.adjacency[i])
		}
	}
	g.adjacency = rows
}

// Neighbors returns the ids adjacent to node in ascending order.
//
// Errors:
//   - ErrNodeOutOfRange if node is outside [0, N).
//
// Complexity: O(N).
func (g *Graph) Neighbors(node int) ([]int, error) {
	if err := g.checkNode(node); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", node, err)
	}
	row := g.adjacency[node]
	out := make([]int, 0, len(row))
	for v, ok := range row {
		if ok {
			out = append(out, v)
		}
	}

	return out, nil
}

// Degree returns the number of neighbours of node.
// Complexity: O(N).
func (g *Graph) Degree(node int) (int, error) {
	if err := g.checkNode(node); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", node, err)
	}
	d := 0
	for _, ok := range g.adjacency[node] {
		if ok {
			d++
		}
	}

	return d, nil
}

// MaxDegree returns Δ(G), or 0 for a graph without edges.
// Greedy first-fit never needs more than Δ(G)+1 colours.
// Complexity: O(N²).
func (g *Graph) MaxDegree() int {
	best := 0
	var u int
	for u = range g.adjacency {
		d, _ := g.Degree(u)
		if d > best {
			best = d
		}
	}

	return best
}
