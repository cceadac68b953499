// File: methods_clone.go
// Role: Deep copies of the graph and of its adjacency matrix.

package core

// Clone returns a deep copy of the Graph. Mutating the clone never affects g.
// Complexity: O(N²).
func (g *Graph) Clone() *Graph {
	return &Graph{
		adjacency: g.AdjacencyMatrix(),
		edgeCount: g.edgeCount,
	}
}

// AdjacencyMatrix returns a copy of the symmetric N×N adjacency matrix.
// Complexity: O(N²).
func (g *Graph) AdjacencyMatrix() [][]bool {
	out := make([][]bool, len(g.adjacency))
	for i, row := range g.adjacency {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}

	return out
}
