// Package core defines the Graph and Edge types and the sentinel errors
// returned by graph mutations.
//
// Errors:
//
//	ErrNegativeNodeCount - requested node count is negative.
//	ErrNodeOutOfRange    - a node id is outside [0, N).
//	ErrLoopNotAllowed    - an edge from a node to itself was requested.
package core

import (
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeCount indicates NewGraph was asked for fewer than zero nodes.
	ErrNegativeNodeCount = errors.New("core: negative node count")

	// ErrNodeOutOfRange indicates an operation referenced a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected edge in canonical form (U < V).
type Edge struct {
	U int
	V int
}

// Graph is a simple undirected graph over the nodes [0, N).
//
// adjacency is an N×N symmetric matrix with a false diagonal.
// edgeCount mirrors the number of true cells above the diagonal.
type Graph struct {
	adjacency [][]bool
	edgeCount int
}

// NewGraph creates a Graph with n isolated nodes.
// n == 0 is allowed and yields an empty graph that can be grown later.
// Complexity: O(n²).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeNodeCount
	}
	g := &Graph{}
	g.Grow(n)

	return g, nil
}

// NodeCount returns N.
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// MaxEdges returns the number of unordered node pairs, N(N-1)/2.
// It is zero for graphs with fewer than two nodes.
func (g *Graph) MaxEdges() int {
	n := len(g.adjacency)
	return n * (n - 1) / 2
}

// EdgeCount returns the number of edges currently present.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// checkPair validates both endpoints of a prospective edge.
func (g *Graph) checkPair(a, b int) error {
	if err := g.checkNode(a); err != nil {
		return err
	}
	if err := g.checkNode(b); err != nil {
		return err
	}
	if a == b {
		return ErrLoopNotAllowed
	}

	return nil
}

// checkNode validates a single node id.
func (g *Graph) checkNode(node int) error {
	if node < 0 || node >= len(g.adjacency) {
		return ErrNodeOutOfRange
	}

	return nil
}
