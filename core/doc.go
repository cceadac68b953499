// Package core provides the simple undirected Graph that the colouring
// agents live on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are the dense integer range [0, N). There are no labels.
//   - Edges are undirected and unweighted, stored in a symmetric N×N
//     adjacency matrix: adjacency[a][b] == adjacency[b][a].
//   - Self-loops are rejected (ErrLoopNotAllowed) and parallel edges cannot
//     be represented.
//   - Edge toggling (ToggleEdge) keeps the matrix symmetric, which is what
//     topology perturbation relies on.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) (*Graph, error)    // O(n²)
//	Grow(n int)                        // O(n²) when the graph grows
//
//	// Edge lifecycle
//	AddEdge(a, b int) error            // O(1)
//	RemoveEdge(a, b int) error         // O(1)
//	ToggleEdge(a, b int) (bool, error) // O(1)
//	HasEdge(a, b int) bool             // O(1)
//
//	// Query
//	Neighbors(node int) ([]int, error) // O(N), ascending
//	Degree(node int) (int, error)      // O(N)
//	MaxDegree() int                    // O(N²)
//	Edges() []Edge                     // O(N²), canonical U<V order
//	EdgeCount() int                    // O(1)
//	MaxEdges() int                     // O(1), N(N-1)/2
//
//	// Cloning
//	Clone() *Graph                     // O(N²)
//	AdjacencyMatrix() [][]bool         // O(N²) copy
//
// Concurrency:
//
//	A Graph is owned by a single simulation loop and is not safe for
//	concurrent mutation. Callers that share one must synchronise externally.
//
// Errors:
//
//	ErrNegativeNodeCount - NewGraph with n < 0
//	ErrNodeOutOfRange    - node id outside [0, N)
//	ErrLoopNotAllowed    - edge (a, a)
package core
