// Package bfs provides breadth-first traversal over a core.Graph and the
// topology summaries built on it: connected components and the
// eccentricity of a node inside its component.
//
// Traversal:
//   - Neighbours are expanded in ascending id order, so Order is deterministic.
//   - Depth[v] is the hop distance from the start, or -1 when unreached.
//   - Parent[v] is the predecessor on one shortest path, or -1.
//
// Options tune a single traversal: cancellation through a context, hooks on
// enqueue and visit, and a depth limit.
//
// Complexity: O(N²) per traversal on the adjacency-matrix graph.
package bfs
