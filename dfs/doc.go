// Package dfs provides depth-first traversal over a core.Graph and the
// two-colourability test built on it.
//
// DFS visits nodes in pre-order, expanding neighbours in ascending id order.
// With FullTraversal it restarts from every unvisited node, producing a DFS
// forest over all components.
//
// OddCycle 2-colours each DFS tree by depth parity; an edge joining two nodes
// of equal parity closes an odd cycle, which is returned explicitly. A graph
// without one is bipartite, so two colours suffice; otherwise at least three
// are needed.
//
// Traversal is iterative, so deep paths never grow the goroutine stack.
package dfs
