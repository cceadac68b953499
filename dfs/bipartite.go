package dfs

import "github.com/katalvlaran/swarmcolor/core"

// OddCycle returns one odd cycle of g as a node sequence (the closing edge
// joins the last node back to the first), or ok == false when g is
// bipartite.
//
// Complexity: O(N²).
func OddCycle(g *core.Graph) (cycle []int, ok bool) {
	if g == nil || g.NodeCount() == 0 {
		return nil, false
	}
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, false
	}
	for _, e := range g.Edges() {
		if res.Depth[e.U]%2 != res.Depth[e.V]%2 {
			continue
		}
		return treeCycle(res, e.U, e.V), true
	}

	return nil, false
}

// Bipartite reports whether g can be coloured with two colours.
func Bipartite(g *core.Graph) bool {
	_, odd := OddCycle(g)
	return !odd
}

// ChromaticLowerBound returns 0 for an empty graph, 1 without edges, 2 for a
// bipartite graph with edges and 3 when an odd cycle exists.
func ChromaticLowerBound(g *core.Graph) int {
	switch {
	case g == nil || g.NodeCount() == 0:
		return 0
	case g.EdgeCount() == 0:
		return 1
	case Bipartite(g):
		return 2
	default:
		return 3
	}
}

// treeCycle joins the tree paths of u and v at their lowest common ancestor.
// u and v lie in the same tree because they are adjacent.
func treeCycle(res *Result, u, v int) []int {
	var up, down []int
	for res.Depth[u] > res.Depth[v] {
		up = append(up, u)
		u = res.Parent[u]
	}
	for res.Depth[v] > res.Depth[u] {
		down = append(down, v)
		v = res.Parent[v]
	}
	for u != v {
		up = append(up, u)
		down = append(down, v)
		u, v = res.Parent[u], res.Parent[v]
	}
	up = append(up, u)
	for i := len(down) - 1; i >= 0; i-- {
		up = append(up, down[i])
	}

	return up
}
