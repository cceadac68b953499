package coloring

import "github.com/katalvlaran/swarmcolor/core"

// Conflicts counts adjacent pairs that share a colour. Each unordered pair is
// visited once, as (a, b) with a > b, so a conflict is never double counted.
// Nodes beyond len(c) have no colour and never conflict.
//
// Pure and deterministic. Complexity: O(N²).
func Conflicts(g *core.Graph, c Coloring) int {
	n := g.NodeCount()
	if len(c) < n {
		n = len(c)
	}
	conflicts := 0
	var a, b int
	for a = 0; a < n; a++ {
		for b = 0; b < a; b++ {
			if c[a] == c[b] && g.HasEdge(a, b) {
				conflicts++
			}
		}
	}

	return conflicts
}

// Valid reports whether c covers g and has no conflicts.
func Valid(g *core.Graph, c Coloring) bool {
	return Check(g, c) == nil && Conflicts(g, c) == 0
}
