package bfs

import (
	"slices"

	"github.com/katalvlaran/swarmcolor/core"
)

// Components returns the connected components of g. Each component lists
// its nodes in ascending order; components are ordered by smallest member.
// An isolated node is a component of one.
//
// Complexity: O(N²).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	seen := make([]bool, n)
	var comps [][]int

	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue := []int{s}
		for qi := 0; qi < len(queue); qi++ {
			nbrs, _ := g.Neighbors(queue[qi])
			for _, v := range nbrs {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Eccentricity returns the largest hop distance from node to any node of its
// component.
func Eccentricity(g *core.Graph, node int) (int, error) {
	res, err := BFS(g, node)
	if err != nil {
		return 0, err
	}

	return res.Depth[res.Order[len(res.Order)-1]], nil
}
