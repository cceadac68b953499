package core_test

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// ExampleGraph demonstrates basic creation, toggling, and queries.
func ExampleGraph() {
	// 1) A 4-cycle 0-1-2-3-0.
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 0)

	nbrs, _ := g.Neighbors(0)
	fmt.Println("Neighbors of 0:", nbrs)

	// 2) Toggle a chord in, then out again.
	present, _ := g.ToggleEdge(0, 2)
	fmt.Println("Chord present:", present, "edges:", g.EdgeCount())
	present, _ = g.ToggleEdge(2, 0)
	fmt.Println("Chord present:", present, "edges:", g.EdgeCount())

	// Output:
	// Neighbors of 0: [1 3]
	// Chord present: true edges: 5
	// Chord present: false edges: 4
}
