// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_grid.go: implementation of Grid(width, height) constructor.
//
// Contract:
//   • width ≥ 1 and height ≥ 1 (else ErrTooFewVertices).
//   • Cell (x,y) maps to node y*width + x.
//   • 4-connectivity: each cell links to its right and lower neighbour, so
//     every undirected edge is emitted exactly once.
//
// Complexity:
//   • Time: O(W·H) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodGrid   = "Grid"
	minGridSide  = 1
	minGridNodes = 2
)

// gridForward lists the offsets {dx,dy} that reach a not-yet-visited
// 4-neighbour when cells are scanned in row-major order.
var gridForward = [][2]int{{1, 0}, {0, 1}}

// Grid returns a Constructor that builds a width×height lattice with
// 4-connectivity. The resulting graph is bipartite for every size.
func Grid(width, height int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if width < minGridSide || height < minGridSide {
			return fmt.Errorf("%s: %dx%d < min=%dx%d: %w",
				methodGrid, width, height, minGridSide, minGridSide, ErrTooFewVertices)
		}
		g.Grow(width * height)

		var x, y int
		for y = 0; y < height; y++ {
			for x = 0; x < width; x++ {
				for _, d := range gridForward {
					nx, ny := x+d[0], y+d[1]
					if nx >= width || ny >= height {
						continue
					}
					if err := addEdge(g, methodGrid, y*width+x, ny*width+nx); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridFor returns a Grid holding exactly n cells: the widest side not
// exceeding √n that divides n. Primes degrade to a 1×n strip (a path).
func GridFor(n int) Constructor {
	if n < minGridNodes {
		return func(*core.Graph, builderConfig) error {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGrid, n, minGridNodes, ErrTooFewVertices)
		}
	}
	w := 1
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			w = d
		}
	}

	return Grid(n/w, w)
}
