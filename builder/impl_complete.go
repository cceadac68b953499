// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once, lexicographic by (i,j).
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
// K_n needs exactly n colours, which makes it the canonical non-convergence
// fixture for palettes smaller than n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
