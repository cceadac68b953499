// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n on nodes 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
