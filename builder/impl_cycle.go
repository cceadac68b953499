// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n on nodes 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		g.Grow(n)

		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
