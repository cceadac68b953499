// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Node 0 is the hub; leaves 1..n-1 are attached in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHub      = 0
)

// Star returns a Constructor that builds a star: hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for leaf := starHub + 1; leaf < n; leaf++ {
			if err := addEdge(g, methodStar, starHub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
