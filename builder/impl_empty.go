// SPDX-License-Identifier: MIT
// Package: swarmcolor/builder
//
// impl_empty.go: Empty(n) and EdgeList(n, pairs) constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

const (
	methodEmpty    = "Empty"
	methodEdgeList = "EdgeList"
	minEmptyNodes  = 1
)

// Empty returns a Constructor that adds n isolated nodes (the edgeless graph).
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}
		g.Grow(n)

		return nil
	}
}

// EdgeList returns a Constructor that grows the graph to n nodes and inserts
// the given pairs in order. Duplicates are absorbed by core.Graph; loops or
// out-of-range endpoints fail with ErrConstructFailed.
func EdgeList(n int, pairs [][2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEdgeList, n, minEmptyNodes, ErrTooFewVertices)
		}
		g.Grow(n)
		for _, e := range pairs {
			if err := addEdge(g, methodEdgeList, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
