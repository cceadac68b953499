package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState is the visitation state of a node.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates a start node outside [0, N).
	ErrStartOutOfRange = errors.New("dfs: start node out of range")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx allows cancellation; checked once per discovered node.
	Ctx context.Context

	// OnVisit runs in pre-order. Returning an error aborts the traversal.
	OnVisit func(node int) error

	// FullTraversal restarts from every unvisited node after the start
	// node's component is done.
	FullTraversal bool
}

// DefaultOptions returns a background context, no hook, single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(node int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a traversal.
type Result struct {
	// Order lists nodes in pre-order.
	Order []int
	// Parent[v] is v's DFS-tree parent, or -1 for roots and unvisited nodes.
	Parent []int
	// Depth[v] is v's depth in its DFS tree, or -1 when unvisited.
	Depth []int
	// Roots lists the tree roots in the order they were started.
	Roots []int
}

// Visited reports whether node was reached.
func (r *Result) Visited(node int) bool {
	return node >= 0 && node < len(r.Depth) && r.Depth[node] >= 0
}

func hookError(node int, err error) error {
	return fmt.Errorf("dfs: OnVisit error at %d: %w", node, err)
}
