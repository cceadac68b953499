package dfs

import (
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// frame is one entry of the explicit DFS stack: a node and the index of the
// next neighbour to examine.
type frame struct {
	node int
	next int
	nbrs []int
}

// DFS runs depth-first search on g from start.
// Returns ErrGraphNil, ErrStartOutOfRange, the context error on
// cancellation, or a wrapped OnVisit error.
//
// Complexity: O(N²) on the adjacency-matrix graph.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	res := &Result{
		Order:  make([]int, 0, n),
		Parent: make([]int, n),
		Depth:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		res.Parent[i] = -1
		res.Depth[i] = -1
	}
	state := make([]int, n)

	if err := walk(g, start, state, res, o); err != nil {
		return res, err
	}
	if !o.FullTraversal {
		return res, nil
	}
	for v := 0; v < n; v++ {
		if state[v] == White {
			if err := walk(g, v, state, res, o); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// walk explores the tree rooted at root with an explicit stack.
func walk(g *core.Graph, root int, state []int, res *Result, o Options) error {
	res.Roots = append(res.Roots, root)
	var stack []frame
	discover := func(v, parent, depth int) error {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}
		state[v] = Gray
		res.Parent[v] = parent
		res.Depth[v] = depth
		res.Order = append(res.Order, v)
		if o.OnVisit != nil {
			if err := o.OnVisit(v); err != nil {
				return hookError(v, err)
			}
		}
		nbrs, _ := g.Neighbors(v)
		stack = append(stack, frame{node: v, nbrs: nbrs})
		return nil
	}
	if err := discover(root, -1, 0); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.nbrs) {
			state[top.node] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.nbrs[top.next]
		top.next++
		if state[v] == White {
			if err := discover(v, top.node, res.Depth[top.node]+1); err != nil {
				return err
			}
		}
	}

	return nil
}
