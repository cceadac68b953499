package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/swarmcolor/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, the context
// error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NodeCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

func (w *walker) enqueue(node, depth, parent int) {
	w.res.Depth[node] = depth
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, depth)
	w.queue = append(w.queue, node)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		node := w.queue[head]
		depth := w.res.Depth[node]
		w.res.Order = append(w.res.Order, node)
		if err := w.opts.OnVisit(node, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", node, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		nbrs, _ := w.graph.Neighbors(node)
		for _, v := range nbrs {
			if w.res.Depth[v] < 0 {
				w.enqueue(v, depth+1, node)
			}
		}
	}

	return nil
}
