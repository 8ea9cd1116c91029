package bfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// BFS runs a layered breadth-first search on g from startID.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
// ErrOptionViolation or a wrapped hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order: make([]string, 0, n),
			Depth: make(map[string]int, n),
		},
	}
	w.res.Depth[startID] = 0

	return w.res, w.loop([]string{startID})
}

// loop visits one layer per iteration until the frontier is empty.
func (w *walker) loop(frontier []string) error {
	for depth := 0; len(frontier) > 0; depth++ {
		w.res.Layers = append(w.res.Layers, frontier)
		if err := w.opts.OnLayer(depth, frontier); err != nil {
			return fmt.Errorf("bfs: OnLayer error at depth %d: %w", depth, err)
		}
		w.res.Order = append(w.res.Order, frontier...)
		if w.opts.MaxDepth >= 0 && depth == w.opts.MaxDepth {
			return nil
		}

		next, err := w.expand(frontier, depth+1)
		if err != nil {
			return err
		}
		frontier = next
	}
	return nil
}

// expand discovers the unseen neighbors of a layer, assigning them depth d.
func (w *walker) expand(frontier []string, d int) ([]string, error) {
	var next []string
	for _, id := range frontier {
		nbrs, err := w.graph.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nbr := range nbrs {
			if _, seen := w.res.Depth[nbr]; seen {
				continue
			}
			w.res.Depth[nbr] = d
			next = append(next, nbr)
		}
	}
	return next, nil
}
