package garden

import (
	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/grid"
)

// Frontier returns the set of cells an elf can stand on after exactly steps
// steps. With tiled false, cells outside the map are rock.
// Complexity: O(steps × |frontier|).
func (g *Garden) Frontier(steps int, tiled bool) (map[grid.Pos]struct{}, error) {
	if steps < 0 {
		return nil, ErrSteps
	}
	frontier := map[grid.Pos]struct{}{g.start: {}}
	for i := 0; i < steps; i++ {
		next := make(map[grid.Pos]struct{}, len(frontier)+len(frontier)/2)
		for p := range frontier {
			for _, d := range grid.Cardinals {
				if q := p.Move(d); g.plot(q, tiled) {
					next[q] = struct{}{}
				}
			}
		}
		frontier = next
	}
	return frontier, nil
}

// Simulate returns the size of the frontier after steps steps.
func (g *Garden) Simulate(steps int, tiled bool) (int, error) {
	f, err := g.Frontier(steps, tiled)
	if err != nil {
		return 0, err
	}
	return len(f), nil
}

// Bounded counts N-step endpoints on the bounded map from BFS layers over
// the plot graph. A plot at distance d ≤ N is an endpoint when d and N share
// parity, since the walker can step back and forth along any edge.
// Complexity: O(R×C).
func (g *Garden) Bounded(steps int) (int, error) {
	if steps < 0 {
		return 0, ErrSteps
	}
	if g.stranded(false) {
		return strandedCount(steps), nil
	}
	cg := g.plots.ToCoreGraph(func(plot bool) bool { return plot })
	count := 0
	_, err := bfs.BFS(cg, g.start.String(),
		bfs.WithMaxDepth(steps),
		bfs.WithOnLayer(func(depth int, ids []string) error {
			if (steps-depth)%2 == 0 {
				count += len(ids)
			}
			return nil
		}),
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// stranded reports whether S has no plot next to it, so the walker cannot
// move at all.
func (g *Garden) stranded(tiled bool) bool {
	for _, d := range grid.Cardinals {
		if g.plot(g.start.Move(d), tiled) {
			return false
		}
	}
	return true
}

// strandedCount is the endpoint count of a walker that cannot move.
func strandedCount(steps int) int {
	if steps == 0 {
		return 1
	}
	return 0
}
