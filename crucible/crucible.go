package crucible

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2023/grid"
)

// ParseCosts reads a rectangular grid of decimal digits.
func ParseCosts(input string) (*grid.Grid[int], error) {
	return grid.Parse(input, func(p grid.Pos, b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("%w: %q at %s", ErrBadDigit, b, p)
		}
		return int(b - '0'), nil
	})
}

// Solve returns the minimum loss from (0,0) to the far corner of costs.
func Solve(costs *grid.Grid[int], opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinRun < 1 || cfg.MaxRun < cfg.MinRun {
		return Result{}, fmt.Errorf("%w: min=%d max=%d", ErrBadRun, cfg.MinRun, cfg.MaxRun)
	}

	n := costs.Len() * len(grid.Cardinals)
	r := &runner{
		costs: costs,
		opts:  cfg,
		dist:  make([]int, n),
		done:  make([]bool, n),
		pq:    make(statePQ, 0, costs.Len()),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	r.init()
	r.process()

	return r.result()
}

// runner holds the mutable state for a single search.
type runner struct {
	costs *grid.Grid[int]
	opts  Options
	dist  []int  // best loss per state
	prev  []int  // predecessor state, -1 for seeds
	done  []bool // settled states
	pq    statePQ
}

// state packs (cell, heading) into a dense index.
func (r *runner) state(p grid.Pos, d grid.Dir) int {
	return (p.Row*r.costs.Cols()+p.Col)*len(grid.Cardinals) + d.Index()
}

func (r *runner) unpack(s int) (grid.Pos, grid.Dir) {
	cell, d := s/len(grid.Cardinals), s%len(grid.Cardinals)
	return grid.Pos{Row: cell / r.costs.Cols(), Col: cell % r.costs.Cols()}, grid.Cardinals[d]
}

func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt
	}
	for i := range r.prev {
		r.prev[i] = -1
	}
	heap.Init(&r.pq)
	for _, d := range []grid.Dir{grid.S, grid.E} {
		s := r.state(grid.Pos{}, d)
		r.dist[s] = 0
		heap.Push(&r.pq, &stateItem{state: s, loss: 0})
	}
}

// process settles states in loss order until the heap is empty.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		if r.done[item.state] {
			continue
		}
		r.done[item.state] = true
		r.relax(item.state)
	}
}

// relax turns left and right from s and offers every legal stop.
func (r *runner) relax(s int) {
	p, heading := r.unpack(s)
	for _, d := range heading.Perpendicular() {
		loss := r.dist[s]
		for k := 1; k <= r.opts.MaxRun; k++ {
			q := p.Step(d, k)
			c, ok := r.costs.Get(q)
			if !ok {
				break
			}
			loss += c
			if k < r.opts.MinRun {
				continue
			}
			t := r.state(q, d)
			if loss >= r.dist[t] {
				continue
			}
			r.dist[t] = loss
			if r.prev != nil {
				r.prev[t] = s
			}
			heap.Push(&r.pq, &stateItem{state: t, loss: loss})
		}
	}
}

// result picks the cheapest slot at the target and rebuilds the route.
func (r *runner) result() (Result, error) {
	target := grid.Pos{Row: r.costs.Rows() - 1, Col: r.costs.Cols() - 1}
	best := -1
	for _, d := range grid.Cardinals {
		s := r.state(target, d)
		if r.dist[s] != math.MaxInt && (best < 0 || r.dist[s] < r.dist[best]) {
			best = s
		}
	}
	if best < 0 {
		return Result{}, fmt.Errorf("%w: %dx%d grid", ErrNoPath, r.costs.Rows(), r.costs.Cols())
	}

	res := Result{Loss: r.dist[best]}
	if r.prev != nil {
		res.Path = r.path(best)
	}
	return res, nil
}

// path expands the chain of run endpoints into individual cells.
func (r *runner) path(end int) []grid.Pos {
	var rev []grid.Pos
	for s := end; ; s = r.prev[s] {
		p, _ := r.unpack(s)
		if r.prev[s] < 0 {
			rev = append(rev, p)
			break
		}
		from, _ := r.unpack(r.prev[s])
		for q := p; q != from; q = q.Move(dirTowards(q, from)) {
			rev = append(rev, q)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// dirTowards returns the cardinal step from p towards q on a shared row or column.
func dirTowards(p, q grid.Pos) grid.Dir {
	switch {
	case q.Row < p.Row:
		return grid.N
	case q.Row > p.Row:
		return grid.S
	case q.Col < p.Col:
		return grid.W
	default:
		return grid.E
	}
}

// Run parses input and solves it with the given run bounds.
func Run(input string, minRun, maxRun int) (int, error) {
	costs, err := ParseCosts(input)
	if err != nil {
		return 0, err
	}
	res, err := Solve(costs, WithMinRun(minRun), WithMaxRun(maxRun))
	if err != nil {
		return 0, err
	}
	return res.Loss, nil
}

// stateItem is a heap entry: a search state and the loss it was pushed with.
type stateItem struct {
	state int
	loss  int
}

// statePQ is a min-heap of *stateItem ordered by loss. Stale entries stay in
// the heap and are skipped when popped.
type statePQ []*stateItem

func (pq statePQ) Len() int           { return len(pq) }
func (pq statePQ) Less(i, j int) bool { return pq[i].loss < pq[j].loss }
func (pq statePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
