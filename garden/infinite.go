package garden

import "github.com/katalvlaran/aoc2023/grid"

const (
	minRadius = 2
	maxRadius = 12

	// maxDirectSide and maxDirectCells bound the block used to count a map
	// whose tile distances never settle.
	maxDirectSide  = 1 << 12
	maxDirectCells = 1 << 24
)

// block holds BFS distances over the tiles (ti, tj) with |ti|, |tj| ≤ radius.
type block struct {
	g          *Garden
	radius     int
	h, w       int // tile size
	rows, cols int // block size in cells
	src        grid.Pos
	dist       []int
}

// newBlock runs a BFS from S in the centre tile, confined to the block.
func (g *Garden) newBlock(radius int) *block {
	b := &block{
		g:      g,
		radius: radius,
		h:      g.plots.Rows(),
		w:      g.plots.Cols(),
	}
	b.rows, b.cols = (2*radius+1)*b.h, (2*radius+1)*b.w
	b.dist = make([]int, b.rows*b.cols)
	for i := range b.dist {
		b.dist[i] = -1
	}

	b.src = grid.Pos{Row: radius*b.h + g.start.Row, Col: radius*b.w + g.start.Col}
	b.dist[b.src.Row*b.cols+b.src.Col] = 0
	queue := []grid.Pos{b.src}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		d := b.dist[p.Row*b.cols+p.Col]
		for _, dir := range grid.Cardinals {
			q := p.Move(dir)
			if q.Row < 0 || q.Row >= b.rows || q.Col < 0 || q.Col >= b.cols {
				continue
			}
			if i := q.Row*b.cols + q.Col; b.dist[i] < 0 && g.plots.Wrap(q) {
				b.dist[i] = d + 1
				queue = append(queue, q)
			}
		}
	}
	return b
}

// at returns the distance of cell (r, c) of tile (ti, tj), or -1.
func (b *block) at(ti, tj, r, c int) int {
	row := (ti+b.radius)*b.h + r
	col := (tj+b.radius)*b.w + c
	return b.dist[row*b.cols+col]
}

// reach is the largest step count whose whole diamond around S lies inside
// the block. Up to it, block distances equal distances on the tiling.
func (b *block) reach() int {
	return min(b.src.Row, b.src.Col, b.rows-1-b.src.Row, b.cols-1-b.src.Col)
}

// direct counts endpoints from block distances alone.
func (b *block) direct(steps int) int64 {
	var n int64
	for _, d := range b.dist {
		if d >= 0 && d <= steps && (steps-d)%2 == 0 {
			n++
		}
	}
	return n
}

// growth is the distance added by each further tile beyond the block edge,
// per direction.
type growth struct {
	down, up, right, left int
}

// growth measures, for each direction, the increment between every tile of
// the outer ring and its neighbor one ring in. It fails unless the increment
// is one positive constant per direction.
func (b *block) growth() (growth, bool) {
	R := b.radius
	var gr growth
	var ok bool
	if gr.down, ok = b.axis(b.h, func(k int) (int, int, int, int) { return R, k, R - 1, k }); !ok {
		return gr, false
	}
	if gr.up, ok = b.axis(b.h, func(k int) (int, int, int, int) { return -R, k, 1 - R, k }); !ok {
		return gr, false
	}
	if gr.right, ok = b.axis(b.w, func(k int) (int, int, int, int) { return k, R, k, R - 1 }); !ok {
		return gr, false
	}
	if gr.left, ok = b.axis(b.w, func(k int) (int, int, int, int) { return k, -R, k, 1 - R }); !ok {
		return gr, false
	}
	return gr, true
}

// axis runs increment over one side of the ring. A side with no reachable
// cell takes span as its increment; nothing is ever counted through it.
func (b *block) axis(span int, pair func(k int) (ti, tj, ui, uj int)) (int, bool) {
	delta, seen := 0, false
	for k := -b.radius; k <= b.radius; k++ {
		d, reached, ok := b.increment(pair(k))
		if !ok {
			return 0, false
		}
		if !reached {
			continue
		}
		if seen && d != delta {
			return 0, false
		}
		delta, seen = d, true
	}
	if !seen {
		return span, true
	}
	return delta, delta > 0
}

// increment returns δ such that tile (ti, tj) equals tile (ui, uj) plus δ on
// every cell. reached is false when neither tile has a reachable cell.
func (b *block) increment(ti, tj, ui, uj int) (delta int, reached, ok bool) {
	for r := 0; r < b.h; r++ {
		for c := 0; c < b.w; c++ {
			outer, inner := b.at(ti, tj, r, c), b.at(ui, uj, r, c)
			if (outer < 0) != (inner < 0) {
				return 0, false, false
			}
			if outer < 0 {
				continue
			}
			if reached && outer-inner != delta {
				return 0, false, false
			}
			delta, reached = outer-inner, true
		}
	}
	return delta, reached, true
}

// extend counts endpoints inside the block, then the tiles beyond each edge
// tile as an arithmetic ray and beyond each corner tile as a quadrant.
func (b *block) extend(steps int, gr growth) int64 {
	n := int64(steps)
	R := b.radius
	var total int64
	for ti := -R; ti <= R; ti++ {
		vert := int64(gr.down)
		if ti < 0 {
			vert = int64(gr.up)
		}
		for tj := -R; tj <= R; tj++ {
			horiz := int64(gr.right)
			if tj < 0 {
				horiz = int64(gr.left)
			}
			rowEdge, colEdge := grid.Abs(ti) == R, grid.Abs(tj) == R
			for r := 0; r < b.h; r++ {
				for c := 0; c < b.w; c++ {
					d := b.at(ti, tj, r, c)
					if d < 0 {
						continue
					}
					rem := n - int64(d)
					if rem >= 0 && rem%2 == 0 {
						total++
					}
					switch {
					case rowEdge && colEdge:
						total += quadrant(rem, vert, horiz)
					case rowEdge:
						total += ray(rem, vert)
					case colEdge:
						total += ray(rem, horiz)
					}
				}
			}
		}
	}
	return total
}

// Reachable counts N-step endpoints on the infinite tiling without
// enumerating the frontier. Small N are counted straight from block
// distances. Larger N are extended arithmetically once the outer ring of
// tiles grows by a constant per direction. Maps that never settle are
// counted from a block wide enough to hold every N-step path, and return
// ErrUnstable when that block would be too large.
// Complexity: O(radius²·H·W·log N) once settled.
func (g *Garden) Reachable(steps int) (int64, error) {
	if steps < 0 {
		return 0, ErrSteps
	}
	if g.stranded(true) {
		return int64(strandedCount(steps)), nil
	}
	for radius := minRadius; radius <= maxRadius; radius++ {
		b := g.newBlock(radius)
		if steps <= b.reach() {
			return b.direct(steps), nil
		}
		if gr, ok := b.growth(); ok {
			return b.extend(steps, gr), nil
		}
	}
	return g.covering(steps)
}

// covering counts endpoints from a block whose reach is at least steps.
func (g *Garden) covering(steps int) (int64, error) {
	h, w := g.plots.Rows(), g.plots.Cols()
	radius := steps/min(h, w) + 1
	side := 2*radius + 1
	if side > maxDirectSide || side*side*h*w > maxDirectCells {
		return 0, ErrUnstable
	}
	return g.newBlock(radius).direct(steps), nil
}

// ray counts k ≥ 1 with k·step ≤ rem and k·step ≡ rem (mod 2).
func ray(rem, step int64) int64 {
	if rem < step {
		return 0
	}
	kmax := rem / step
	if step%2 == 0 {
		if rem%2 != 0 {
			return 0
		}
		return kmax
	}
	return countParity(1, kmax, rem%2)
}

// quadrant counts pairs (a, b) ≥ 0, not both zero, with a·h + b·w ≤ rem and
// a·h + b·w ≡ rem (mod 2). Splitting a by parity fixes the parity b needs,
// which leaves sums of floor((x - i·A) / B) over i.
func quadrant(rem, h, w int64) int64 {
	if rem < 0 {
		return 0
	}
	var total int64
	for odd := int64(0); odd <= 1; odd++ {
		left := rem - odd*h
		if left < 0 {
			continue
		}
		if w%2 == 0 {
			if left%2 == 0 {
				total += lattice(left, 2*h, w)
			}
			continue
		}
		total += lattice(left-(left%2)*w, 2*h, 2*w)
	}
	if rem%2 == 0 {
		total-- // (0, 0)
	}
	return total
}

// lattice returns Σ_{i=0}^{⌊x/a⌋} (⌊(x - i·a)/b⌋ + 1), or 0 for x < 0.
func lattice(x, a, b int64) int64 {
	if x < 0 {
		return 0
	}
	m := x / a
	return floorSum(m+1, b, a, x-m*a) + m + 1
}

// floorSum returns Σ_{i=0}^{n-1} ⌊(a·i + c)/m⌋ for a, c ≥ 0 in O(log m).
func floorSum(n, m, a, c int64) int64 {
	var total int64
	for {
		if a >= m {
			total += (n - 1) * n / 2 * (a / m)
			a %= m
		}
		if c >= m {
			total += n * (c / m)
			c %= m
		}
		y := a*n + c
		if y < m {
			return total
		}
		n, c = y/m, y%m
		m, a = a, m
	}
}

// countParity counts integers in [lo, hi] congruent to p mod 2.
func countParity(lo, hi, p int64) int64 {
	if lo%2 != p {
		lo++
	}
	if lo > hi {
		return 0
	}
	return (hi-lo)/2 + 1
}

// Run counts N-step endpoints on the infinite tiling.
func Run(input string, steps int) (int64, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.Reachable(steps)
}

// RunBounded counts N-step endpoints on the bounded map.
func RunBounded(input string, steps int) (int, error) {
	g, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return g.Bounded(steps)
}
