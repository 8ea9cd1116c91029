package lagoon

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// Raster digs the plan into a unit grid and counts trench plus interior cells.
// Complexity: O(H×W) for the bounding box H×W.
func (p Plan) Raster() (int, error) {
	vs, err := p.vertices()
	if err != nil {
		return 0, err
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs {
		lo.Row, lo.Col = min(lo.Row, v.Row), min(lo.Col, v.Col)
		hi.Row, hi.Col = max(hi.Row, v.Row), max(hi.Col, v.Col)
	}

	t, err := newTrench(hi.Row-lo.Row+3, hi.Col-lo.Col+3)
	if err != nil {
		return 0, err
	}
	cur := grid.Pos{Row: 1 - lo.Row, Col: 1 - lo.Col}
	for _, s := range p {
		if cur, err = t.dig(cur, s.Dir, s.Dist); err != nil {
			return 0, err
		}
	}
	n, err := t.fill(func(grid.Pos) (int64, error) { return 1, nil })

	return int(n), err
}

// Area digs the plan into a coordinate-compressed grid and sums the weights
// of trench and interior cells.
// Complexity: O(n²) for n steps.
func (p Plan) Area() (int64, error) {
	vs, err := p.vertices()
	if err != nil {
		return 0, err
	}
	rows, cols := bands(vs, func(v grid.Pos) int { return v.Row }), bands(vs, func(v grid.Pos) int { return v.Col })
	index := func(v grid.Pos) grid.Pos {
		r, _ := slices.BinarySearch(rows, v.Row)
		c, _ := slices.BinarySearch(cols, v.Col)
		return grid.Pos{Row: r, Col: c}
	}

	t, err := newTrench(len(rows)-1, len(cols)-1)
	if err != nil {
		return 0, err
	}
	cur := index(vs[0])
	for i, s := range p {
		next := index(vs[(i+1)%len(vs)])
		if cur, err = t.dig(cur, s.Dir, cur.Manhattan(next)); err != nil {
			return 0, err
		}
	}

	return t.fill(func(c grid.Pos) (int64, error) {
		h := int64(rows[c.Row+1] - rows[c.Row])
		w := int64(cols[c.Col+1] - cols[c.Col])
		return fault.Mul(h, w)
	})
}

// bands returns the sorted distinct band edges {v, v+1} over all vertices.
func bands(vs []grid.Pos, coord func(grid.Pos) int) []int {
	out := make([]int, 0, 2*len(vs))
	for _, v := range vs {
		out = append(out, coord(v), coord(v)+1)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Shoelace returns the lagoon size from the polygon area A and perimeter P
// as A + P/2 + 1. It does not detect self-overlap.
func (p Plan) Shoelace() (int64, error) {
	vs, err := p.vertices()
	if err != nil {
		return 0, err
	}
	var twice, perim int64
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		x, err := fault.Mul(int64(a.Row), int64(b.Col))
		if err != nil {
			return 0, err
		}
		y, err := fault.Mul(int64(b.Row), int64(a.Col))
		if err != nil {
			return 0, err
		}
		if twice, err = fault.Add(twice, x-y); err != nil {
			return 0, err
		}
		if perim, err = fault.Add(perim, int64(p[i].Dist)); err != nil {
			return 0, err
		}
	}
	if twice == 0 {
		return 0, fmt.Errorf("%w: polygon has zero area", ErrOverlap)
	}

	return grid.Abs(twice)/2 + perim/2 + 1, nil
}

// Run parses a plain plan and rasterizes it.
func Run(input string) (int, error) {
	plan, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return plan.Raster()
}

// RunHex parses a plan through its colors and measures it by compression.
func RunHex(input string) (int64, error) {
	plan, err := ParseHex(input)
	if err != nil {
		return 0, err
	}
	return plan.Area()
}
