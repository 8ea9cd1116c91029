package lagoon

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// trench is a grid of dug cells, each holding the directions it connects to.
type trench struct {
	cells *grid.Grid[grid.DirSet]
}

func newTrench(rows, cols int) (*trench, error) {
	cells, err := grid.New[grid.DirSet](rows, cols)
	if err != nil {
		return nil, err
	}
	return &trench{cells: cells}, nil
}

// dig walks n cells from p towards d and returns the final cell.
func (t *trench) dig(p grid.Pos, d grid.Dir, n int) (grid.Pos, error) {
	for k := 0; k < n; k++ {
		q := p.Move(d)
		if err := t.open(p, d); err != nil {
			return p, err
		}
		if err := t.open(q, d.Opposite()); err != nil {
			return p, err
		}
		p = q
	}
	return p, nil
}

// open adds d to the cell at p. A cell is part of at most one trench
// segment pair, so a repeated or third opening is an overlap.
func (t *trench) open(p grid.Pos, d grid.Dir) error {
	cur, ok := t.cells.Get(p)
	if !ok {
		return fmt.Errorf("lagoon: dig left the grid at %s", p)
	}
	if cur.Has(d) || cur.Len() == 2 {
		return fmt.Errorf("%w: at %s", ErrOverlap, p)
	}
	t.cells.Set(p, cur.With(d))
	return nil
}

// fill scans every row and sums the weight of trench and interior cells.
func (t *trench) fill(weight func(p grid.Pos) (int64, error)) (int64, error) {
	var (
		total int64
		scan  grid.Crossing
	)
	for r := 0; r < t.cells.Rows(); r++ {
		for c := 0; c < t.cells.Cols(); c++ {
			p := grid.Pos{Row: r, Col: c}
			open := t.cells.At(p)
			if open != 0 {
				if err := scan.Boundary(open); err != nil {
					return 0, fmt.Errorf("lagoon: %s: %w", p, err)
				}
			} else if !scan.Inside() {
				continue
			}
			w, err := weight(p)
			if err != nil {
				return 0, err
			}
			if total, err = fault.Add(total, w); err != nil {
				return 0, err
			}
		}
		if err := scan.End(); err != nil {
			return 0, fmt.Errorf("lagoon: row %d: %w", r, err)
		}
	}
	return total, nil
}
