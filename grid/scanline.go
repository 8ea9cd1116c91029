package grid

import "fmt"

// Crossing tracks interior parity while a row of a closed, non-self-crossing
// loop is scanned west to east. Feed every loop cell to Boundary with its two
// openings; cells between boundary cells are interior exactly when Inside
// reports true.
//
// Ridge rules, with the ridge remembered by the vertical half of its opening
// corner (F opens south, L opens north):
//
//	|          flips parity
//	-          rides the ridge, no change
//	F, L       open a ridge
//	J after F  flips (the loop crosses the row)
//	7 after L  flips
//	7 after F  no change (the loop touches the row and turns back)
//	J after L  no change
type Crossing struct {
	inside bool
	ridge  Dir
}

// Inside reports whether the scan is currently inside the loop.
func (c *Crossing) Inside() bool { return c.inside }

// Boundary advances the scanner over a loop cell with the given openings.
func (c *Crossing) Boundary(open DirSet) error {
	if open.Len() != 2 {
		return fmt.Errorf("%w: got %s", ErrOpenings, open)
	}
	switch {
	case open.Has(N) && open.Has(S):
		if c.ridge != None {
			return fmt.Errorf("%w: vertical cell inside ridge", ErrRidge)
		}
		c.inside = !c.inside
	case open.Has(E) && open.Has(W):
		if c.ridge == None {
			return fmt.Errorf("%w: horizontal cell without ridge", ErrRidge)
		}
	case open.Has(E):
		if c.ridge != None {
			return fmt.Errorf("%w: ridge opened twice", ErrRidge)
		}
		c.ridge = vertical(open)
	default:
		if c.ridge == None {
			return fmt.Errorf("%w: corner %s closes no ridge", ErrRidge, open)
		}
		if vertical(open) != c.ridge {
			c.inside = !c.inside
		}
		c.ridge = None
	}

	return nil
}

// End checks that the row finished outside the loop with no open ridge
// and resets the scanner for the next row.
func (c *Crossing) End() error {
	defer func() { *c = Crossing{} }()
	if c.ridge != None {
		return fmt.Errorf("%w: ridge left open at end of row", ErrRidge)
	}
	if c.inside {
		return ErrParity
	}
	return nil
}

// vertical returns the N or S member of a corner set.
func vertical(open DirSet) Dir {
	if open.Has(N) {
		return N
	}
	return S
}
