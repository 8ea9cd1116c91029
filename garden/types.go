package garden

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for garden maps.
var (
	// ErrTile indicates a byte other than '.', '#' or 'S'.
	ErrTile = fmt.Errorf("garden: %w: unknown tile", fault.ErrParse)

	// ErrStartCount indicates zero or several S cells.
	ErrStartCount = fmt.Errorf("garden: %w: map must contain exactly one start", fault.ErrTopology)

	// ErrSteps indicates a negative step budget.
	ErrSteps = errors.New("garden: steps must be non-negative")

	// ErrUnstable indicates that tile distances never became periodic
	// within the largest block tried and N is too large to count directly.
	ErrUnstable = fmt.Errorf("garden: %w: distances do not repeat across tiles", fault.ErrTopology)
)

// Garden is a parsed map; true cells are plots, false cells are rock.
type Garden struct {
	plots *grid.Grid[bool]
	start grid.Pos
}

// Parse reads a rectangular map with exactly one S.
func Parse(input string) (*Garden, error) {
	plots, err := grid.Parse(input, func(p grid.Pos, b byte) (bool, error) {
		switch b {
		case '.', 'S':
			return true, nil
		case '#':
			return false, nil
		}
		return false, fmt.Errorf("%w %q at %s", ErrTile, b, p)
	})
	if err != nil {
		return nil, err
	}

	var starts []grid.Pos
	for r, line := range grid.Lines(input) {
		for c := 0; c < len(line); c++ {
			if line[c] == 'S' {
				starts = append(starts, grid.Pos{Row: r, Col: c})
			}
		}
	}
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, len(starts))
	}

	return &Garden{plots: plots, start: starts[0]}, nil
}

// Start returns the position of S.
func (g *Garden) Start() grid.Pos { return g.start }

// plot reports whether p is a plot, either inside the map only or on the
// infinite tiling.
func (g *Garden) plot(p grid.Pos, tiled bool) bool {
	if tiled {
		return g.plots.Wrap(p)
	}
	ok, _ := g.plots.Get(p)
	return ok
}
