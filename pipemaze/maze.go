package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/grid"
)

// Parse reads a rectangular maze containing exactly one S.
// Returns ErrTile for an unknown character and ErrStartCount when S is
// missing or repeated, besides the grid.Parse shape errors.
func Parse(input string) (*Maze, error) {
	tiles, err := grid.Parse(input, func(p grid.Pos, b byte) (Tile, error) {
		t := Tile(b)
		if !t.Valid() {
			return Ground, fmt.Errorf("%w %q at %s", ErrTile, b, p)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	starts := tiles.Find(func(t Tile) bool { return t == Start })
	if len(starts) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, len(starts))
	}

	return &Maze{tiles: tiles, start: starts[0]}, nil
}

// Start returns the position of S.
func (m *Maze) Start() grid.Pos { return m.start }

// StartTile resolves the shape of S from the neighbors that open back to it.
func (m *Maze) StartTile() (Tile, error) {
	var open grid.DirSet
	for _, d := range grid.Cardinals {
		t, ok := m.tiles.Get(m.start.Move(d))
		if ok && t.Openings().Has(d.Opposite()) {
			open = open.With(d)
		}
	}
	if open.Len() != 2 {
		return Ground, fmt.Errorf("%w: neighbors open %s", ErrStartShape, open)
	}
	t, _ := TileFor(open)

	return t, nil
}

// tileAt returns the effective tile at p, with S replaced by its shape.
func (m *Maze) tileAt(p grid.Pos, startTile Tile) Tile {
	if p == m.start {
		return startTile
	}
	return m.tiles.At(p)
}

// Loop walks the loop from S and returns it.
// The walk leaves S through its first opening clockwise from north.
func (m *Maze) Loop() (*Loop, error) {
	startTile, err := m.StartTile()
	if err != nil {
		return nil, err
	}
	on, err := grid.New[bool](m.tiles.Rows(), m.tiles.Cols())
	if err != nil {
		return nil, err
	}

	path := []grid.Pos{m.start}
	on.Set(m.start, true)
	heading := startTile.Openings().Dirs()[0]
	p := m.start
	for steps := 0; ; steps++ {
		if steps > m.tiles.Len() {
			return nil, fmt.Errorf("%w: walk exceeded %d steps", ErrBrokenLoop, m.tiles.Len())
		}
		p = p.Move(heading)
		if p == m.start {
			break
		}
		t, ok := m.tiles.Get(p)
		if !ok {
			return nil, fmt.Errorf("%w: walker left the maze at %s", ErrBrokenLoop, p)
		}
		open := t.Openings()
		back := heading.Opposite()
		if !open.Has(back) || open.Len() != 2 {
			return nil, fmt.Errorf("%w: %s at %s does not accept a pipe from %s", ErrBrokenLoop, t, p, back)
		}
		if on.At(p) {
			return nil, fmt.Errorf("%w: revisited %s", ErrBrokenLoop, p)
		}
		on.Set(p, true)
		path = append(path, p)
		for _, d := range open.Dirs() {
			if d != back {
				heading = d
			}
		}
	}

	return &Loop{Path: path, StartTile: startTile, on: on}, nil
}

// Farthest returns the number of steps from S to the loop tile farthest
// from it along the loop.
func (m *Maze) Farthest() (int, error) {
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	return len(loop.Path) / 2, nil
}

// Census classifies every cell with a row-major ray-casting scan.
func (m *Maze) Census() (Census, error) {
	loop, err := m.Loop()
	if err != nil {
		return Census{}, err
	}

	var (
		c    Census
		scan grid.Crossing
	)
	for r := 0; r < m.tiles.Rows(); r++ {
		for col := 0; col < m.tiles.Cols(); col++ {
			p := grid.Pos{Row: r, Col: col}
			switch {
			case loop.Contains(p):
				c.Loop++
				if err := scan.Boundary(m.tileAt(p, loop.StartTile).Openings()); err != nil {
					return Census{}, fmt.Errorf("pipemaze: row %d col %d: %w", r, col, err)
				}
			case scan.Inside():
				c.Inside++
			default:
				c.Outside++
			}
		}
		if err := scan.End(); err != nil {
			return Census{}, fmt.Errorf("pipemaze: row %d: %w", r, err)
		}
	}

	return c, nil
}

// Enclosed returns the number of tiles enclosed by the loop.
func (m *Maze) Enclosed() (int, error) {
	c, err := m.Census()
	if err != nil {
		return 0, err
	}
	return c.Inside, nil
}

// Run parses input and returns the enclosed tile count.
func Run(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Enclosed()
}
