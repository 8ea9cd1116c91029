package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for pipe mazes.
var (
	// ErrTile indicates a byte that is not one of |-LJ7F.S.
	ErrTile = fmt.Errorf("pipemaze: %w: unknown tile", fault.ErrParse)

	// ErrStartCount indicates zero or several S tiles.
	ErrStartCount = fmt.Errorf("pipemaze: %w: maze must contain exactly one start tile", fault.ErrTopology)

	// ErrStartShape indicates that S does not have exactly two connecting neighbors.
	ErrStartShape = fmt.Errorf("pipemaze: %w: start tile must connect to exactly two neighbors", fault.ErrTopology)

	// ErrBrokenLoop indicates that the walker dead-ended or left the grid.
	ErrBrokenLoop = fmt.Errorf("pipemaze: %w: loop does not close", fault.ErrTopology)
)

// Tile is a single maze character.
type Tile byte

// Tile values.
const (
	Vertical   Tile = '|'
	Horizontal Tile = '-'
	NorthEast  Tile = 'L'
	NorthWest  Tile = 'J'
	SouthWest  Tile = '7'
	SouthEast  Tile = 'F'
	Ground     Tile = '.'
	Start      Tile = 'S'
)

var connectors = [...]Tile{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

// Openings returns the directions a tile connects to; Ground and Start open nothing.
func (t Tile) Openings() grid.DirSet {
	switch t {
	case Vertical:
		return grid.SetOf(grid.N, grid.S)
	case Horizontal:
		return grid.SetOf(grid.E, grid.W)
	case NorthEast:
		return grid.SetOf(grid.N, grid.E)
	case NorthWest:
		return grid.SetOf(grid.N, grid.W)
	case SouthWest:
		return grid.SetOf(grid.S, grid.W)
	case SouthEast:
		return grid.SetOf(grid.S, grid.E)
	}
	return 0
}

// Valid reports whether t is one of the eight maze characters.
func (t Tile) Valid() bool {
	return t == Ground || t == Start || t.Openings() != 0
}

// TileFor returns the connector whose openings equal open.
func TileFor(open grid.DirSet) (Tile, bool) {
	for _, t := range connectors {
		if t.Openings() == open {
			return t, true
		}
	}
	return Ground, false
}

func (t Tile) String() string { return string(rune(t)) }

// Maze is a parsed pipe maze with its single start position.
type Maze struct {
	tiles *grid.Grid[Tile]
	start grid.Pos
}

// Loop is the closed path through S.
type Loop struct {
	// Path lists loop cells in walking order, starting at S.
	Path []grid.Pos
	// StartTile is the connector shape S stands for.
	StartTile Tile

	on *grid.Grid[bool]
}

// Contains reports whether p is a loop cell.
func (l *Loop) Contains(p grid.Pos) bool {
	on, _ := l.on.Get(p)
	return on
}

// Census partitions every maze cell into loop, enclosed and exterior cells.
type Census struct {
	Loop, Inside, Outside int
}
