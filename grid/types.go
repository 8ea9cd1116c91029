package grid

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2023/fault"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("grid: %w: input grid must have at least one row and one column", fault.ErrParse)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("grid: %w: all rows must have the same length", fault.ErrParse)
	// ErrOpenings indicates a boundary cell that does not open exactly two cardinals.
	ErrOpenings = fmt.Errorf("grid: %w: boundary cell must open exactly two directions", fault.ErrTopology)
	// ErrRidge indicates a corner or straight that does not fit the current ridge.
	ErrRidge = fmt.Errorf("grid: %w: ridge is not properly opened or closed", fault.ErrTopology)
	// ErrParity indicates a row that ends inside the loop.
	ErrParity = fmt.Errorf("grid: %w: row ends with odd crossing parity", fault.ErrTopology)
)

// Pos is a cell on the integer lattice.
type Pos struct {
	Row, Col int
}

// Add returns p translated by q.
func (p Pos) Add(q Pos) Pos { return Pos{p.Row + q.Row, p.Col + q.Col} }

// Move returns the neighbor of p in direction d. Move(None) returns p.
func (p Pos) Move(d Dir) Pos { return p.Add(d.Delta()) }

// Step returns the cell k moves away from p in direction d.
func (p Pos) Step(d Dir, k int) Pos {
	dd := d.Delta()
	return Pos{p.Row + dd.Row*k, p.Col + dd.Col*k}
}

// Manhattan returns |Δrow| + |Δcol|.
func (p Pos) Manhattan(q Pos) int { return Abs(p.Row-q.Row) + Abs(p.Col-q.Col) }

// String renders p as "row,col"; it is also the vertex ID used by ToCoreGraph.
func (p Pos) String() string { return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) }

// ParsePos is the inverse of Pos.String.
func ParsePos(s string) (Pos, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return Pos{}, fault.Parsef(0, "grid: position %q lacks a comma", s)
	}
	row, err := strconv.Atoi(r)
	if err != nil {
		return Pos{}, fault.Parsef(0, "grid: position %q: %v", s, err)
	}
	col, err := strconv.Atoi(c)
	if err != nil {
		return Pos{}, fault.Parsef(0, "grid: position %q: %v", s, err)
	}

	return Pos{row, col}, nil
}

// Dir is a cardinal direction. None is the "no direction yet" sentinel.
type Dir uint8

const (
	None Dir = iota
	N
	E
	S
	W
)

// Cardinals lists the four real directions clockwise from north.
var Cardinals = [4]Dir{N, E, S, W}

var deltas = [...]Pos{None: {0, 0}, N: {-1, 0}, E: {0, 1}, S: {1, 0}, W: {0, -1}}

// Delta returns the unit offset of d.
func (d Dir) Delta() Pos { return deltas[d] }

// Opposite returns the reverse direction; None stays None.
func (d Dir) Opposite() Dir {
	switch d {
	case N:
		return S
	case S:
		return N
	case E:
		return W
	case W:
		return E
	}
	return None
}

// Right turns d clockwise.
func (d Dir) Right() Dir {
	if d == None {
		return None
	}
	return d%4 + 1
}

// Left turns d counter-clockwise.
func (d Dir) Left() Dir {
	if d == None {
		return None
	}
	return (d+2)%4 + 1
}

// Perpendicular returns the two directions at right angles to d.
func (d Dir) Perpendicular() [2]Dir { return [2]Dir{d.Left(), d.Right()} }

// Index maps N,E,S,W to 0..3, the slot used by per-direction tables.
// None maps to -1.
func (d Dir) Index() int { return int(d) - 1 }

// Vertical reports whether d is N or S.
func (d Dir) Vertical() bool { return d == N || d == S }

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	}
	return "none"
}

// ParseDir reads a compass letter (N E S W) or a screen letter (U R D L).
func ParseDir(b byte) (Dir, bool) {
	switch b {
	case 'N', 'U':
		return N, true
	case 'E', 'R':
		return E, true
	case 'S', 'D':
		return S, true
	case 'W', 'L':
		return W, true
	}
	return None, false
}

// DirSet is a set of cardinals.
type DirSet uint8

// SetOf builds a DirSet from the given directions; None is ignored.
func SetOf(dirs ...Dir) DirSet {
	var s DirSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns s ∪ {d}.
func (s DirSet) With(d Dir) DirSet {
	if d == None {
		return s
	}
	return s | 1<<(d-1)
}

// Has reports whether d ∈ s.
func (s DirSet) Has(d Dir) bool { return d != None && s&(1<<(d-1)) != 0 }

// Len returns |s|.
func (s DirSet) Len() int {
	n := 0
	for _, d := range Cardinals {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Dirs lists the members of s clockwise from north.
func (s DirSet) Dirs() []Dir {
	out := make([]Dir, 0, 4)
	for _, d := range Cardinals {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirSet) String() string {
	var b strings.Builder
	for _, d := range s.Dirs() {
		b.WriteString(d.String())
	}
	return "{" + b.String() + "}"
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Mod returns a mod m in [0, m) for positive m.
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
