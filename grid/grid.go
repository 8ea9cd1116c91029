package grid

import (
	"strings"

	"github.com/katalvlaran/aoc2023/core"
)

// Grid is a rectangular array of T stored row-major. It is not safe for
// concurrent mutation; solvers build one per call.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New allocates a rows×cols grid of zero values.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// Lines splits puzzle text into lines, dropping a trailing newline and any
// carriage returns.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Parse builds a grid from line-oriented text, converting each byte with conv.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs, or the first error from conv.
// Complexity: O(R×C).
func Parse[T any](input string, conv func(p Pos, b byte) (T, error)) (*Grid[T], error) {
	lines := Lines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g, err := New[T](len(lines), len(lines[0]))
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, ErrNonRectangular
		}
		for c := 0; c < len(line); c++ {
			p := Pos{r, c}
			v, err := conv(p, line[c])
			if err != nil {
				return nil, err
			}
			g.cells[g.index(p)] = v
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows×cols.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// index maps p to a row-major index.
func (g *Grid[T]) index(p Pos) int { return p.Row*g.cols + p.Col }

// At returns the value at p. It panics when p is out of bounds; use Get for
// bounded access.
func (g *Grid[T]) At(p Pos) T {
	if !g.InBounds(p) {
		panic("grid: position " + p.String() + " out of bounds")
	}
	return g.cells[g.index(p)]
}

// Get returns the value at p and whether p is inside the grid.
func (g *Grid[T]) Get(p Pos) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.index(p)], true
}

// Set stores v at p; out-of-bounds writes are ignored and reported as false.
func (g *Grid[T]) Set(p Pos, v T) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[g.index(p)] = v
	return true
}

// WrapPos reduces p modulo the grid dimensions.
func (g *Grid[T]) WrapPos(p Pos) Pos {
	return Pos{Mod(p.Row, g.rows), Mod(p.Col, g.cols)}
}

// Wrap is toroidal access: the value of the base tile cell under p.
func (g *Grid[T]) Wrap(p Pos) T {
	return g.cells[g.index(g.WrapPos(p))]
}

// Find returns every position whose value satisfies pred, in row-major order.
func (g *Grid[T]) Find(pred func(T) bool) []Pos {
	var out []Pos
	for i, v := range g.cells {
		if pred(v) {
			out = append(out, Pos{i / g.cols, i % g.cols})
		}
	}
	return out
}

// Neighbors returns the in-bounds orthogonal neighbors of p, clockwise from north.
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, 4)
	for _, d := range Cardinals {
		if q := p.Move(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Pos, v T)) {
	for i, v := range g.cells {
		fn(Pos{i / g.cols, i % g.cols}, v)
	}
}

// ToCoreGraph converts the cells accepted by open into an unweighted,
// undirected *core.Graph. Each open cell becomes a vertex with ID p.String()
// and metadata {row, col}; orthogonal open neighbors are joined by an edge.
// Complexity: O(R×C) time and memory.
func (g *Grid[T]) ToCoreGraph(open func(T) bool) *core.Graph {
	cg := core.NewGraph()
	g.Each(func(p Pos, v T) {
		if !open(v) {
			return
		}
		_ = cg.AddVertex(p.String())
		if vx, err := cg.Vertex(p.String()); err == nil {
			vx.Metadata["row"] = p.Row
			vx.Metadata["col"] = p.Col
		}
		// Link back to the already-visited north and west neighbors only,
		// so each undirected edge is added once.
		for _, d := range [2]Dir{N, W} {
			q := p.Move(d)
			if w, ok := g.Get(q); ok && open(w) {
				_, _ = cg.AddEdge(q.String(), p.String(), 0)
			}
		}
	})

	return cg
}
