package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = fmt.Errorf("bfs: %w: start vertex not found", fault.ErrReference)

	// ErrWeightedGraph is returned when BFS is run on a weighted graph.
	ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds parameters and callbacks for one BFS run.
type Options struct {
	// OnLayer is called with every complete layer before the next one is
	// discovered. Returning an error aborts the walk.
	OnLayer func(depth int, ids []string) error

	// MaxDepth < 0 means unlimited; otherwise no vertex deeper than
	// MaxDepth is discovered. 0 visits the start only.
	MaxDepth int

	err error
}

// DefaultOptions returns no layer hook and no depth bound.
func DefaultOptions() Options {
	return Options{
		OnLayer:  func(int, []string) error { return nil },
		MaxDepth: -1,
	}
}

// WithOnLayer registers a callback receiving each whole wave.
func WithOnLayer(fn func(depth int, ids []string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth bounds discovery to depth d (inclusive).
// A negative d is recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	Order  []string
	Depth  map[string]int
	Layers [][]string
}
