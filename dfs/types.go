package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = fmt.Errorf("dfs: %w: start vertex not found", fault.ErrReference)

	// ErrUndirected indicates a directed-only query on an undirected graph.
	ErrUndirected = errors.New("dfs: graph must be directed")

	// ErrCycleDetected indicates a directed cycle.
	ErrCycleDetected = fmt.Errorf("dfs: %w: cycle detected", fault.ErrTopology)
)

// Option configures DFS traversal.
type Option func(*Options)

// Options holds hooks for DFS.
type Options struct {
	// OnVisit runs on discovery (pre-order); an error aborts the walk.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records vertices in finishing (post-order) sequence.
	Order []string
	// Depth maps each vertex to its depth in the DFS tree.
	Depth map[string]int
	// Parent maps each non-root vertex to its discoverer.
	Parent map[string]string
}

// Visited reports whether id was reached.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]
	return ok
}
