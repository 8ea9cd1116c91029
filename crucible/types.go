package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors returned by the crucible search.
var (
	// ErrBadDigit indicates a non-digit cost cell.
	ErrBadDigit = fmt.Errorf("crucible: %w: cost must be a digit", fault.ErrParse)

	// ErrBadRun indicates inconsistent straight-run bounds.
	ErrBadRun = errors.New("crucible: run bounds require 1 <= min <= max")

	// ErrNoPath indicates that the target cannot be reached under the run bounds.
	ErrNoPath = fmt.Errorf("crucible: %w: target unreachable", fault.ErrTopology)
)

// Options configures a search.
type Options struct {
	MinRun     int  // shortest straight run before a turn or the stop
	MaxRun     int  // longest straight run
	ReturnPath bool // reconstruct the cells of an optimal route
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns MinRun 1, MaxRun 3 and no path.
func DefaultOptions() Options {
	return Options{MinRun: 1, MaxRun: 3}
}

// WithMinRun sets the minimum straight run.
func WithMinRun(n int) Option {
	return func(o *Options) { o.MinRun = n }
}

// WithMaxRun sets the maximum straight run.
func WithMaxRun(n int) Option {
	return func(o *Options) { o.MaxRun = n }
}

// WithReturnPath requests Result.Path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// Result is the outcome of Solve.
type Result struct {
	// Loss is the summed cost of every cell entered; the origin is free.
	Loss int
	// Path lists the cells from origin to target when requested.
	Path []grid.Pos
}
