// Package runner dispatches the puzzles of a run plan to their solvers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/ctxlog"
)

var (
	// ErrSolver is returned for a plan label with no registered solver.
	ErrSolver = errors.New("runner: unknown solver")

	// ErrVariant is returned for a variant the solver does not offer.
	ErrVariant = errors.New("runner: unknown variant")
)

// ReadFunc loads an input file. os.ReadFile satisfies it.
type ReadFunc func(name string) ([]byte, error)

// Result is the answer to one puzzle block.
type Result struct {
	Puzzle  config.Puzzle
	Answer  int64
	Elapsed time.Duration
}

// Label renders the puzzle as name or name/variant.
func (r Result) Label() string {
	if r.Puzzle.Variant == "" {
		return r.Puzzle.Name
	}
	return r.Puzzle.Name + "/" + r.Puzzle.Variant
}

// Runner executes plans sequentially.
type Runner struct {
	solvers Registry
	read    ReadFunc
}

// New returns a Runner over solvers reading inputs with read.
func New(solvers Registry, read ReadFunc) *Runner {
	return &Runner{solvers: solvers, read: read}
}

// Run solves every puzzle in plan, or only those labelled only when it is
// non-empty. It stops at the first failure.
func (r *Runner) Run(ctx context.Context, plan *config.Plan, only string) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	var results []Result
	for _, pz := range plan.Puzzles {
		if only != "" && pz.Name != only {
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.solve(ctx, pz)
		if err != nil {
			logger.Error("Puzzle failed.", "puzzle", pz.Name, "variant", pz.Variant, "error", err)
			return results, err
		}
		logger.Info("Puzzle solved.", "puzzle", res.Label(), "answer", res.Answer, "elapsed", res.Elapsed)
		results = append(results, res)
	}
	if only != "" && len(results) == 0 {
		return nil, fmt.Errorf("%w: plan has no %q puzzle", ErrSolver, only)
	}
	return results, nil
}

func (r *Runner) solve(ctx context.Context, pz config.Puzzle) (Result, error) {
	solver, ok := r.solvers[pz.Name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrSolver, pz.Name)
	}
	ctxlog.FromContext(ctx).Debug("Reading input.", "puzzle", pz.Name, "path", pz.Input)
	raw, err := r.read(pz.Input)
	if err != nil {
		return Result{}, fmt.Errorf("runner: %s: %w", pz.Name, err)
	}
	start := time.Now()
	answer, err := solver(pz, string(raw))
	if err != nil {
		return Result{}, fmt.Errorf("runner: %s: %w", pz.Name, err)
	}
	return Result{Puzzle: pz, Answer: answer, Elapsed: time.Since(start)}, nil
}
