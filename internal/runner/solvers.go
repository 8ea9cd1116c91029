package runner

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/aplenty"
	"github.com/katalvlaran/aoc2023/crucible"
	"github.com/katalvlaran/aoc2023/garden"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/lagoon"
	"github.com/katalvlaran/aoc2023/pipemaze"
	"github.com/katalvlaran/aoc2023/pulse"
)

// Defaults applied when a puzzle block leaves a parameter at zero.
const (
	DefaultMinRun     = 1
	DefaultMaxRun     = 3
	DefaultPresses    = 1000
	DefaultTarget     = "rx"
	DefaultLimit      = 100000
	DefaultBoundSteps = 64
	DefaultTiledSteps = 26501365
)

// Solver computes one answer from raw puzzle input.
type Solver func(p config.Puzzle, input string) (int64, error)

// Registry maps solver labels to solvers.
type Registry map[string]Solver

// Default returns a registry holding every puzzle kernel.
func Default() Registry {
	return Registry{
		"pipemaze": solvePipemaze,
		"crucible": solveCrucible,
		"lagoon":   solveLagoon,
		"aplenty":  solveAplenty,
		"pulse":    solvePulse,
		"garden":   solveGarden,
	}
}

func orDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func badVariant(p config.Puzzle) error {
	return fmt.Errorf("%w: %s has no variant %q", ErrVariant, p.Name, p.Variant)
}

func solvePipemaze(p config.Puzzle, input string) (int64, error) {
	m, err := pipemaze.Parse(input)
	if err != nil {
		return 0, err
	}
	var v int
	switch p.Variant {
	case "", "enclosed":
		v, err = m.Enclosed()
	case "farthest":
		v, err = m.Farthest()
	default:
		return 0, badVariant(p)
	}
	return int64(v), err
}

func solveCrucible(p config.Puzzle, input string) (int64, error) {
	if p.Variant != "" {
		return 0, badVariant(p)
	}
	v, err := crucible.Run(input, orDefault(p.MinRun, DefaultMinRun), orDefault(p.MaxRun, DefaultMaxRun))
	return int64(v), err
}

func solveLagoon(p config.Puzzle, input string) (int64, error) {
	switch p.Variant {
	case "", "plain":
		v, err := lagoon.Run(input)
		return int64(v), err
	case "hex":
		return lagoon.RunHex(input)
	case "shoelace":
		plan, err := lagoon.ParseHex(input)
		if err != nil {
			return 0, err
		}
		return plan.Shoelace()
	}
	return 0, badVariant(p)
}

func solveAplenty(p config.Puzzle, input string) (int64, error) {
	switch p.Variant {
	case "", "combinations":
		return aplenty.Run(input)
	case "ratings":
		s, err := aplenty.Parse(input)
		if err != nil {
			return 0, err
		}
		v, err := s.RatingSum()
		return int64(v), err
	}
	return 0, badVariant(p)
}

func solvePulse(p config.Puzzle, input string) (int64, error) {
	switch p.Variant {
	case "", "product", "until", "cycles":
	default:
		return 0, badVariant(p)
	}
	n, err := pulse.Parse(input)
	if err != nil {
		return 0, err
	}
	target := p.Target
	if target == "" {
		target = DefaultTarget
	}
	limit := orDefault(p.Limit, DefaultLimit)
	switch p.Variant {
	case "until":
		v, err := n.PressesUntilLow(target, limit)
		return int64(v), err
	case "cycles":
		return n.CyclePresses(target, limit)
	}
	return n.PulseProduct(orDefault(p.Presses, DefaultPresses))
}

func solveGarden(p config.Puzzle, input string) (int64, error) {
	switch p.Variant {
	case "", "tiled":
		return garden.Run(input, orDefault(p.Steps, DefaultTiledSteps))
	case "bounded":
		v, err := garden.RunBounded(input, orDefault(p.Steps, DefaultBoundSteps))
		return int64(v), err
	}
	return 0, badVariant(p)
}
