package lagoon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/grid"
)

// hexDirs maps the last color digit to a direction.
var hexDirs = [...]grid.Dir{grid.E, grid.S, grid.W, grid.N}

// Parse reads one "<dir> <dist> (#rrggbb)" step per line.
func Parse(input string) (Plan, error) {
	lines := grid.Lines(input)
	plan := make(Plan, 0, len(lines))
	for i, line := range lines {
		s, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrLine, i+1, err)
		}
		plan = append(plan, s)
	}

	return plan, nil
}

func parseLine(line string) (Step, error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return Step{}, fmt.Errorf("want 3 fields, got %d", len(f))
	}
	if len(f[0]) != 1 {
		return Step{}, fmt.Errorf("direction %q", f[0])
	}
	d, ok := grid.ParseDir(f[0][0])
	if !ok {
		return Step{}, fmt.Errorf("direction %q", f[0])
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n < 1 {
		return Step{}, fmt.Errorf("distance %q", f[1])
	}
	color := strings.TrimSuffix(strings.TrimPrefix(f[2], "(#"), ")")
	if len(color) != 6 || len(f[2]) != 9 {
		return Step{}, fmt.Errorf("color %q", f[2])
	}
	if _, err := strconv.ParseUint(color, 16, 32); err != nil {
		return Step{}, fmt.Errorf("color %q", f[2])
	}

	return Step{Dir: d, Dist: n, Color: color}, nil
}

// Decode reinterprets the step's color as a hex-encoded step.
func (s Step) Decode() (Step, error) {
	if len(s.Color) != 6 {
		return Step{}, fmt.Errorf("%w: color %q", ErrLine, s.Color)
	}
	n, err := strconv.ParseInt(s.Color[:5], 16, 64)
	if err != nil || n < 1 {
		return Step{}, fmt.Errorf("%w: hex distance %q", ErrLine, s.Color[:5])
	}
	k := s.Color[5] - '0'
	if int(k) >= len(hexDirs) {
		return Step{}, fmt.Errorf("%w: hex direction %q", ErrLine, s.Color[5])
	}

	return Step{Dir: hexDirs[k], Dist: int(n), Color: s.Color}, nil
}

// ParseHex reads a plan and decodes every color into a step.
func ParseHex(input string) (Plan, error) {
	plan, err := Parse(input)
	if err != nil {
		return nil, err
	}
	for i := range plan {
		if plan[i], err = plan[i].Decode(); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return plan, nil
}
