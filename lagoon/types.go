package lagoon

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

// Sentinel errors for dig plans.
var (
	// ErrLine indicates a malformed plan line.
	ErrLine = fmt.Errorf("lagoon: %w: bad plan line", fault.ErrParse)

	// ErrEmptyPlan indicates a plan with no steps.
	ErrEmptyPlan = fmt.Errorf("lagoon: %w: plan has no steps", fault.ErrTopology)

	// ErrNotClosed indicates that the plan does not return to its origin.
	ErrNotClosed = fmt.Errorf("lagoon: %w: trench does not close", fault.ErrTopology)

	// ErrOverlap indicates that the trench touches or crosses itself.
	ErrOverlap = fmt.Errorf("lagoon: %w: trench overlaps itself", fault.ErrTopology)
)

// Step is one straight dig instruction.
type Step struct {
	Dir   grid.Dir
	Dist  int
	Color string // six hex digits without '#'
}

// Plan is an ordered list of steps starting at the origin.
type Plan []Step

// vertices returns the corner positions visited by the plan, origin first.
// The plan must end where it started.
func (p Plan) vertices() ([]grid.Pos, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPlan
	}
	vs := make([]grid.Pos, 0, len(p)+1)
	cur := grid.Pos{}
	vs = append(vs, cur)
	for _, s := range p {
		cur = cur.Step(s.Dir, s.Dist)
		vs = append(vs, cur)
	}
	if cur != vs[0] {
		return nil, fmt.Errorf("%w: ends at %s", ErrNotClosed, cur)
	}

	return vs[:len(vs)-1], nil
}
