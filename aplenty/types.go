package aplenty

import (
	"fmt"

	"github.com/katalvlaran/aoc2023/fault"
)

// Sentinel errors for rule systems.
var (
	// ErrSyntax indicates a malformed workflow or part line.
	ErrSyntax = fmt.Errorf("aplenty: %w: bad syntax", fault.ErrParse)

	// ErrDuplicate indicates two workflows with the same name.
	ErrDuplicate = fmt.Errorf("aplenty: %w: duplicate workflow", fault.ErrParse)

	// ErrNoEntry indicates that no workflow is named "in".
	ErrNoEntry = fmt.Errorf("aplenty: %w: entry workflow %q missing", fault.ErrReference, Entry)

	// ErrUnknownTarget indicates a jump to an undeclared workflow.
	ErrUnknownTarget = fmt.Errorf("aplenty: %w: unknown target", fault.ErrReference)

	// ErrNoFallback indicates a workflow that does not end in an unconditional jump.
	ErrNoFallback = fmt.Errorf("aplenty: %w: workflow must end with a plain target", fault.ErrTopology)
)

// Reserved workflow names.
const (
	Entry  = "in"
	Accept = "A"
	Reject = "R"
)

// Param selects one of the four ratings.
type Param uint8

// Rating parameters in part order.
const (
	X Param = iota
	M
	A
	S
)

const params = "xmas"

// ParseParam maps 'x', 'm', 'a', 's' to a Param.
func ParseParam(b byte) (Param, bool) {
	for i := 0; i < len(params); i++ {
		if params[i] == b {
			return Param(i), true
		}
	}
	return 0, false
}

func (p Param) String() string { return params[p : p+1] }

// Op is the comparison of an instruction.
type Op uint8

// Instruction operators.
const (
	Goto Op = iota
	Less
	Greater
)

// Instruction is one step of a workflow. For Goto, Param and Threshold are unused.
type Instruction struct {
	Op        Op
	Param     Param
	Threshold int
	Target    string
}

// Holds reports whether the condition is true for p.
func (in Instruction) Holds(p Part) bool {
	switch in.Op {
	case Less:
		return p[in.Param] < in.Threshold
	case Greater:
		return p[in.Param] > in.Threshold
	}
	return true
}

func (in Instruction) String() string {
	switch in.Op {
	case Less:
		return fmt.Sprintf("%s<%d:%s", in.Param, in.Threshold, in.Target)
	case Greater:
		return fmt.Sprintf("%s>%d:%s", in.Param, in.Threshold, in.Target)
	}
	return in.Target
}

// Workflow is a named, ordered instruction list.
type Workflow struct {
	Name  string
	Rules []Instruction
}

// Part holds the four ratings indexed by Param.
type Part [4]int

// Rating returns x+m+a+s.
func (p Part) Rating() int { return p[X] + p[M] + p[A] + p[S] }

// Interval is the half-open range [Lo, Hi).
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in the interval, 0 if empty.
func (iv Interval) Len() int64 {
	if iv.Hi <= iv.Lo {
		return 0
	}
	return int64(iv.Hi - iv.Lo)
}

// Rect is a box of parts, one interval per Param.
type Rect [4]Interval

// FullCube returns the box with every rating in [lo, hi).
func FullCube(lo, hi int) Rect {
	iv := Interval{Lo: lo, Hi: hi}
	return Rect{iv, iv, iv, iv}
}

// Empty reports whether any side is empty.
func (r Rect) Empty() bool {
	for _, iv := range r {
		if iv.Len() == 0 {
			return true
		}
	}
	return false
}

// Contains reports whether p lies in r.
func (r Rect) Contains(p Part) bool {
	for i, iv := range r {
		if p[i] < iv.Lo || p[i] >= iv.Hi {
			return false
		}
	}
	return true
}

// Volume returns the number of parts in r.
func (r Rect) Volume() (int64, error) {
	v := int64(1)
	for _, iv := range r {
		var err error
		if v, err = fault.Mul(v, iv.Len()); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// Split divides r by the instruction's condition into the part that
// satisfies it and the part that falls through. Either may be empty.
func (r Rect) Split(in Instruction) (pass, fail Rect) {
	pass, fail = r, r
	iv := r[in.Param]
	switch in.Op {
	case Less:
		pass[in.Param] = Interval{Lo: iv.Lo, Hi: min(iv.Hi, in.Threshold)}
		fail[in.Param] = Interval{Lo: max(iv.Lo, in.Threshold), Hi: iv.Hi}
	case Greater:
		pass[in.Param] = Interval{Lo: max(iv.Lo, in.Threshold+1), Hi: iv.Hi}
		fail[in.Param] = Interval{Lo: iv.Lo, Hi: min(iv.Hi, in.Threshold+1)}
	default:
		fail[in.Param] = Interval{Lo: iv.Lo, Hi: iv.Lo}
	}
	return pass, fail
}
