package aplenty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2023/grid"
)

// Parse reads the workflow block, a blank line and an optional part block,
// then validates the system.
func Parse(input string) (*System, error) {
	s := &System{Workflows: make(map[string]*Workflow)}
	lines := grid.Lines(input)
	i := 0
	for ; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		w, err := parseWorkflow(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, i+1, err)
		}
		if _, dup := s.Workflows[w.Name]; dup {
			return nil, fmt.Errorf("%w: %q on line %d", ErrDuplicate, w.Name, i+1)
		}
		s.Workflows[w.Name] = w
	}
	for i++; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		p, err := parsePart(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, i+1, err)
		}
		s.Parts = append(s.Parts, p)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// parseWorkflow reads "name{rule,rule,...,target}".
func parseWorkflow(line string) (*Workflow, error) {
	open := strings.IndexByte(line, '{')
	if open <= 0 || !strings.HasSuffix(line, "}") {
		return nil, fmt.Errorf("workflow %q", line)
	}
	w := &Workflow{Name: line[:open]}
	if w.Name == Accept || w.Name == Reject {
		return nil, fmt.Errorf("workflow name %q is reserved", w.Name)
	}
	for _, f := range strings.Split(line[open+1:len(line)-1], ",") {
		in, err := parseInstruction(f)
		if err != nil {
			return nil, err
		}
		w.Rules = append(w.Rules, in)
	}
	return w, nil
}

// parseInstruction reads "x<10:target", "x>10:target" or "target".
func parseInstruction(f string) (Instruction, error) {
	cond, target, ok := strings.Cut(f, ":")
	if !ok {
		if f == "" {
			return Instruction{}, fmt.Errorf("empty target")
		}
		return Instruction{Op: Goto, Target: f}, nil
	}
	if len(cond) < 3 || target == "" {
		return Instruction{}, fmt.Errorf("rule %q", f)
	}
	p, ok := ParseParam(cond[0])
	if !ok {
		return Instruction{}, fmt.Errorf("parameter in %q", f)
	}
	in := Instruction{Param: p, Target: target}
	switch cond[1] {
	case '<':
		in.Op = Less
	case '>':
		in.Op = Greater
	default:
		return Instruction{}, fmt.Errorf("operator in %q", f)
	}
	n, err := strconv.Atoi(cond[2:])
	if err != nil {
		return Instruction{}, fmt.Errorf("threshold in %q", f)
	}
	in.Threshold = n

	return in, nil
}

// parsePart reads "{x=1,m=2,a=3,s=4}"; every parameter must appear once.
func parsePart(line string) (Part, error) {
	body, ok := strings.CutPrefix(line, "{")
	if !ok || !strings.HasSuffix(body, "}") {
		return Part{}, fmt.Errorf("part %q", line)
	}
	var (
		p    Part
		seen [4]bool
	)
	for _, f := range strings.Split(strings.TrimSuffix(body, "}"), ",") {
		k, v, ok := strings.Cut(f, "=")
		if !ok || len(k) != 1 {
			return Part{}, fmt.Errorf("rating %q", f)
		}
		param, ok := ParseParam(k[0])
		if !ok || seen[param] {
			return Part{}, fmt.Errorf("rating %q", f)
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Part{}, fmt.Errorf("rating %q", f)
		}
		p[param], seen[param] = n, true
	}
	if seen != [4]bool{true, true, true, true} {
		return Part{}, fmt.Errorf("part %q lacks a rating", line)
	}
	return p, nil
}
