package aplenty

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/fault"
)

// System is a set of workflows plus the parts listed after them.
type System struct {
	Workflows map[string]*Workflow
	Parts     []Part
}

// Names returns the workflow names in sorted order.
func (s *System) Names() []string {
	names := maps.Keys(s.Workflows)
	sort.Strings(names)
	return names
}

// terminal reports whether name is A or R.
func terminal(name string) bool { return name == Accept || name == Reject }

// graph builds the jump graph between workflows; terminals are left out.
func (s *System) graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, name := range s.Names() {
		if err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}
	for _, name := range s.Names() {
		for _, in := range s.Workflows[name].Rules {
			if terminal(in.Target) || g.HasEdge(name, in.Target) {
				continue
			}
			if _, err := g.AddEdge(name, in.Target, 0); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Validate checks the entry workflow, every jump target, the trailing
// fallback of each workflow and the absence of jump cycles.
func (s *System) Validate() error {
	if _, ok := s.Workflows[Entry]; !ok {
		return ErrNoEntry
	}
	for _, name := range s.Names() {
		rules := s.Workflows[name].Rules
		if len(rules) == 0 || rules[len(rules)-1].Op != Goto {
			return fmt.Errorf("%w: %q", ErrNoFallback, name)
		}
		for _, in := range rules {
			if _, ok := s.Workflows[in.Target]; !ok && !terminal(in.Target) {
				return fmt.Errorf("%w: %q in workflow %q", ErrUnknownTarget, in.Target, name)
			}
		}
	}
	g, err := s.graph()
	if err != nil {
		return err
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		return fmt.Errorf("aplenty: %w", err)
	}
	return nil
}

// Unused returns the workflows that cannot be reached from "in", sorted.
func (s *System) Unused() ([]string, error) {
	g, err := s.graph()
	if err != nil {
		return nil, err
	}
	reached := make(map[string]bool, len(s.Workflows))
	_, err = dfs.DFS(g, Entry, dfs.WithOnVisit(func(id string, _ int) error {
		reached[id] = true
		return nil
	}))
	if err != nil {
		return nil, err
	}
	var out []string
	for _, name := range s.Names() {
		if !reached[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

// Accepts runs p through the workflows from "in".
func (s *System) Accepts(p Part) (bool, error) {
	name := Entry
	for hops := 0; hops <= len(s.Workflows); hops++ {
		w, ok := s.Workflows[name]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
		}
		for _, in := range w.Rules {
			if in.Holds(p) {
				name = in.Target
				break
			}
		}
		if terminal(name) {
			return name == Accept, nil
		}
	}
	return false, fmt.Errorf("aplenty: %w: part %v never reaches a terminal", dfs.ErrCycleDetected, p)
}

// RatingSum adds up the ratings of every accepted listed part.
func (s *System) RatingSum() (int, error) {
	total := 0
	for _, p := range s.Parts {
		ok, err := s.Accepts(p)
		if err != nil {
			return 0, err
		}
		if ok {
			total += p.Rating()
		}
	}
	return total, nil
}

// Partition splits cube into the disjoint boxes accepted and rejected by
// the system. Empty boxes are dropped.
// Complexity: O(total instructions × resulting boxes).
func (s *System) Partition(cube Rect) (accepted, rejected []Rect, err error) {
	pt := &partitioner{sys: s}
	if err := pt.route(cube, Entry, 0); err != nil {
		return nil, nil, err
	}
	return pt.accepted, pt.rejected, nil
}

// partitioner collects boxes while walking the workflows.
type partitioner struct {
	sys                *System
	accepted, rejected []Rect
}

// route sends r to target; depth guards against cyclic hand-built systems.
func (pt *partitioner) route(r Rect, target string, depth int) error {
	if r.Empty() {
		return nil
	}
	switch target {
	case Accept:
		pt.accepted = append(pt.accepted, r)
		return nil
	case Reject:
		pt.rejected = append(pt.rejected, r)
		return nil
	}
	if depth > len(pt.sys.Workflows) {
		return fmt.Errorf("aplenty: %w: at workflow %q", dfs.ErrCycleDetected, target)
	}
	w, ok := pt.sys.Workflows[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	for _, in := range w.Rules {
		pass, fail := r.Split(in)
		if err := pt.route(pass, in.Target, depth+1); err != nil {
			return err
		}
		if r = fail; r.Empty() {
			return nil
		}
	}
	return nil
}

// Combinations returns the number of parts in cube the system accepts.
func (s *System) Combinations(cube Rect) (int64, error) {
	accepted, _, err := s.Partition(cube)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range accepted {
		v, err := r.Volume()
		if err != nil {
			return 0, err
		}
		if total, err = fault.Add(total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Run parses input and counts accepted combinations over ratings 1..4000.
func Run(input string) (int64, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return s.Combinations(FullCube(1, 4001))
}
