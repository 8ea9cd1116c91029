package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2023/core"
)

// sorter holds three-color state for cycle search and ordering.
type sorter struct {
	graph *core.Graph
	state map[string]int
	stack []string
	order []string
	cycle []string
}

func newSorter(g *core.Graph) (*sorter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	n := g.VertexCount()
	return &sorter{
		graph: g,
		state: make(map[string]int, n),
		order: make([]string, 0, n),
	}, nil
}

// run drives visit from every white vertex. It stops at the first cycle.
func (s *sorter) run() error {
	for _, v := range s.graph.Vertices() {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			return err
		}
		if s.cycle != nil {
			return nil
		}
	}
	return nil
}

// visit colors id gray, explores it and records it on finish. A gray
// neighbor closes a cycle, which is cut out of the current stack.
func (s *sorter) visit(id string) error {
	s.state[id] = Gray
	s.stack = append(s.stack, id)

	nbrs, err := s.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbrs {
		switch s.state[nid] {
		case Gray:
			for i, v := range s.stack {
				if v == nid {
					s.cycle = append(append([]string(nil), s.stack[i:]...), nid)
					return nil
				}
			}
		case White:
			if err := s.visit(nid); err != nil {
				return err
			}
			if s.cycle != nil {
				return nil
			}
		}
	}

	s.stack = s.stack[:len(s.stack)-1]
	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}

// FindCycle returns one directed cycle as a closed path (first vertex
// repeated at the end), or nil when g is acyclic. Self-loops count.
func FindCycle(g *core.Graph) ([]string, error) {
	s, err := newSorter(g)
	if err != nil {
		return nil, err
	}
	if err := s.run(); err != nil {
		return nil, err
	}

	return s.cycle, nil
}

// TopologicalSort returns the vertices of g such that for every edge u→v,
// u precedes v. A cycle yields ErrCycleDetected with the cycle path.
func TopologicalSort(g *core.Graph) ([]string, error) {
	s, err := newSorter(g)
	if err != nil {
		return nil, err
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	if s.cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(s.cycle, " -> "))
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}
