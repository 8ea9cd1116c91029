// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Predecessors).
// Determinism:
//   - Neighbors() keeps insertion order.
//   - NeighborIDs() and Predecessors() return unique IDs sorted lex asc.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the edges leaving id (incident edges for undirected graphs),
// in insertion order. Treat the returned *Edge values as read-only.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	res := make([]*Edge, len(g.out[id]))
	copy(res, g.out[id])

	return res, nil
}

// NeighborIDs returns the unique vertices reachable from id over one edge,
// sorted ascending.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return uniqueSorted(edges, func(e *Edge) string { return other(e, id) }), nil
}

// Predecessors returns the unique vertices with an edge arriving at id,
// sorted ascending. For undirected graphs this equals NeighborIDs.
//
// A conjunction module in the pulse network, for instance, needs one memory
// slot per predecessor before the first pulse is delivered.
func (g *Graph) Predecessors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return uniqueSorted(g.in[id], func(e *Edge) string { return other(e, id) }), nil
}

// other returns the endpoint of e that is not id (id itself for loops).
func other(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

func uniqueSorted(edges []*Edge, key func(*Edge) string) []string {
	seen := make(map[string]struct{}, len(edges))
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		k := key(e)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}
