// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Edge IDs are monotonic ("e" + decimal sequence).

package core

import (
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from→to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock, ensure endpoints, check the multi-edge constraint.
//  3. Assign the next sequential ID and register the edge in out/in indexes
//     (both directions for undirected graphs).
//
// Complexity: O(1) amortized, O(d) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeSeq++
	e := &Edge{
		ID:       edgeIDPrefix + strconv.FormatUint(g.nextEdgeSeq, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
		seq:      g.nextEdgeSeq,
	}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	if !g.directed && from != to {
		g.out[to] = append(g.out[to], e)
		g.in[from] = append(g.in[from], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from→to exists
// (in either orientation for undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if e.To == to || (!e.Directed && e.From == to) {
			return true
		}
	}

	return false
}

// Edges returns every edge in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	all := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })

	return all
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
