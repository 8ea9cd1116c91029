package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/core"
)

// TestAddVertex_Validation covers empty IDs and idempotent inserts.
func TestAddVertex_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("B"))
}

// TestAddEdge_Constraints verifies weight, loop and multi-edge policies.
func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("A", "B", 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	id, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	multi := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops(), core.WithWeighted())
	_, err = multi.AddEdge("A", "B", 2)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = multi.AddEdge("B", "B", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, multi.EdgeCount())
}

// TestEdges_InsertionOrder checks that edge IDs past e9 keep insertion order.
func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, string(rune('a'+i)), e.To)
	}

	nbrs, err := g.Neighbors("hub")
	require.NoError(t, err)
	assert.Equal(t, "l", nbrs[11].To)
}

// TestDirected_Predecessors checks in-neighbor lookups on a directed graph.
func TestDirected_Predecessors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("c", "hub", 0)
	_, _ = g.AddEdge("a", "hub", 0)
	_, _ = g.AddEdge("a", "hub", 0)
	_, _ = g.AddEdge("hub", "rx", 0)

	preds, err := g.Predecessors("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, preds)

	out, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"rx"}, out)

	none, err := g.Predecessors("a")
	require.NoError(t, err)
	assert.Empty(t, none)

	in, outDeg, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 3, in)
	assert.Equal(t, 1, outDeg)

	assert.True(t, g.HasEdge("a", "hub"))
	assert.False(t, g.HasEdge("hub", "a"))

	_, err = g.Predecessors("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestUndirected_Symmetry ensures undirected edges are visible from both ends.
func TestUndirected_Symmetry(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)

	assert.True(t, g.HasEdge("B", "A"))
	ids, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, ids)

	preds, err := g.Predecessors("B")
	require.NoError(t, err)
	assert.Equal(t, ids, preds)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

// TestVertex_Metadata verifies that metadata written through Vertex persists.
func TestVertex_Metadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("3,4"))
	v, err := g.Vertex("3,4")
	require.NoError(t, err)
	v.Metadata["row"] = 3

	again, err := g.Vertex("3,4")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Metadata["row"])

	_, err = g.Vertex("nope")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
