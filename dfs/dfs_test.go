package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/core"
	"github.com/katalvlaran/aoc2023/dfs"
	"github.com/katalvlaran/aoc2023/fault"
)

func directed(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	return g
}

// TestDFS_Order checks post-order, depths and parents on a diamond.
func TestDFS_Order(t *testing.T) {
	g := directed(t, [2]string{"a", "b"}, [2]string{"a", "c"}, [2]string{"b", "d"}, [2]string{"c", "d"})

	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b", "c", "a"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "d": 2, "c": 1}, res.Depth)
	assert.Equal(t, "b", res.Parent["d"])
	assert.True(t, res.Visited("c"))
}

// TestDFS_Options covers the visit hook and start validation.
func TestDFS_Options(t *testing.T) {
	g := directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"x", "c"})

	var pre []string
	res, err := dfs.DFS(g, "a", dfs.WithOnVisit(func(id string, _ int) error {
		pre = append(pre, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, pre)
	assert.False(t, res.Visited("x"))

	boom := errors.New("boom")
	_, err = dfs.DFS(g, "a", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, "zz")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, fault.ErrReference)

	_, err = dfs.DFS(nil, "a")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopologicalSort orders a DAG and rejects cycles with a witness.
func TestTopologicalSort(t *testing.T) {
	g := directed(t, [2]string{"in", "px"}, [2]string{"in", "qqz"}, [2]string{"px", "rfg"}, [2]string{"qqz", "rfg"})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "edge %s->%s", e.From, e.To)
	}

	cyc := directed(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"})
	_, err = dfs.TopologicalSort(cyc)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.ErrorIs(t, err, fault.ErrTopology)
	assert.Contains(t, err.Error(), "a -> b -> c -> a")

	_, err = dfs.TopologicalSort(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

// TestFindCycle covers acyclic graphs, self-loops and cycles off the first root.
func TestFindCycle(t *testing.T) {
	cases := []struct {
		name  string
		edges [][2]string
		want  []string
	}{
		{"Acyclic", [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, nil},
		{"SelfLoop", [][2]string{{"a", "a"}}, []string{"a", "a"}},
		{"Tail", [][2]string{{"a", "b"}, {"b", "c"}, {"c", "b"}}, []string{"b", "c", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.FindCycle(directed(t, tc.edges...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
