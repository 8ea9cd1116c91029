package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
)

// TestDir_Turns checks opposite, left, right and perpendicular pairs.
func TestDir_Turns(t *testing.T) {
	cases := []struct {
		d, opp, left, right grid.Dir
	}{
		{grid.N, grid.S, grid.W, grid.E},
		{grid.E, grid.W, grid.N, grid.S},
		{grid.S, grid.N, grid.E, grid.W},
		{grid.W, grid.E, grid.S, grid.N},
		{grid.None, grid.None, grid.None, grid.None},
	}
	for _, tc := range cases {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.opp, tc.d.Opposite())
			assert.Equal(t, tc.left, tc.d.Left())
			assert.Equal(t, tc.right, tc.d.Right())
			assert.Equal(t, [2]grid.Dir{tc.left, tc.right}, tc.d.Perpendicular())
		})
	}
}

// TestDir_DeltaAndIndex checks unit offsets and slot indexes.
func TestDir_DeltaAndIndex(t *testing.T) {
	origin := grid.Pos{}
	assert.Equal(t, grid.Pos{Row: -1}, origin.Move(grid.N))
	assert.Equal(t, grid.Pos{Col: 1}, origin.Move(grid.E))
	assert.Equal(t, grid.Pos{Row: 1}, origin.Move(grid.S))
	assert.Equal(t, grid.Pos{Col: -1}, origin.Move(grid.W))
	assert.Equal(t, origin, origin.Move(grid.None))
	assert.Equal(t, grid.Pos{Row: 3, Col: -4}, grid.Pos{Col: -4}.Step(grid.S, 3))

	for i, d := range grid.Cardinals {
		assert.Equal(t, i, d.Index())
	}
	assert.Equal(t, -1, grid.None.Index())
	assert.True(t, grid.N.Vertical())
	assert.False(t, grid.W.Vertical())
}

// TestParseDir accepts compass and screen letters.
func TestParseDir(t *testing.T) {
	for in, want := range map[byte]grid.Dir{'U': grid.N, 'N': grid.N, 'R': grid.E, 'D': grid.S, 'L': grid.W, 'W': grid.W} {
		got, ok := grid.ParseDir(in)
		require.True(t, ok, "ParseDir(%q)", in)
		assert.Equal(t, want, got)
	}
	_, ok := grid.ParseDir('x')
	assert.False(t, ok)
}

// TestDirSet covers membership and rendering.
func TestDirSet(t *testing.T) {
	s := grid.SetOf(grid.S, grid.E, grid.None)
	assert.True(t, s.Has(grid.E))
	assert.True(t, s.Has(grid.S))
	assert.False(t, s.Has(grid.N))
	assert.False(t, s.Has(grid.None))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []grid.Dir{grid.E, grid.S}, s.Dirs())
	assert.Equal(t, "{ES}", s.String())
	assert.Equal(t, grid.SetOf(grid.E, grid.S), s.With(grid.E))
}

// TestPos_StringRoundTrip checks the vertex ID format.
func TestPos_StringRoundTrip(t *testing.T) {
	p := grid.Pos{Row: -7, Col: 12}
	assert.Equal(t, "-7,12", p.String())
	back, err := grid.ParsePos(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, back)

	_, err = grid.ParsePos("7;12")
	assert.Error(t, err)
	_, err = grid.ParsePos("a,1")
	assert.Error(t, err)
	assert.Equal(t, 7, grid.Pos{Row: 1, Col: 2}.Manhattan(grid.Pos{Row: -2, Col: 6}))
}

// TestMod keeps results in [0, m).
func TestMod(t *testing.T) {
	assert.Equal(t, 3, grid.Mod(-8, 11))
	assert.Equal(t, 0, grid.Mod(22, 11))
	assert.Equal(t, int64(10), grid.Mod(int64(-1), 11))
	assert.Equal(t, 5, grid.Abs(-5))
}
