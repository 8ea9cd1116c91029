package pipemaze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/pipemaze"
)

const (
	square = ".....\n.S-7.\n.|.|.\n.L-J.\n.....\n"

	squiggle = "..F7.\n.FJ|.\nSJ.L7\n|F--J\nLJ...\n"

	squeeze = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

	scattered = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

	junk = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`
)

// TestRun_Examples checks enclosed counts and farthest distances on known mazes.
func TestRun_Examples(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		enclosed int
		farthest int
	}{
		{"Square", square, 1, 4},
		{"Squiggle", squiggle, 1, 8},
		{"Squeeze", squeeze, 4, 23},
		{"Scattered", scattered, 8, 70},
		{"Junk", junk, 10, 80},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pipemaze.Run(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.enclosed, got)

			m, err := pipemaze.Parse(tc.input)
			require.NoError(t, err)
			far, err := m.Farthest()
			require.NoError(t, err)
			assert.Equal(t, tc.farthest, far)
		})
	}
}

// TestCensus_Partition checks that loop, inside and outside cover the grid.
func TestCensus_Partition(t *testing.T) {
	for _, input := range []string{square, squiggle, squeeze, scattered, junk} {
		m, err := pipemaze.Parse(input)
		require.NoError(t, err)
		c, err := m.Census()
		require.NoError(t, err)
		rows := len(grid.Lines(input))
		cols := len(grid.Lines(input)[0])
		assert.Equal(t, rows*cols, c.Loop+c.Inside+c.Outside)
		assert.Zero(t, c.Loop%2, "a closed grid loop has even length")
	}
}

// TestStartTile resolves S from the neighbors pointing back at it.
func TestStartTile(t *testing.T) {
	cases := []struct {
		input string
		want  pipemaze.Tile
	}{
		{square, pipemaze.SouthEast},
		{squiggle, pipemaze.SouthEast},
		{junk, pipemaze.SouthWest},
		{".|.\n-S.\n...", pipemaze.NorthWest},
		{".|.\n.S.\n.|.", pipemaze.Vertical},
	}
	for _, tc := range cases {
		m, err := pipemaze.Parse(tc.input)
		require.NoError(t, err)
		got, err := m.StartTile()
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}
}

// TestLoop_Path checks that the walk starts at S and visits each loop cell once.
func TestLoop_Path(t *testing.T) {
	m, err := pipemaze.Parse(square)
	require.NoError(t, err)
	loop, err := m.Loop()
	require.NoError(t, err)

	require.Len(t, loop.Path, 8)
	assert.Equal(t, m.Start(), loop.Path[0])
	seen := make(map[grid.Pos]bool)
	for i, p := range loop.Path {
		assert.False(t, seen[p], "cell %s repeated", p)
		seen[p] = true
		assert.True(t, loop.Contains(p))
		next := loop.Path[(i+1)%len(loop.Path)]
		assert.Equal(t, 1, p.Manhattan(next))
	}
	assert.False(t, loop.Contains(grid.Pos{Row: 2, Col: 2}))
}

// TestParse_Errors verifies error categories for malformed mazes.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		err      error
		category error
	}{
		{"UnknownTile", ".S.\n.X.", pipemaze.ErrTile, fault.ErrParse},
		{"NoStart", "...\n...", pipemaze.ErrStartCount, fault.ErrTopology},
		{"TwoStarts", "S.S\n...", pipemaze.ErrStartCount, fault.ErrTopology},
		{"Ragged", "S..\n..", grid.ErrNonRectangular, fault.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipemaze.Parse(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
			assert.True(t, errors.Is(err, tc.category), "got %v", err)
		})
	}
}

// TestRun_TopologyErrors covers unresolvable starts and broken loops.
func TestRun_TopologyErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Isolated", "...\n.S.\n...", pipemaze.ErrStartShape},
		{"ThreeWays", ".|.\n-S-\n...", pipemaze.ErrStartShape},
		{"DeadEnd", ".....\n.S-7.\n.|.|.\n.L-..\n.....", pipemaze.ErrBrokenLoop},
		{"LeavesGrid", "S-\n|.", pipemaze.ErrBrokenLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipemaze.Run(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
			assert.True(t, errors.Is(err, fault.ErrTopology), "got %v", err)
		})
	}
}

// TestTileFor maps every connector back from its openings.
func TestTileFor(t *testing.T) {
	for _, tile := range []pipemaze.Tile{
		pipemaze.Vertical, pipemaze.Horizontal, pipemaze.NorthEast,
		pipemaze.NorthWest, pipemaze.SouthWest, pipemaze.SouthEast,
	} {
		got, ok := pipemaze.TileFor(tile.Openings())
		require.True(t, ok)
		assert.Equal(t, tile, got)
	}
	_, ok := pipemaze.TileFor(grid.SetOf(grid.N))
	assert.False(t, ok)
	assert.Zero(t, pipemaze.Ground.Openings())
	assert.True(t, pipemaze.Start.Valid())
	assert.False(t, pipemaze.Tile('I').Valid())
}
