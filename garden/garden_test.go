package garden_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/garden"
	"github.com/katalvlaran/aoc2023/grid"
)

const farm = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
`

// TestBounded_Example checks the bounded count with both methods.
func TestBounded_Example(t *testing.T) {
	g, err := garden.Parse(farm)
	require.NoError(t, err)

	sim, err := g.Simulate(6, false)
	require.NoError(t, err)
	assert.Equal(t, 16, sim)

	got, err := garden.RunBounded(farm, 6)
	require.NoError(t, err)
	assert.Equal(t, 16, got)

	for n := 0; n <= 20; n++ {
		sim, err := g.Simulate(n, false)
		require.NoError(t, err)
		layered, err := g.Bounded(n)
		require.NoError(t, err)
		assert.Equal(t, sim, layered, "steps=%d", n)
	}
}

// TestReachable_Example checks the tiled counts, including values far beyond
// what simulation can reach.
func TestReachable_Example(t *testing.T) {
	cases := []struct {
		steps int
		want  int64
	}{
		{6, 16},
		{10, 50},
		{50, 1594},
		{100, 6536},
		{500, 167004},
		{1000, 668697},
		{5000, 16733044},
		{26501365, 470149643712804},
	}
	for _, tc := range cases {
		got, err := garden.Run(farm, tc.steps)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "steps=%d", tc.steps)
	}
}

// TestReachable_MatchesSimulation compares extrapolation against the
// explicit tiled frontier for every small N.
func TestReachable_MatchesSimulation(t *testing.T) {
	g, err := garden.Parse(farm)
	require.NoError(t, err)
	for n := 0; n <= 60; n++ {
		sim, err := g.Simulate(n, true)
		require.NoError(t, err)
		got, err := g.Reachable(n)
		require.NoError(t, err)
		assert.Equal(t, int64(sim), got, "steps=%d", n)
	}
}

// TestReachable_RandomMaps compares the tiled count with simulation on small
// rocky maps of every shape, most of which are not square and have no open
// row or column.
func TestReachable_RandomMaps(t *testing.T) {
	rng := rand.New(rand.NewSource(2023))
	checkpoints := []int{0, 1, 2, 3, 5, 8, 13, 21, 34, 40}
	for i := 0; i < 150; i++ {
		h, w := 2+rng.Intn(6), 2+rng.Intn(6)
		var sb strings.Builder
		sr, sc := rng.Intn(h), rng.Intn(w)
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				switch {
				case r == sr && c == sc:
					sb.WriteByte('S')
				case rng.Intn(4) == 0:
					sb.WriteByte('#')
				default:
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
		input := sb.String()
		g, err := garden.Parse(input)
		require.NoError(t, err)
		for _, n := range checkpoints {
			sim, err := g.Simulate(n, true)
			require.NoError(t, err)
			got, err := g.Reachable(n)
			require.NoError(t, err, "map %q steps=%d", input, n)
			require.Equal(t, int64(sim), got, "map %q steps=%d", input, n)
		}
	}
}

// TestReachable_SlowTiles covers maps where crossing a tile costs more than
// its size, including one whose distances never settle within the block.
func TestReachable_SlowTiles(t *testing.T) {
	for _, input := range []string{"S.#..\n....#\n.#...", "..S#\n.#.."} {
		g, err := garden.Parse(input)
		require.NoError(t, err)
		for n := 0; n <= 45; n++ {
			sim, err := g.Simulate(n, true)
			require.NoError(t, err)
			got, err := g.Reachable(n)
			require.NoError(t, err, "map %q steps=%d", input, n)
			assert.Equal(t, int64(sim), got, "map %q steps=%d", input, n)
		}
	}

	g, err := garden.Parse("..S#\n.#..")
	require.NoError(t, err)
	_, err = g.Reachable(10_000_000)
	assert.ErrorIs(t, err, garden.ErrUnstable)
	assert.ErrorIs(t, err, fault.ErrTopology)
}

// TestStranded checks a start walled in on all four sides.
func TestStranded(t *testing.T) {
	g, err := garden.Parse("###\n#S#\n###")
	require.NoError(t, err)
	for _, n := range []int{0, 1, 2, 7} {
		sim, err := g.Simulate(n, true)
		require.NoError(t, err)
		got, err := g.Reachable(n)
		require.NoError(t, err)
		assert.Equal(t, int64(sim), got, "steps=%d", n)

		bounded, err := g.Bounded(n)
		require.NoError(t, err)
		assert.Equal(t, sim, bounded, "steps=%d", n)
	}
}

// TestFrontier_Parity checks that endpoints are within N and share its parity.
func TestFrontier_Parity(t *testing.T) {
	g, err := garden.Parse(farm)
	require.NoError(t, err)
	for _, n := range []int{7, 12, 25} {
		f, err := g.Frontier(n, true)
		require.NoError(t, err)
		for p := range f {
			d := p.Manhattan(g.Start())
			assert.LessOrEqual(t, d, n)
			assert.Equal(t, n%2, d%2, "cell %s", p)
		}
	}
}

// TestOpenField checks a rock-free map against the diamond formula.
func TestOpenField(t *testing.T) {
	g, err := garden.Parse("...\n.S.\n...")
	require.NoError(t, err)
	for _, n := range []int{0, 1, 2, 9, 40} {
		got, err := g.Reachable(n)
		require.NoError(t, err)
		assert.Equal(t, int64((n+1)*(n+1)), got, "steps=%d", n)
	}
}

// TestErrors covers malformed maps and negative budgets.
func TestErrors(t *testing.T) {
	_, err := garden.Parse("..\n.x")
	assert.ErrorIs(t, err, garden.ErrTile)
	assert.ErrorIs(t, err, fault.ErrParse)

	_, err = garden.Parse("S.\n.S")
	assert.ErrorIs(t, err, garden.ErrStartCount)
	_, err = garden.Parse("..\n..")
	assert.ErrorIs(t, err, fault.ErrTopology)

	_, err = garden.Parse("S.\n..\n.")
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	g, err := garden.Parse("S.\n..")
	require.NoError(t, err)
	_, err = g.Simulate(-1, false)
	assert.ErrorIs(t, err, garden.ErrSteps)
	_, err = g.Bounded(-1)
	assert.ErrorIs(t, err, garden.ErrSteps)
	_, err = g.Reachable(-1)
	assert.ErrorIs(t, err, garden.ErrSteps)
}
