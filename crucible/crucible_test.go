package crucible_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/crucible"
	"github.com/katalvlaran/aoc2023/fault"
	"github.com/katalvlaran/aoc2023/grid"
)

const city = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

const ultra = `111111111111
999999999991
999999999991
999999999991
999999999991
`

// TestRun_Examples checks losses for known grids and run bounds.
func TestRun_Examples(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		min, max int
		want     int
	}{
		{"City", city, 1, 3, 102},
		{"CityUltra", city, 4, 10, 94},
		{"Ultra", ultra, 4, 10, 71},
		{"TwoByTwo", "19\n11", 1, 3, 2},
		{"ThreeByThree", "123\n456\n789", 1, 3, 20},
		{"SingleCell", "7", 1, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := crucible.Run(tc.input, tc.min, tc.max)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSolve_Path checks that the reconstructed route is contiguous, obeys
// the run bounds and sums to the reported loss.
func TestSolve_Path(t *testing.T) {
	costs, err := crucible.ParseCosts(city)
	require.NoError(t, err)

	for _, b := range [][2]int{{1, 3}, {4, 10}} {
		res, err := crucible.Solve(costs, crucible.WithMinRun(b[0]), crucible.WithMaxRun(b[1]), crucible.WithReturnPath())
		require.NoError(t, err)
		require.NotEmpty(t, res.Path)
		assert.Equal(t, grid.Pos{}, res.Path[0])
		assert.Equal(t, grid.Pos{Row: 12, Col: 12}, res.Path[len(res.Path)-1])

		sum := 0
		for _, p := range res.Path[1:] {
			sum += costs.At(p)
		}
		assert.Equal(t, res.Loss, sum)

		for _, run := range runs(t, res.Path) {
			assert.GreaterOrEqual(t, run, b[0])
			assert.LessOrEqual(t, run, b[1])
		}
	}
}

// runs splits a path into straight segment lengths.
func runs(t *testing.T, path []grid.Pos) []int {
	t.Helper()
	var (
		out  []int
		prev grid.Pos
		n    int
	)
	for i := 1; i < len(path); i++ {
		step := grid.Pos{Row: path[i].Row - path[i-1].Row, Col: path[i].Col - path[i-1].Col}
		require.Equal(t, 1, path[i].Manhattan(path[i-1]))
		if i > 1 && step != prev {
			out = append(out, n)
			n = 0
		}
		prev = step
		n++
	}
	return append(out, n)
}

// TestSolve_SmallPath pins the exact route on a tiny grid.
func TestSolve_SmallPath(t *testing.T) {
	costs, err := crucible.ParseCosts("19\n11")
	require.NoError(t, err)
	res, err := crucible.Solve(costs, crucible.WithReturnPath())
	require.NoError(t, err)

	want := crucible.Result{Loss: 2, Path: []grid.Pos{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Solve mismatch (-want +got):\n%s", diff)
	}

	res, err = crucible.Solve(costs)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
}

// TestSolve_Errors covers bad bounds, bad digits and unreachable targets.
func TestSolve_Errors(t *testing.T) {
	costs, err := crucible.ParseCosts("123\n456")
	require.NoError(t, err)

	_, err = crucible.Solve(costs, crucible.WithMinRun(0))
	assert.ErrorIs(t, err, crucible.ErrBadRun)
	_, err = crucible.Solve(costs, crucible.WithMinRun(4), crucible.WithMaxRun(3))
	assert.ErrorIs(t, err, crucible.ErrBadRun)

	_, err = crucible.Solve(costs, crucible.WithMinRun(4), crucible.WithMaxRun(10))
	assert.ErrorIs(t, err, crucible.ErrNoPath)
	assert.ErrorIs(t, err, fault.ErrTopology)

	_, err = crucible.Run("12\n3x", 1, 3)
	assert.ErrorIs(t, err, crucible.ErrBadDigit)
	assert.ErrorIs(t, err, fault.ErrParse)
}
