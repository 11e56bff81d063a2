package walker

import (
	"testing"

	"randomwalk/grid"

	"github.com/stretchr/testify/require"
)

func TestStatisticsDistances(t *testing.T) {
	region := mustRegion(t, 10, 10, grid.WithStart(grid.Point{X: 0, Y: 0}))
	// Three rights and four downs: net displacement (3, 4).
	e := New(region, WithSource(&scriptedSource{draws: []int{3, 3, 3, 1, 1, 1, 1}}))

	stats, err := e.Simulate(7, 10)

	require.NoError(t, err)
	require.Equal(t, grid.Point{X: 3, Y: 4}, stats.Position)
	require.Equal(t, 5.0, stats.Euclidean, "A 3-4-5 triangle has an exact hypotenuse")
	require.Equal(t, 7, stats.Manhattan)
}

func TestStatisticsZeroSteps(t *testing.T) {
	region := mustRegion(t, 10, 10)
	e := New(region, WithSource(&scriptedSource{}))

	stats := e.Statistics()

	require.Equal(t, 0, stats.StepsTaken)
	require.Equal(t, 0, stats.BlockedAttempts)
	require.Equal(t, region.Start(), stats.Start)
	require.Equal(t, region.Start(), stats.Position)
	require.Equal(t, []grid.Point{region.Start()}, stats.Path)
	require.Equal(t, 0.0, stats.Euclidean)
	require.Equal(t, 0, stats.Manhattan)
}

func TestStatisticsDefensiveCopy(t *testing.T) {
	region := mustRegion(t, 10, 10)
	e := New(region, WithSeed(21))
	require.True(t, e.Step(100))

	stats := e.Statistics()
	stats.Path[0] = grid.Point{X: -99, Y: -99}

	require.Equal(t, region.Start(), e.Statistics().Path[0], "Mutating a snapshot must not reach the engine")
}

func TestEfficiency(t *testing.T) {
	t.Run("ratio of steps to all attempts", func(t *testing.T) {
		eff, ok := Statistics{StepsTaken: 5, BlockedAttempts: 15}.Efficiency()
		require.True(t, ok)
		require.Equal(t, 25.0, eff)
	})

	t.Run("fully blocked walk is zero percent", func(t *testing.T) {
		eff, ok := Statistics{StepsTaken: 0, BlockedAttempts: 50}.Efficiency()
		require.True(t, ok, "Efficiency is defined whenever anything was sampled")
		require.Equal(t, 0.0, eff)
	})

	t.Run("undefined before any sampling", func(t *testing.T) {
		_, ok := Statistics{}.Efficiency()
		require.False(t, ok)
	})

	t.Run("perfect walk is one hundred percent", func(t *testing.T) {
		eff, ok := Statistics{StepsTaken: 8}.Efficiency()
		require.True(t, ok)
		require.Equal(t, 100.0, eff)
	})
}
