package kmeans

import (
	"context"
	"testing"

	"github.com/hupe1980/kmeanspp/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oneDim(values ...float64) [][]float64 {
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{v}
	}
	return rows
}

func mustSetup(t *testing.T, rows, seeds [][]float64) (*Points, *Centroids) {
	t.Helper()
	points, err := NewPoints(rows)
	require.NoError(t, err)
	centroids, err := NewCentroids(seeds, points.Dim())
	require.NoError(t, err)
	return points, centroids
}

func TestRun_TwoClustersOneDim(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 10))

	out := Run(points, centroids, Config{MaxIter: 10, Tolerance: 0.001}, nil)

	assert.Equal(t, Converged, out.State)
	assert.Equal(t, 2, out.Rounds)
	assert.Equal(t, [][]float64{{2}, {11}}, centroids.Positions())
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, out.Labels)
	assert.Equal(t, []float64{0, 0}, out.Movements)
	assert.Equal(t, []int{6, 0}, out.Reassigned)
}

func TestRun_EmptyClusterKeepsPosition(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(0, 1, 2, 3), oneDim(0, 1000))

	var firstRound RoundStats
	out := Run(points, centroids, Config{MaxIter: 10, Tolerance: 0.001}, func(s RoundStats) {
		if s.Round == 0 {
			firstRound = s
			firstRound.Movements = append([]float64(nil), s.Movements...)
		}
	})

	assert.Equal(t, Converged, out.State)
	assert.Equal(t, []float64{1.5}, centroids.Position(0))
	assert.Equal(t, []float64{1000}, centroids.Position(1))
	assert.Equal(t, 0.0, firstRound.Movements[1], "outlier centroid must report zero movement")
	assert.Equal(t, 1.5, firstRound.Movements[0])
}

func TestRun_SeedsAtOptimumConvergeInOneRound(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(2, 11))

	out := Run(points, centroids, Config{MaxIter: 1, Tolerance: 0.001}, nil)

	assert.Equal(t, Converged, out.State)
	assert.Equal(t, 1, out.Rounds)
	assert.Equal(t, []float64{0, 0}, out.Movements)
}

func TestRun_Exhausted(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 10))

	out := Run(points, centroids, Config{MaxIter: 1, Tolerance: 0.001}, nil)

	assert.Equal(t, Exhausted, out.State)
	assert.Equal(t, 1, out.Rounds)
	assert.Equal(t, [][]float64{{2}, {11}}, centroids.Positions(), "exhaustion still yields the latest positions")
}

func TestRun_NoRounds(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3), oneDim(1, 3))

	out := Run(points, centroids, Config{MaxIter: 0}, nil)

	assert.Equal(t, Exhausted, out.State)
	assert.Equal(t, 0, out.Rounds)
	assert.Equal(t, [][]float64{{1}, {3}}, centroids.Positions())
}

func TestRun_ObserverSeesEveryRound(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 10))

	var states []State
	var rounds []int
	Run(points, centroids, Config{MaxIter: 10, Tolerance: 0.001}, func(s RoundStats) {
		states = append(states, s.State)
		rounds = append(rounds, s.Round)
	})

	assert.Equal(t, []State{Running, Converged}, states)
	assert.Equal(t, []int{0, 1}, rounds)
}

func TestRun_ObserverSeesExhaustion(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 10))

	var last RoundStats
	Run(points, centroids, Config{MaxIter: 1, Tolerance: 0.001}, func(s RoundStats) { last = s })

	assert.Equal(t, Exhausted, last.State)
	assert.Equal(t, 1.0, last.MaxMovement)
}

func TestRun_TerminatesWithinBudget(t *testing.T) {
	rng := testutil.NewRNG(7)
	rows := rng.UniformVectors(200, 3)

	for _, maxIter := range []int{1, 2, 5, 50} {
		points, centroids := mustSetup(t, rows, rows[:4])
		out := Run(points, centroids, Config{MaxIter: maxIter, Tolerance: 0}, nil)

		assert.LessOrEqual(t, out.Rounds, maxIter)
		assert.NotEqual(t, Running, out.State)
		for _, c := range centroids.Positions() {
			assert.Len(t, c, 3)
		}
	}
}

func TestRun_ConvergedIsIdempotent(t *testing.T) {
	rng := testutil.NewRNG(42)
	rows, _ := rng.Blobs([][]float64{{0, 0}, {10, 10}, {-10, 10}}, 30, 0.5)
	points, centroids := mustSetup(t, rows, [][]float64{rows[0], rows[30], rows[60]})

	out := Run(points, centroids, Config{MaxIter: 100, Tolerance: 0}, nil)
	require.Equal(t, Converged, out.State)

	before := centroids.Positions()
	labels := append([]int(nil), out.Labels...)

	changed := Assign(points, centroids, labels)
	movements := make([]float64, centroids.Len())
	maxMovement := Update(centroids, movements)

	assert.Equal(t, 0, changed)
	assert.Equal(t, out.Labels, labels)
	assert.Equal(t, 0.0, maxMovement)
	assert.Equal(t, before, centroids.Positions())
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance([]float64{0, 0.001}, 0.001), "movement equal to tolerance converges")
	assert.False(t, WithinTolerance([]float64{0, 0.0011}, 0.001))
	assert.True(t, WithinTolerance(nil, 0))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "converged", Converged.String())
	assert.Equal(t, "exhausted", Exhausted.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestRunContext_StopsWhenCanceled(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 2))

	ctx, cancel := context.WithCancel(context.Background())
	out, err := RunContext(ctx, points, centroids, Config{MaxIter: 100, Tolerance: 0}, func(s RoundStats) {
		if s.Round == 0 {
			cancel()
		}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Running, out.State)
	assert.Equal(t, 1, out.Rounds)
}

func TestInertia(t *testing.T) {
	points, centroids := mustSetup(t, oneDim(1, 2, 3, 10, 11, 12), oneDim(1, 10))

	out := Run(points, centroids, Config{MaxIter: 10, Tolerance: 0.001}, nil)
	require.Equal(t, Converged, out.State)
	assert.Equal(t, 4.0, Inertia(points, centroids, out.Labels))

	assert.Equal(t, 2.0, Inertia(points, centroids, []int{0, -1, -1, -1, -1, 1}), "unassigned points are skipped")
	assert.Equal(t, 0.0, Inertia(points, centroids, []int{-1, -1, -1, -1, -1, -1}))
}
