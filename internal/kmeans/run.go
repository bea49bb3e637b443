package kmeans

import (
	"context"
	"fmt"

	"github.com/hupe1980/kmeanspp/distance"
)

// State is the state of the driver loop.
type State int

const (
	// Running means another round will be executed.
	Running State = iota
	// Converged means every centroid moved at most the tolerance in the last round.
	Converged
	// Exhausted means the round budget ran out before convergence.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config bounds the driver loop.
type Config struct {
	// MaxIter is the maximum number of rounds. Values below 1 run no rounds.
	MaxIter int

	// Tolerance is the largest movement a centroid may make in a round for the
	// run to be considered converged.
	Tolerance float64
}

// RoundStats describes one completed round.
type RoundStats struct {
	// Round is the zero-based round index.
	Round int
	// Movements holds the distance moved by each centroid, in index order.
	Movements []float64
	// MaxMovement is the largest entry of Movements.
	MaxMovement float64
	// Reassigned counts points whose label differs from the previous round.
	// In round 0 every point counts as reassigned.
	Reassigned int
	// State is the state after the convergence check.
	State State
}

// Observer is called after every round. It must not retain RoundStats.Movements.
type Observer func(RoundStats)

// Outcome is the result of Run.
type Outcome struct {
	State     State
	Rounds    int
	Movements []float64
	// Labels holds the centroid index each point was assigned to in the last round.
	Labels []int
	// Reassigned holds RoundStats.Reassigned for every round.
	Reassigned []int
}

// WithinTolerance reports whether every movement is within tolerance.
func WithinTolerance(movements []float64, tolerance float64) bool {
	for _, m := range movements {
		if m > tolerance {
			return false
		}
	}
	return true
}

// Assign runs the assignment step for every point in order and returns the
// number of labels that changed. labels must have points.Len() entries;
// a negative label means the point has not been assigned yet.
func Assign(points *Points, centroids *Centroids, labels []int) int {
	changed := 0
	for i := 0; i < points.Len(); i++ {
		p := points.At(i)
		j := centroids.Nearest(p)
		centroids.Fold(j, p)
		if labels[i] != j {
			labels[i] = j
			changed++
		}
	}
	return changed
}

// Update finalizes every centroid in index order, writing each movement into
// movements, and returns the largest movement.
func Update(centroids *Centroids, movements []float64) float64 {
	var maxMovement float64
	for j := 0; j < centroids.Len(); j++ {
		m := centroids.Finalize(j)
		movements[j] = m
		if m > maxMovement {
			maxMovement = m
		}
	}
	return maxMovement
}

// Run executes rounds until the centroids converge or cfg.MaxIter rounds have run.
// centroids is updated in place; points is only read.
func Run(points *Points, centroids *Centroids, cfg Config, observer Observer) Outcome {
	out, _ := RunContext(context.Background(), points, centroids, cfg, observer)
	return out
}

// RunContext is like Run but stops before the next round once ctx is done.
// On cancellation it returns the outcome so far, still in state Running, and
// ctx.Err().
func RunContext(ctx context.Context, points *Points, centroids *Centroids, cfg Config, observer Observer) (Outcome, error) {
	labels := make([]int, points.Len())
	for i := range labels {
		labels[i] = -1
	}
	movements := make([]float64, centroids.Len())

	out := Outcome{State: Running, Labels: labels, Movements: movements}
	if cfg.MaxIter < 1 {
		out.State = Exhausted
	}

	for round := 0; out.State == Running; round++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		reassigned := Assign(points, centroids, labels)
		maxMovement := Update(centroids, movements)

		out.Rounds = round + 1
		out.Reassigned = append(out.Reassigned, reassigned)

		// Convergence wins over exhaustion when both hold in the final round.
		switch {
		case WithinTolerance(movements, cfg.Tolerance):
			out.State = Converged
		case out.Rounds >= cfg.MaxIter:
			out.State = Exhausted
		}

		if observer != nil {
			observer(RoundStats{
				Round:       round,
				Movements:   movements,
				MaxMovement: maxMovement,
				Reassigned:  reassigned,
				State:       out.State,
			})
		}
	}

	return out, nil
}

// Inertia returns the sum of squared distances between every labeled point and
// the current position of its centroid. Points with a negative label are
// skipped.
func Inertia(points *Points, centroids *Centroids, labels []int) float64 {
	var total float64
	for i, j := range labels {
		if j < 0 {
			continue
		}
		total += distance.SquaredEuclidean(points.At(i), centroids.Position(j))
	}
	return total
}
