package kmeanspp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/kmeanspp/internal/kmeans"
	"golang.org/x/time/rate"
)

// Result holds the outcome of a Fit call.
type Result struct {
	// Centroids are the final centroid positions in seed order.
	Centroids [][]float64

	// Converged is true if the last round moved every centroid by at most
	// epsilon. False means the round budget was exhausted; Centroids are valid
	// either way.
	Converged bool

	// Rounds is the number of rounds executed.
	Rounds int

	// Movements holds the distance each centroid moved in the last round.
	Movements []float64

	// Labels holds, for every point, the index of the centroid it was assigned
	// to in the last round.
	Labels []int

	// Clusters holds the point indices assigned to each centroid in the last
	// round.
	Clusters []*roaring.Bitmap

	// Reassigned holds, per round, how many points changed cluster.
	Reassigned []int

	// Inertia is the sum of squared distances between every point and the
	// final position of the centroid it was assigned to in the last round.
	Inertia float64
}

// Fit clusters points starting from the given seeds.
//
// k must equal len(seeds) and satisfy 1 < k < len(points). Every seed must have
// the dimensionality of the points. At most maxIter rounds are run; the loop
// stops early once no centroid moves more than epsilon in a round.
//
// Invalid input is reported as one of the package errors (ErrInvalidK,
// ErrInvalidIterations, ErrInvalidEpsilon, ErrEmptyDataset,
// *ErrDimensionMismatch, *ErrInvalidCoordinate). Neither points nor seeds are
// modified or retained.
//
// ctx is checked before every round; a canceled run returns an error wrapping
// ctx.Err() and no result.
func Fit(ctx context.Context, points, seeds [][]float64, k, maxIter int, epsilon float64, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	res, err := fit(ctx, points, seeds, k, maxIter, epsilon, &o)

	var (
		rounds    int
		converged bool
	)
	if res != nil {
		rounds, converged = res.Rounds, res.Converged
	}
	o.metricsCollector.RecordFit(len(points), k, rounds, converged, time.Since(start), err)
	o.logger.LogFit(ctx, rounds, converged, err)

	return res, err
}

func fit(ctx context.Context, points, seeds [][]float64, k, maxIter int, epsilon float64, o *options) (*Result, error) {
	if maxIter < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}
	if math.IsNaN(epsilon) || math.IsInf(epsilon, 0) || epsilon < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEpsilon, epsilon)
	}

	ps, err := kmeans.NewPoints(points)
	if err != nil {
		return nil, translateError(KindPoint, err)
	}
	if k != len(seeds) {
		return nil, fmt.Errorf("%w: k is %d but %d seeds were given", ErrInvalidK, k, len(seeds))
	}
	if k <= 1 || k >= ps.Len() {
		return nil, fmt.Errorf("%w: k must satisfy 1 < k < %d, got %d", ErrInvalidK, ps.Len(), k)
	}

	cs, err := kmeans.NewCentroids(seeds, ps.Dim())
	if err != nil {
		return nil, translateError(KindSeed, err)
	}

	log := o.logger.WithK(k).WithDimension(ps.Dim()).WithCount(ps.Len())
	progress := &rate.Sometimes{Interval: o.progressInterval}
	if o.progressInterval <= 0 {
		progress = &rate.Sometimes{Every: 1}
	}

	out, err := kmeans.RunContext(ctx, ps, cs, kmeans.Config{MaxIter: maxIter, Tolerance: epsilon}, func(s kmeans.RoundStats) {
		o.metricsCollector.RecordRound(s.Round, s.MaxMovement, s.Reassigned)
		log.LogRound(ctx, s.Round, s.MaxMovement, s.Reassigned)
		progress.Do(func() {
			log.LogProgress(ctx, s.Round, maxIter, s.MaxMovement)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("fit canceled after %d rounds: %w", out.Rounds, err)
	}

	return &Result{
		Centroids:  cs.Positions(),
		Converged:  out.State == kmeans.Converged,
		Rounds:     out.Rounds,
		Movements:  out.Movements,
		Labels:     out.Labels,
		Clusters:   clusters(out.Labels, k),
		Reassigned: out.Reassigned,
		Inertia:    kmeans.Inertia(ps, cs, out.Labels),
	}, nil
}

func clusters(labels []int, k int) []*roaring.Bitmap {
	bms := make([]*roaring.Bitmap, k)
	for j := range bms {
		bms[j] = roaring.New()
	}
	for i, j := range labels {
		if j >= 0 {
			bms[j].Add(uint32(i))
		}
	}
	for _, bm := range bms {
		bm.RunOptimize()
	}
	return bms
}
