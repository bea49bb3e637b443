// Package kmeanspp computes K-means clusterings from caller-supplied seeds.
//
// Given a point set, K initial centroid positions, a round budget and a
// convergence tolerance, Fit runs Lloyd's algorithm with Euclidean distance
// and returns the final centroid positions.
//
// # Quick Start
//
//	points := [][]float64{{1}, {2}, {3}, {10}, {11}, {12}}
//	seeds := [][]float64{{1}, {10}}
//
//	res, err := kmeanspp.Fit(ctx, points, seeds, 2, 10, 0.001)
//	if err != nil { ... }
//	fmt.Println(res.Centroids) // [[2] [11]]
//
// # Seeding
//
// Fit never chooses seeds. Use the seed package to derive them, either from
// the first K points or with k-means++:
//
//	seeds, _ := seed.KMeansPP(points, k, rand.New(rand.NewPCG(1, 2)))
//
// # Semantics
//
//   - Every round assigns all points (in input order) to their nearest centroid,
//     then moves each centroid to the mean of its points.
//   - When two centroids are equally near, the one with the higher index wins.
//   - A centroid that receives no points keeps its position and counts as not
//     having moved.
//   - The run converges when no centroid moved more than epsilon in a round.
//     Running out of rounds is not an error; Result.Converged reports it.
//
// # Observability
//
//	res, err := kmeanspp.Fit(ctx, points, seeds, k, 300, 1e-4,
//	    kmeanspp.WithLogger(kmeanspp.NewTextLogger(slog.LevelDebug)),
//	    kmeanspp.WithMetricsCollector(&kmeanspp.BasicMetricsCollector{}),
//	)
package kmeanspp
