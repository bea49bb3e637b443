// Package kmeans implements the Lloyd iteration behind kmeanspp.Fit.
//
// Points and centroids are stored in contiguous row-major buffers:
//
//	Points     N×d   read-only for the whole run
//	Centroids  K×d   current positions
//	           K×d   accumulators (pending sums for the next position)
//	           K     counts (points folded into each accumulator this round)
//
// A round assigns every point to its nearest centroid, folds the point into that
// centroid's accumulator, then finalizes every centroid into its new position.
// Positions are only written during finalization, so every assignment in a round
// sees the positions left by the previous round.
//
// The package is single-threaded and holds no global state.
package kmeans
