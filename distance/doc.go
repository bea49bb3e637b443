// Package distance provides the distance calculations used for clustering.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance, sqrt(Σ (a_i − b_i)^2)
//
// Other metrics are rejected by Provider.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d2 := distance.SquaredEuclidean(a, b)
package distance
