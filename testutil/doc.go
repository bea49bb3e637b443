// Package testutil provides testing utilities for kmeanspp.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// reproducible point sets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformVectors(1000, 8)                    // uniform [0, 1)
//	points, labels := rng.Blobs(centers, 50, 0.5)           // Gaussian clusters
package testutil
