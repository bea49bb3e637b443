package kmeanspp_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/kmeanspp"
	"github.com/hupe1980/kmeanspp/seed"
)

// ExampleFit clusters a one-dimensional data set from explicit seeds.
func ExampleFit() {
	points := [][]float64{{1}, {2}, {3}, {10}, {11}, {12}}
	seeds := [][]float64{{1}, {10}}

	res, err := kmeanspp.Fit(context.Background(), points, seeds, 2, 10, 0.001)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Centroids, res.Converged, res.Rounds)
	// Output: [[2] [11]] true 2
}

// ExampleFit_firstK seeds the run with the first K points, as the command line does.
func ExampleFit_firstK() {
	points := [][]float64{{0, 0}, {10, 10}, {0, 1}, {1, 0}, {10, 11}, {11, 10}}

	seeds, err := seed.FirstK(points, 2)
	if err != nil {
		log.Fatal(err)
	}

	res, err := kmeanspp.Fit(context.Background(), points, seeds, 2, 200, 0.001)
	if err != nil {
		log.Fatal(err)
	}

	for j, c := range res.Centroids {
		fmt.Printf("cluster %d: %.4f,%.4f members=%v\n", j, c[0], c[1], res.Clusters[j].ToArray())
	}
	// Output:
	// cluster 0: 0.3333,0.3333 members=[0 2 3]
	// cluster 1: 10.3333,10.3333 members=[1 4 5]
}
