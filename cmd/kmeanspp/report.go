package main

import "github.com/hupe1980/kmeanspp"

// Request is the JSON body of the fit command.
type Request struct {
	Points    [][]float64 `json:"points"`
	Centroids [][]float64 `json:"centroids"`
	K         int         `json:"k"`
	Iter      int         `json:"iter"`
	Epsilon   float64     `json:"epsilon"`
}

// Report is the JSON result of a clustering run.
type Report struct {
	Centroids [][]float64 `json:"centroids"`
	Converged bool        `json:"converged"`
	Rounds    int         `json:"rounds"`
	Movements []float64   `json:"movements"`
	Labels    []int       `json:"labels"`
	Sizes     []uint64    `json:"sizes"`
	Inertia   float64     `json:"inertia"`
}

func newReport(res *kmeanspp.Result) *Report {
	sizes := make([]uint64, len(res.Clusters))
	for i, bm := range res.Clusters {
		sizes[i] = bm.GetCardinality()
	}
	return &Report{
		Centroids: res.Centroids,
		Converged: res.Converged,
		Rounds:    res.Rounds,
		Movements: res.Movements,
		Labels:    res.Labels,
		Sizes:     sizes,
		Inertia:   res.Inertia,
	}
}
