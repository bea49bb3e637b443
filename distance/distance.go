package distance

import (
	"fmt"
	"math"
)

// Euclidean calculates the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
//
// The squared differences are summed in coordinate order without rescaling,
// so equal sums give bit-identical distances.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean calculates the squared Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		// The explicit conversion keeps d*d from being fused into an FMA.
		sum += float64(d * d)
	}
	return sum
}

// Metric represents the distance metric used for clustering.
type Metric int

const (
	MetricEuclidean Metric = iota
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
