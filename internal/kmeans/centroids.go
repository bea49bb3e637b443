package kmeans

import (
	"github.com/hupe1980/kmeanspp/distance"
	"github.com/hupe1980/kmeanspp/internal/math64"
)

// Centroids is an ordered collection of K cluster representatives.
//
// Centroid j owns position row j, accumulator row j and counts[j].
// An accumulator is empty while its count is zero.
type Centroids struct {
	pos    []float64
	acc    []float64
	counts []int
	k      int
	dim    int
}

// NewCentroids creates K centroids positioned at copies of seeds.
// Every seed must have exactly dim coordinates. The seed order defines the
// cluster index of each centroid.
func NewCentroids(seeds [][]float64, dim int) (*Centroids, error) {
	pos, dim, err := flatten(seeds, dim)
	if err != nil {
		return nil, err
	}
	k := len(seeds)
	return &Centroids{
		pos:    pos,
		acc:    make([]float64, k*dim),
		counts: make([]int, k),
		k:      k,
		dim:    dim,
	}, nil
}

// Len returns K.
func (c *Centroids) Len() int { return c.k }

// Dim returns the dimensionality of every centroid.
func (c *Centroids) Dim() int { return c.dim }

// Position returns the current position of centroid j.
// The slice aliases internal storage and must not be modified.
func (c *Centroids) Position(j int) []float64 {
	return c.pos[j*c.dim : (j+1)*c.dim]
}

// Count returns the number of points folded into centroid j this round.
func (c *Centroids) Count(j int) int { return c.counts[j] }

// Positions returns independent copies of all current positions in index order.
func (c *Centroids) Positions() [][]float64 {
	out := make([][]float64, c.k)
	for j := range out {
		out[j] = math64.Clone(c.Position(j))
	}
	return out
}

// Nearest returns the index of the centroid closest to p.
//
// Ties go to the centroid that comes last in collection order: a candidate
// replaces the current best when its distance is less than or equal to it.
func (c *Centroids) Nearest(p []float64) int {
	best := 0
	bestDist := distance.Euclidean(p, c.Position(0))
	for j := 1; j < c.k; j++ {
		d := distance.Euclidean(p, c.Position(j))
		if d <= bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// Fold adds p to the accumulator of centroid j and increments its count.
func (c *Centroids) Fold(j int, p []float64) {
	acc := c.acc[j*c.dim : (j+1)*c.dim]
	if c.counts[j] == 0 {
		copy(acc, p)
	} else {
		math64.Add(acc, p)
	}
	c.counts[j]++
}

// Finalize replaces the position of centroid j with the mean of the points
// folded into it and returns how far the position moved.
//
// A centroid that received no points keeps its position and reports 0.
func (c *Centroids) Finalize(j int) float64 {
	n := c.counts[j]
	if n == 0 {
		return 0
	}

	acc := c.acc[j*c.dim : (j+1)*c.dim]
	math64.DivideInPlace(acc, n)

	pos := c.Position(j)
	movement := distance.Euclidean(acc, pos)
	copy(pos, acc)

	clear(acc)
	c.counts[j] = 0
	return movement
}
