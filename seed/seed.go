// Package seed derives initial centroid positions for kmeanspp.Fit.
//
// Two policies are provided:
//
//   - PolicyFirst: the first K points in input order (FirstK).
//   - PolicyKMeansPP: k-means++ D² weighting (Arthur & Vassilvitskii), which spreads
//     seeds across the data and usually converges in fewer rounds.
//
// All functions return independent copies of the chosen points.
package seed

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hupe1980/kmeanspp/distance"
	"github.com/hupe1980/kmeanspp/internal/math64"
)

var (
	// ErrInvalidK is returned when k is not in [1, len(points)].
	ErrInvalidK = errors.New("seed: invalid number of clusters")

	// ErrNoPoints is returned when the point set is empty.
	ErrNoPoints = errors.New("seed: no points")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("seed: unknown policy")
)

// Policy selects how seeds are chosen.
type Policy int

const (
	// PolicyFirst takes the first K points.
	PolicyFirst Policy = iota
	// PolicyKMeansPP uses k-means++ weighting.
	PolicyKMeansPP
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyKMeansPP:
		return "kmeans++"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name ("first", "kmeans++").
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "first", "firstk":
		return PolicyFirst, nil
	case "kmeans++", "kmeanspp", "k-means++":
		return PolicyKMeansPP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Select returns k seeds chosen by policy together with the indices of the
// chosen points. rng is only used by PolicyKMeansPP and may be nil otherwise.
func Select(policy Policy, points [][]float64, k int, rng *rand.Rand) ([][]float64, []int, error) {
	var (
		idx []int
		err error
	)
	switch policy {
	case PolicyFirst:
		idx, err = firstIndices(points, k)
	case PolicyKMeansPP:
		idx, err = KMeansPPIndices(points, k, rng)
	default:
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	if err != nil {
		return nil, nil, err
	}
	return gather(points, idx), idx, nil
}

// FirstK returns copies of the first k points.
func FirstK(points [][]float64, k int) ([][]float64, error) {
	idx, err := firstIndices(points, k)
	if err != nil {
		return nil, err
	}
	return gather(points, idx), nil
}

// KMeansPP returns k seeds chosen with k-means++ weighting.
func KMeansPP(points [][]float64, k int, rng *rand.Rand) ([][]float64, error) {
	idx, err := KMeansPPIndices(points, k, rng)
	if err != nil {
		return nil, err
	}
	return gather(points, idx), nil
}

// KMeansPPIndices returns the indices of k points chosen with k-means++
// weighting, in the order they were chosen.
//
// The first index is drawn uniformly. Each following index is drawn with
// probability proportional to the squared distance between the point and its
// nearest already chosen seed. If every remaining point coincides with a seed,
// the next index is drawn uniformly among the points not chosen yet.
func KMeansPPIndices(points [][]float64, k int, rng *rand.Rand) ([]int, error) {
	if err := check(points, k); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("seed: nil random source")
	}

	n := len(points)
	chosen := make([]int, 0, k)
	taken := make([]bool, n)
	nearest := make([]float64, n)

	first := rng.IntN(n)
	chosen = append(chosen, first)
	taken[first] = true
	for i, p := range points {
		nearest[i] = distance.SquaredEuclidean(p, points[first])
	}

	for len(chosen) < k {
		var total float64
		for _, d := range nearest {
			total += d
		}

		next := -1
		if total > 0 {
			target := rng.Float64() * total
			var cum float64
			for i, d := range nearest {
				if d == 0 {
					continue
				}
				cum += d
				next = i
				if cum > target {
					break
				}
			}
		} else {
			free := make([]int, 0, n-len(chosen))
			for i := range points {
				if !taken[i] {
					free = append(free, i)
				}
			}
			next = free[rng.IntN(len(free))]
		}

		chosen = append(chosen, next)
		taken[next] = true
		for i, p := range points {
			if d := distance.SquaredEuclidean(p, points[next]); d < nearest[i] {
				nearest[i] = d
			}
		}
	}

	return chosen, nil
}

func firstIndices(points [][]float64, k int) ([]int, error) {
	if err := check(points, k); err != nil {
		return nil, err
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return idx, nil
}

func check(points [][]float64, k int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if k < 1 || k > len(points) {
		return fmt.Errorf("%w: %d (points: %d)", ErrInvalidK, k, len(points))
	}
	return nil
}

func gather(points [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = math64.Clone(points[j])
	}
	return out
}
