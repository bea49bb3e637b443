// Package math64 provides the float64 vector operations used by the clustering engine.
// This is an internal package - external users should use the distance package.
package math64

import "gonum.org/v1/gonum/floats"

// Add adds s to dst elementwise, storing the result in dst.
// Panics if the lengths differ.
func Add(dst, s []float64) {
	floats.Add(dst, s)
}

// DivideInPlace divides every element of v by n.
//
// The division is performed per element rather than by multiplying with the
// reciprocal so that means are reproducible across implementations.
func DivideInPlace(v []float64, n int) {
	d := float64(n)
	for i := range v {
		v[i] /= d
	}
}

// Clone returns an independent copy of v.
func Clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	dst := make([]float64, len(v))
	copy(dst, v)
	return dst
}

// Equal reports whether a and b have the same length and identical elements.
func Equal(a, b []float64) bool {
	return floats.Equal(a, b)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return x-x == 0
}
