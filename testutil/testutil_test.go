package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)
	centers := [][]float64{{0, 0}, {100, 100}}

	v, labels := rng.Blobs(centers, 5, 0.1)

	require.Len(t, v, 10)
	require.Len(t, labels, 10)
	for i, vec := range v {
		assert.Len(t, vec, 2)
		assert.Equal(t, i/5, labels[i])
		c := centers[labels[i]]
		assert.InDelta(t, c[0], vec[0], 1.0)
		assert.InDelta(t, c[1], vec[1], 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(1)
	a := rng.UniformVectors(2, 2)
	rng.Reset()
	b := rng.UniformVectors(2, 2)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(1), rng.Seed())
}

func TestClone(t *testing.T) {
	src := [][]float64{{1, 2}, {3}}
	dst := Clone(src)
	dst[0][0] = 9

	assert.Equal(t, 1.0, src[0][0])
	assert.Equal(t, []float64{3}, dst[1])
}
