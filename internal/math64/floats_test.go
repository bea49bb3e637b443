package math64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		dst, s   []float64
		expected []float64
	}{
		{"Positive values", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{5, 7, 9}},
		{"Negative values", []float64{-1, -2}, []float64{1, -2}, []float64{0, -4}},
		{"Single", []float64{0.5}, []float64{0.25}, []float64{0.75}},
		{"Empty", []float64{}, []float64{}, []float64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			Add(tc.dst, tc.s)
			assert.Equal(t, tc.expected, tc.dst)
		})
	}
}

func TestAdd_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Add([]float64{1, 2}, []float64{1})
	})
}

func TestDivideInPlace(t *testing.T) {
	v := []float64{3, 6, 9}
	DivideInPlace(v, 3)
	assert.Equal(t, []float64{1, 2, 3}, v)

	// 1/3 via division, not 1 * (1/3.0).
	w := []float64{1}
	DivideInPlace(w, 3)
	assert.Equal(t, 1.0/3.0, w[0])
}

func TestClone(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := Clone(src)
	require.Equal(t, src, dst)

	dst[0] = 42
	assert.Equal(t, 1.0, src[0], "clone must not alias its source")

	assert.Nil(t, Clone(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]float64{1, 2}, []float64{1, 2}))
	assert.False(t, Equal([]float64{1, 2}, []float64{1, 3}))
	assert.False(t, Equal([]float64{1, 2}, []float64{1}))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-1e300))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}
