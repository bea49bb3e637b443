package kmeans

import "github.com/hupe1980/kmeanspp/internal/math64"

// Points is an immutable N×d point collection.
type Points struct {
	data []float64
	n    int
	dim  int
}

// NewPoints copies rows into a contiguous buffer.
// All rows must share the dimension of the first row.
func NewPoints(rows [][]float64) (*Points, error) {
	data, dim, err := flatten(rows, 0)
	if err != nil {
		return nil, err
	}
	return &Points{data: data, n: len(rows), dim: dim}, nil
}

// Len returns the number of points.
func (p *Points) Len() int { return p.n }

// Dim returns the dimensionality shared by all points.
func (p *Points) Dim() int { return p.dim }

// At returns point i. The slice aliases internal storage and must not be modified.
func (p *Points) At(i int) []float64 {
	return p.data[i*p.dim : (i+1)*p.dim]
}

// flatten validates rows and copies them into a single backing array.
// If dim is 0 it is taken from the first row.
func flatten(rows [][]float64, dim int) ([]float64, int, error) {
	if len(rows) == 0 {
		return nil, 0, ErrEmpty
	}
	if dim == 0 {
		dim = len(rows[0])
	}
	if dim == 0 {
		return nil, 0, ErrZeroDimension
	}

	data := make([]float64, 0, len(rows)*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, 0, &DimensionError{Row: i, Expected: dim, Actual: len(row)}
		}
		for j, v := range row {
			if !math64.IsFinite(v) {
				return nil, 0, &CoordinateError{Row: i, Dim: j, Value: v}
			}
		}
		data = append(data, row...)
	}
	return data, dim, nil
}
