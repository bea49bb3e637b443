package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when no rows are supplied.
	ErrEmpty = errors.New("kmeans: no rows")

	// ErrZeroDimension is returned when rows have no coordinates.
	ErrZeroDimension = errors.New("kmeans: zero dimension")
)

// DimensionError reports a row whose length differs from the expected dimension.
type DimensionError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("kmeans: row %d has dimension %d, expected %d", e.Row, e.Actual, e.Expected)
}

// CoordinateError reports a NaN or infinite coordinate.
type CoordinateError struct {
	Row   int
	Dim   int
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("kmeans: row %d coordinate %d is not finite (%v)", e.Row, e.Dim, e.Value)
}
