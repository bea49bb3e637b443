package kmeanspp

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeanspp/internal/kmeans"
)

var (
	// ErrInvalidK is returned when the cluster count does not satisfy 1 < k < N
	// or does not match the number of seeds.
	ErrInvalidK = errors.New("invalid number of clusters")

	// ErrInvalidIterations is returned when the round budget is below 1.
	ErrInvalidIterations = errors.New("invalid maximum iteration")

	// ErrInvalidEpsilon is returned when the tolerance is negative, NaN or infinite.
	ErrInvalidEpsilon = errors.New("invalid epsilon")

	// ErrEmptyDataset is returned when no points are supplied.
	ErrEmptyDataset = errors.New("empty dataset")
)

// Kind names the input a validation error refers to.
type Kind string

const (
	KindPoint Kind = "point"
	KindSeed  Kind = "seed"
)

// ErrDimensionMismatch indicates a point or seed whose dimensionality differs
// from the dataset dimension.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Kind     Kind
	Index    int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s %d has %d coordinates, expected %d", e.Kind, e.Index, e.Actual, e.Expected)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidCoordinate indicates a NaN or infinite coordinate.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidCoordinate struct {
	Kind  Kind
	Index int
	Dim   int
	Value float64
	cause error
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: %s %d dimension %d is %v", e.Kind, e.Index, e.Dim, e.Value)
}

func (e *ErrInvalidCoordinate) Unwrap() error { return e.cause }

// translateError maps engine validation errors onto the public error types.
func translateError(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, kmeans.ErrEmpty) {
		if kind == KindSeed {
			return fmt.Errorf("%w: %w", ErrInvalidK, err)
		}
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}
	if errors.Is(err, kmeans.ErrZeroDimension) {
		return &ErrDimensionMismatch{Kind: kind, Expected: 1, Actual: 0, cause: err}
	}

	var de *kmeans.DimensionError
	if errors.As(err, &de) {
		return &ErrDimensionMismatch{Kind: kind, Index: de.Row, Expected: de.Expected, Actual: de.Actual, cause: err}
	}
	var ce *kmeans.CoordinateError
	if errors.As(err, &ce) {
		return &ErrInvalidCoordinate{Kind: kind, Index: ce.Row, Dim: ce.Dim, Value: ce.Value, cause: err}
	}

	return err
}
