package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrDimension is returned when inputs disagree on the number of coordinates.
	ErrDimension = errors.New("dataset: inputs have different dimensions")

	// ErrStdinReused is returned when standard input is named more than once.
	ErrStdinReused = errors.New("dataset: standard input can only be read once")
)

// maxConcurrentLoads bounds parallel input fetches.
const maxConcurrentLoads = 4

// Load reads and concatenates the points of all uris, in argument order.
// Inputs are fetched concurrently. No uris means standard input.
func Load(ctx context.Context, r *Resolver, uris ...string) ([][]float64, error) {
	if len(uris) == 0 {
		uris = []string{Stdio}
	}

	stdin := 0
	for _, u := range uris {
		if u == "" || u == Stdio {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, ErrStdinReused
	}

	parts := make([][][]float64, len(uris))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, uri := range uris {
		g.Go(func() error {
			rows, err := LoadOne(gctx, r, uri)
			if err != nil {
				return err
			}
			parts[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		out [][]float64
		dim = -1
	)
	for i, rows := range parts {
		if len(rows) == 0 {
			continue
		}
		if dim < 0 {
			dim = len(rows[0])
		} else if len(rows[0]) != dim {
			return nil, fmt.Errorf("%w: %s has %d, expected %d", ErrDimension, uris[i], len(rows[0]), dim)
		}
		out = append(out, rows...)
	}
	return out, nil
}

// LoadOne reads the points of a single uri.
func LoadOne(ctx context.Context, r *Resolver, uri string) ([][]float64, error) {
	rc, err := r.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	rows, err := Parse(rc)
	if err != nil {
		if uri == "" || uri == Stdio {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", uri, err)
	}
	return rows, nil
}

// Save writes rows to uri in the text format.
func Save(ctx context.Context, r *Resolver, uri string, rows [][]float64) error {
	var buf bytes.Buffer
	if err := Write(&buf, rows); err != nil {
		return err
	}
	return r.Put(ctx, uri, buf.Bytes())
}
