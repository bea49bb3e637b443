package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line.
type ParseError struct {
	Line   int // 1-based
	Column int // 1-based field index, 0 if not field specific
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("dataset: line %d, field %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrFieldCount is wrapped by ParseError when a line has a different number of
// coordinates than the first point.
var ErrFieldCount = csv.ErrFieldCount

// Parse reads points from r until EOF.
//
// Blank lines are skipped and surrounding whitespace of each coordinate is
// ignored. A single trailing comma ends a line without adding a coordinate,
// so "1,2," is the point (1, 2). Every point must have the same number of
// coordinates as the first. An empty input yields no points and no error.
func Parse(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rows [][]float64
		dim  int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Line: pe.Line, Err: pe.Err}
			}
			return nil, err
		}

		if n := len(rec); n > 1 && strings.TrimSpace(rec[n-1]) == "" {
			rec = rec[:n-1]
		}
		if dim == 0 {
			dim = len(rec)
		} else if len(rec) != dim {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{Line: line, Err: ErrFieldCount}
		}

		row := make([]float64, len(rec))
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{Line: line, Column: i + 1, Err: err}
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
}

// Write writes rows to w, one per line, coordinates with four decimals.
func Write(w io.Writer, rows [][]float64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for _, row := range rows {
		buf = buf[:0]
		for i, v := range row {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
