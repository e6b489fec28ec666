// Package frame implements the tabular data structure consumed by the
// table vectorizer: ordered named columns of uniform length with per-column
// type tags and a validity mask for missing values.
//
// A Frame is deliberately small. It is not a dataframe library; it supports
// exactly what type inference and transformer routing need: dtype inspection,
// column selection, value replacement and horizontal concatenation.
package frame

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Frame is an ordered collection of equally sized named columns.
// Column names are unique within a frame.
type Frame struct {
	cols  []*Column
	index map[string]int
}

// New creates a frame from the given columns.
// All columns must have distinct names and equal length.
func New(cols ...*Column) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := f.Append(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Append adds a column to the end of the frame.
func (f *Frame) Append(c *Column) error {
	if c == nil {
		return fmt.Errorf("frame: nil column")
	}
	if _, ok := f.index[c.name]; ok {
		return fmt.Errorf("frame: duplicate column name %q", c.name)
	}
	if len(f.cols) > 0 && c.Len() != f.cols[0].Len() {
		return fmt.Errorf("frame: column %q has %d rows, frame has %d", c.name, c.Len(), f.cols[0].Len())
	}
	f.index[c.name] = len(f.cols)
	f.cols = append(f.cols, c)
	return nil
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// Columns returns the columns in frame order.
// The returned slice is a copy; the columns are shared.
func (f *Frame) Columns() []*Column {
	cols := make([]*Column, len(f.cols))
	copy(cols, f.cols)
	return cols
}

// Column returns the named column, or false if absent.
func (f *Frame) Column(name string) (*Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.cols[i], true
}

// Select returns a new frame holding the named columns, in the given order.
// The columns are shared, not copied.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := &Frame{index: make(map[string]int, len(names))}
	for _, name := range names {
		c, ok := f.Column(name)
		if !ok {
			return nil, fmt.Errorf("frame: column %q not found", name)
		}
		if err := out.Append(c); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Concat horizontally concatenates frames, preserving the argument order.
// All frames must have the same number of rows and disjoint column names.
func Concat(frames ...*Frame) (*Frame, error) {
	out := &Frame{index: make(map[string]int)}
	for _, fr := range frames {
		if fr == nil {
			continue
		}
		for _, c := range fr.cols {
			if err := out.Append(c); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Dense converts the frame to a gonum dense matrix of float64 values.
// Missing values become NaN. It fails if any column is non-numeric
// (strings and timestamps have no canonical numeric representation;
// encode them first).
func (f *Frame) Dense() (*mat.Dense, error) {
	if len(f.cols) == 0 {
		return nil, fmt.Errorf("frame: cannot build a matrix from an empty frame")
	}
	rows, cols := f.NumRows(), f.NumCols()
	if rows == 0 {
		return nil, fmt.Errorf("frame: cannot build a matrix with zero rows")
	}
	data := make([]float64, rows*cols)
	for j, c := range f.cols {
		if !c.kind.Numeric() {
			return nil, fmt.Errorf("frame: column %q has kind %s, want a numeric kind", c.name, c.kind)
		}
		for i := 0; i < rows; i++ {
			data[i*cols+j] = c.Float(i)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
