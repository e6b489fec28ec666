package encoder

import (
	"fmt"
	"math"

	"github.com/hupe1980/tablevec/frame"
)

// StandardScaler standardizes numeric columns to zero mean and unit
// variance. Statistics are computed over non-missing values at fit time.
// Output width equals input width; names are the column names.
type StandardScaler struct {
	Columns []string  `json:"columns"`
	Means   []float64 `json:"means"`
	Stds    []float64 `json:"stds"`
	Fitted  bool      `json:"fitted"`
}

// NewStandardScaler creates an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// TypeName implements Stateful.
func (e *StandardScaler) TypeName() string { return "standard_scaler" }

// Fit computes per-column mean and standard deviation.
func (e *StandardScaler) Fit(cols []*frame.Column) error {
	means := make([]float64, len(cols))
	stds := make([]float64, len(cols))
	for j, c := range cols {
		if !c.Kind().Numeric() {
			return fmt.Errorf("standard scaler: column %q has kind %s, want a numeric kind", c.Name(), c.Kind())
		}
		mean, sum2, n := 0.0, 0.0, 0
		for i := 0; i < c.Len(); i++ {
			if !c.Missing(i) {
				mean += c.Float(i)
				n++
			}
		}
		if n > 0 {
			mean /= float64(n)
		}
		for i := 0; i < c.Len(); i++ {
			if !c.Missing(i) {
				d := c.Float(i) - mean
				sum2 += d * d
			}
		}
		std := 0.0
		if n > 0 {
			std = math.Sqrt(sum2 / float64(n))
		}
		// Constant columns scale by 1 so transform stays finite.
		if std == 0 {
			std = 1
		}
		means[j], stds[j] = mean, std
	}
	e.Columns = columnNames(cols)
	e.Means = means
	e.Stds = stds
	e.Fitted = true
	return nil
}

// Transform standardizes the columns with the fitted statistics.
// Missing values stay missing (NaN).
func (e *StandardScaler) Transform(cols []*frame.Column) (*frame.Frame, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	if err := checkColumns(e.Columns, cols); err != nil {
		return nil, err
	}
	out := make([]*frame.Column, len(cols))
	for j, c := range cols {
		vals := make([]float64, c.Len())
		for i := 0; i < c.Len(); i++ {
			if c.Missing(i) {
				vals[i] = math.NaN()
				continue
			}
			vals[i] = (c.Float(i) - e.Means[j]) / e.Stds[j]
		}
		out[j] = frame.NewFloatColumn(c.Name(), vals)
	}
	return frame.New(out...)
}

// FeatureNames returns the fitted column names.
func (e *StandardScaler) FeatureNames() ([]string, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	return append([]string(nil), e.Columns...), nil
}
