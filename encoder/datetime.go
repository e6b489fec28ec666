package encoder

import (
	"fmt"
	"math"

	"github.com/hupe1980/tablevec/frame"
)

// Datetime expands timestamp columns into numeric calendar components:
// "{col}_year", "{col}_month", "{col}_day", "{col}_hour" and
// "{col}_total_seconds" (Unix seconds). Missing timestamps expand to
// missing (NaN) components.
type Datetime struct {
	Columns []string `json:"columns"`
	Fitted  bool     `json:"fitted"`
}

var datetimeComponents = []string{"year", "month", "day", "hour", "total_seconds"}

// NewDatetime creates an unfitted datetime expansion encoder.
func NewDatetime() *Datetime {
	return &Datetime{}
}

// TypeName implements Stateful.
func (e *Datetime) TypeName() string { return "datetime" }

// Fit records the assigned columns; the expansion has no learned state.
func (e *Datetime) Fit(cols []*frame.Column) error {
	for _, c := range cols {
		if c.Kind() != frame.KindTime {
			return fmt.Errorf("datetime encoder: column %q has kind %s, want time", c.Name(), c.Kind())
		}
	}
	e.Columns = columnNames(cols)
	e.Fitted = true
	return nil
}

// Transform expands each timestamp column into its components.
func (e *Datetime) Transform(cols []*frame.Column) (*frame.Frame, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	if err := checkColumns(e.Columns, cols); err != nil {
		return nil, err
	}
	out := make([]*frame.Column, 0, len(cols)*len(datetimeComponents))
	for _, c := range cols {
		comps := make([][]float64, len(datetimeComponents))
		for k := range comps {
			comps[k] = make([]float64, c.Len())
		}
		for i := 0; i < c.Len(); i++ {
			if c.Missing(i) {
				for k := range comps {
					comps[k][i] = math.NaN()
				}
				continue
			}
			t := c.Time(i)
			comps[0][i] = float64(t.Year())
			comps[1][i] = float64(t.Month())
			comps[2][i] = float64(t.Day())
			comps[3][i] = float64(t.Hour())
			comps[4][i] = float64(t.Unix())
		}
		for k, suffix := range datetimeComponents {
			name := fmt.Sprintf("%s_%s", c.Name(), suffix)
			out = append(out, frame.NewFloatColumn(name, comps[k]))
		}
	}
	return frame.New(out...)
}

// FeatureNames returns the component names in column order.
func (e *Datetime) FeatureNames() ([]string, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	names := make([]string, 0, len(e.Columns)*len(datetimeComponents))
	for _, col := range e.Columns {
		for _, suffix := range datetimeComponents {
			names = append(names, fmt.Sprintf("%s_%s", col, suffix))
		}
	}
	return names, nil
}
