package encoder

import (
	"github.com/hupe1980/tablevec/frame"
)

// Passthrough emits its assigned columns unchanged: no width change and
// no value change beyond any casting performed upstream. It backs the
// "passthrough" and "skip" routing directives.
type Passthrough struct {
	Columns []string `json:"columns"`
	Fitted  bool     `json:"fitted"`
}

// NewPassthrough creates an unfitted passthrough encoder.
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// TypeName implements Stateful.
func (e *Passthrough) TypeName() string { return "passthrough" }

// Fit records the assigned columns.
func (e *Passthrough) Fit(cols []*frame.Column) error {
	e.Columns = columnNames(cols)
	e.Fitted = true
	return nil
}

// Transform returns the columns as-is.
func (e *Passthrough) Transform(cols []*frame.Column) (*frame.Frame, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	if err := checkColumns(e.Columns, cols); err != nil {
		return nil, err
	}
	return frame.New(cols...)
}

// FeatureNames returns the fitted column names.
func (e *Passthrough) FeatureNames() ([]string, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	return append([]string(nil), e.Columns...), nil
}
