package encoder

import (
	"fmt"

	"github.com/hupe1980/tablevec/frame"
)

// OneHot encodes categorical columns as binary indicator features, one
// per distinct non-missing value observed at fit time.
//
// Output features are ordered by column (in the fitted column order) and
// value-sorted within each column, named "{column}_{value}". Values not
// seen at fit time, and missing values, encode to all zeros.
type OneHot struct {
	Columns    []string            `json:"columns"`
	Vocabulary map[string][]string `json:"vocabulary"`
	Fitted     bool                `json:"fitted"`
}

// NewOneHot creates an unfitted one-hot encoder.
func NewOneHot() *OneHot {
	return &OneHot{}
}

// TypeName implements Stateful.
func (e *OneHot) TypeName() string { return "onehot" }

// Fit learns the per-column vocabulary of distinct non-missing values.
func (e *OneHot) Fit(cols []*frame.Column) error {
	vocab := make(map[string][]string, len(cols))
	for _, c := range cols {
		vocab[c.Name()] = c.DistinctValues()
	}
	e.Columns = columnNames(cols)
	e.Vocabulary = vocab
	e.Fitted = true
	return nil
}

// Transform encodes the columns as 0/1 indicator columns.
func (e *OneHot) Transform(cols []*frame.Column) (*frame.Frame, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	if err := checkColumns(e.Columns, cols); err != nil {
		return nil, err
	}

	out := make([]*frame.Column, 0)
	for _, c := range cols {
		vocab := e.Vocabulary[c.Name()]
		hot := make(map[string]int, len(vocab))
		for j, v := range vocab {
			hot[v] = j
		}
		indicators := make([][]float64, len(vocab))
		for j := range indicators {
			indicators[j] = make([]float64, c.Len())
		}
		for i := 0; i < c.Len(); i++ {
			if c.Missing(i) {
				continue
			}
			if j, ok := hot[c.Render(i)]; ok {
				indicators[j][i] = 1
			}
		}
		for j, v := range vocab {
			name := fmt.Sprintf("%s_%s", c.Name(), v)
			out = append(out, frame.NewFloatColumn(name, indicators[j]))
		}
	}
	return frame.New(out...)
}

// FeatureNames returns "{column}_{value}" names in column order, values
// sorted within each column.
func (e *OneHot) FeatureNames() ([]string, error) {
	if !e.Fitted {
		return nil, ErrNotFitted
	}
	var names []string
	for _, col := range e.Columns {
		for _, v := range e.Vocabulary[col] {
			names = append(names, fmt.Sprintf("%s_%s", col, v))
		}
	}
	return names, nil
}
