package tablevec

import (
	"time"

	"github.com/hupe1980/tablevec/encoder"
	"github.com/hupe1980/tablevec/frame"
	"github.com/hupe1980/tablevec/inspect"
)

// Binding is the read-only audit view of one fit-time routing decision:
// which columns a group claimed and which feature names its transformer
// produced.
type Binding struct {
	// Group is the group name ("numeric", "datetime", "low_card_cat",
	// "high_card_cat").
	Group string

	// Transformer is the configured transformer: an encoder.Encoder or
	// a Directive.
	Transformer any

	// Columns are the claimed input columns, in original table order.
	Columns []string

	// FeatureNames are the transformer's output names, in output order.
	FeatureNames []string
}

// imputation is a per-column fill value learned at fit time and replayed
// on every transform.
type imputation struct {
	Column string     `json:"column"`
	Kind   frame.Kind `json:"kind"`
	Float  float64    `json:"float,omitempty"`
	Str    string     `json:"str,omitempty"`
	Time   time.Time  `json:"time"`
	Valid  bool       `json:"valid"`
}

// binding is the internal routing unit: one group bound to one encoder
// instance and its claimed columns. The binding list is built once per
// fit and replaced wholesale on re-fit, never mutated in place.
type binding struct {
	group        string
	spec         any // configured value: encoder.Encoder or Directive
	enc          encoder.Encoder
	columns      []string
	skipImpute   bool
	fills        map[string]imputation
	featureNames []string
}

// route classifies the casted columns into groups and creates bindings
// in the fixed group-definition order. Groups with no transformer or no
// columns contribute no binding; their columns fall to the remainder.
func (tv *TableVectorizer) route(casted *frame.Frame) ([]*binding, []string) {
	var numeric, datetime []string
	var categorical []*frame.Column
	for _, c := range casted.Columns() {
		switch {
		case c.Kind().Numeric():
			numeric = append(numeric, c.Name())
		case c.Kind() == frame.KindTime:
			datetime = append(datetime, c.Name())
		default:
			categorical = append(categorical, c)
		}
	}
	low, high := inspect.SplitByCardinality(categorical, tv.opts.threshold)

	groupCols := map[string][]string{
		GroupNumeric:  numeric,
		GroupDatetime: datetime,
		GroupLowCard:  low,
		GroupHighCard: high,
	}

	var bindings []*binding
	claimed := make(map[string]bool)
	for _, group := range groupOrder {
		spec := tv.opts.transformers[group]
		cols := groupCols[group]
		if spec == nil || len(cols) == 0 {
			continue
		}
		b := &binding{
			group:      group,
			spec:       spec,
			columns:    cols,
			skipImpute: tv.opts.impute == SkipImpute || spec == Skip,
		}
		if _, ok := spec.(Directive); ok {
			b.enc = encoder.NewPassthrough()
		} else {
			b.enc = spec.(encoder.Encoder)
		}
		for _, name := range cols {
			claimed[name] = true
		}
		bindings = append(bindings, b)
	}

	var remainder []string
	for _, name := range casted.Names() {
		if !claimed[name] {
			remainder = append(remainder, name)
		}
	}
	return bindings, remainder
}

// learnFills computes the fill value for every column of the binding.
// Numeric columns fill with the mean, categorical and datetime columns
// with the most frequent value. All-missing columns get no fill.
func (b *binding) learnFills(cols []*frame.Column) {
	b.fills = make(map[string]imputation, len(cols))
	if b.skipImpute {
		return
	}
	for _, c := range cols {
		imp := imputation{Column: c.Name(), Kind: c.Kind()}
		switch {
		case c.Kind().Numeric():
			if mean, ok := c.Mean(); ok {
				imp.Float, imp.Valid = mean, true
			}
		case c.Kind() == frame.KindTime:
			if v, ok := c.MostFrequent(); ok {
				if t, err := time.Parse(time.RFC3339, v); err == nil {
					imp.Time, imp.Valid = t, true
				}
			}
		default:
			if v, ok := c.MostFrequent(); ok {
				imp.Str, imp.Valid = v, true
			}
		}
		b.fills[c.Name()] = imp
	}
}

// applyFills replays the learned fill values against the given columns.
func (b *binding) applyFills(cols []*frame.Column) []*frame.Column {
	if b.skipImpute {
		return cols
	}
	out := make([]*frame.Column, len(cols))
	for i, c := range cols {
		imp, ok := b.fills[c.Name()]
		if !ok || !imp.Valid || !c.HasMissing() {
			out[i] = c
			continue
		}
		switch {
		case c.Kind().Numeric():
			out[i] = c.FillMissingFloat(imp.Float)
		case c.Kind() == frame.KindTime:
			out[i] = c.FillMissingTime(imp.Time)
		default:
			out[i] = c.FillMissingString(imp.Str)
		}
	}
	return out
}

// selectColumns pulls the binding's columns from the casted frame.
func (b *binding) selectColumns(casted *frame.Frame) ([]*frame.Column, error) {
	sub, err := casted.Select(b.columns...)
	if err != nil {
		return nil, err
	}
	return sub.Columns(), nil
}
