// Package inspect implements automatic column type detection for tabular
// data: numeric and datetime recognition with best-effort casting, missing
// sentinel normalization and the cardinality split between low- and
// high-cardinality categorical columns.
//
// Detection is a two-phase protocol. Detect examines a frame once and
// produces a Plan: one cast decision per column (target kind plus, for
// datetime columns parsed from strings, the single winning layout). The
// plan is applied to the fitting frame and replayed verbatim on every
// later transform, so a column is never re-inferred against new data.
//
// Detection never fails. A column whose content does not fully parse as
// numeric or datetime degrades to categorical-string; individual values
// that fail the planned cast at replay time degrade to missing.
package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/hupe1980/tablevec/frame"
)

// ColumnPlan is the cast decision for a single column.
type ColumnPlan struct {
	Name   string     `json:"name"`
	Source frame.Kind `json:"source"`
	Target frame.Kind `json:"target"`
	// Layout is the winning datetime layout when a string column was
	// detected as datetime; empty otherwise.
	Layout string `json:"layout,omitempty"`
	// Downgraded marks a column that partially parsed as numeric or
	// datetime but fell back to categorical-string.
	Downgraded bool `json:"downgraded,omitempty"`
}

// Plan holds one cast decision per column, in frame order.
type Plan struct {
	Columns []ColumnPlan `json:"columns"`
}

// Detect inspects every column of f and returns the cast plan.
// It never reorders or renames columns and never fails.
func Detect(f *frame.Frame) *Plan {
	p := &Plan{Columns: make([]ColumnPlan, 0, f.NumCols())}
	for _, col := range f.Columns() {
		p.Columns = append(p.Columns, detectColumn(col))
	}
	return p
}

func detectColumn(col *frame.Column) ColumnPlan {
	cp := ColumnPlan{Name: col.Name(), Source: col.Kind(), Target: col.Kind()}

	switch col.Kind() {
	case frame.KindInt:
		// Integers cannot represent missing values.
		if col.HasMissing() {
			cp.Target = frame.KindFloat
		}
		return cp
	case frame.KindFloat, frame.KindTime:
		// Native numeric and timestamp columns are accepted as-is.
		return cp
	}

	norm := NormalizeMissing(col)

	if kind, ok := detectNumeric(norm); ok {
		cp.Target = kind
		return cp
	}
	if layout, ok := detectDatetime(norm); ok {
		cp.Target = frame.KindTime
		cp.Layout = layout
		return cp
	}

	cp.Target = frame.KindString
	cp.Downgraded = partiallyParses(norm)
	return cp
}

// detectNumeric classifies a normalized string column as KindInt or
// KindFloat when every non-missing value parses as a number. Any missing
// value forces KindFloat. Integer parsing is strictly decimal: base
// prefixes ("0x10") do not count as numbers, and leading-zero codes
// ("08540") parse the same as their unpadded form.
func detectNumeric(col *frame.Column) (frame.Kind, bool) {
	seen := false
	allInt := true
	for i := 0; i < col.Len(); i++ {
		if col.Missing(i) {
			continue
		}
		seen = true
		s := strings.TrimSpace(col.Str(i))
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			continue
		}
		allInt = false
		if _, err := cast.ToFloat64E(s); err != nil {
			return 0, false
		}
	}
	if !seen {
		return 0, false
	}
	if allInt && !col.HasMissing() {
		return frame.KindInt, true
	}
	return frame.KindFloat, true
}

// partiallyParses reports whether some, but not all, non-missing values
// parse as numeric or datetime. Such columns are observable downgrades.
func partiallyParses(col *frame.Column) bool {
	total, numeric, datetime := 0, 0, 0
	for i := 0; i < col.Len(); i++ {
		if col.Missing(i) {
			continue
		}
		total++
		s := strings.TrimSpace(col.Str(i))
		if _, err := cast.ToFloat64E(s); err == nil {
			numeric++
			continue
		}
		if _, ok := parseAnyLayout(s); ok {
			datetime++
		}
	}
	return total > 0 && (numeric > 0 || datetime > 0)
}

// AutoCast detects column types and casts f accordingly. It returns the
// casted frame and the plan to replay on later transforms.
func AutoCast(f *frame.Frame) (*frame.Frame, *Plan, error) {
	p := Detect(f)
	out, err := p.Apply(f)
	if err != nil {
		return nil, nil, err
	}
	return out, p, nil
}

// Apply replays a cast plan against a frame. Column order and names are
// preserved. Values that fail the planned cast degrade to missing; the
// only errors are structural (a planned column absent from the frame).
func (p *Plan) Apply(f *frame.Frame) (*frame.Frame, error) {
	out := make([]*frame.Column, 0, len(p.Columns))
	for _, cp := range p.Columns {
		col, ok := f.Column(cp.Name)
		if !ok {
			return nil, &MissingColumnError{Column: cp.Name}
		}
		out = append(out, cp.apply(col))
	}
	return frame.New(out...)
}

func (cp ColumnPlan) apply(col *frame.Column) *frame.Column {
	if col.Kind() != frame.KindString {
		return cp.applyNative(col)
	}

	norm := NormalizeMissing(col)
	switch cp.Target {
	case frame.KindInt:
		vals := make([]int64, norm.Len())
		missing := make([]int, 0)
		for i := 0; i < norm.Len(); i++ {
			if norm.Missing(i) {
				missing = append(missing, i)
				continue
			}
			v, err := strconv.ParseInt(strings.TrimSpace(norm.Str(i)), 10, 64)
			if err != nil {
				missing = append(missing, i)
				continue
			}
			vals[i] = v
		}
		// Missing values cannot live in an int column; promote.
		if len(missing) > 0 {
			return cp.toFloat(norm)
		}
		return frame.NewIntColumn(cp.Name, vals)
	case frame.KindFloat:
		return cp.toFloat(norm)
	case frame.KindTime:
		vals := make([]time.Time, norm.Len())
		for i := 0; i < norm.Len(); i++ {
			if norm.Missing(i) {
				continue
			}
			t, err := time.Parse(cp.Layout, strings.TrimSpace(norm.Str(i)))
			if err != nil {
				continue
			}
			vals[i] = t
		}
		return frame.NewTimeColumn(cp.Name, vals)
	default:
		return norm
	}
}

func (cp ColumnPlan) applyNative(col *frame.Column) *frame.Column {
	if col.Kind() == frame.KindInt && cp.Target == frame.KindFloat {
		vals := make([]float64, col.Len())
		for i := range vals {
			vals[i] = col.Float(i)
		}
		return frame.NewFloatColumn(cp.Name, vals)
	}
	return col.Clone()
}

func (cp ColumnPlan) toFloat(norm *frame.Column) *frame.Column {
	vals := make([]float64, norm.Len())
	for i := 0; i < norm.Len(); i++ {
		if norm.Missing(i) {
			vals[i] = math.NaN()
			continue
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(norm.Str(i)))
		if err != nil {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = v
	}
	return frame.NewFloatColumn(cp.Name, vals)
}

// MissingColumnError reports a planned column absent from the input frame.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("inspect: column %q not present in input", e.Column)
}

// SplitByCardinality partitions categorical column names into low- and
// high-cardinality buckets. The boundary is inclusive on the low side:
// a column with exactly threshold distinct non-missing values is low.
func SplitByCardinality(cols []*frame.Column, threshold int) (low, high []string) {
	for _, c := range cols {
		if c.Distinct() <= threshold {
			low = append(low, c.Name())
		} else {
			high = append(high, c.Name())
		}
	}
	return low, high
}
