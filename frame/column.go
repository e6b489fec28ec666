package frame

import (
	"math"
	"sort"
	"strconv"
	"time"
)

// Kind is the semantic type of a column.
type Kind uint8

const (
	// KindString holds opaque categorical strings.
	KindString Kind = iota
	// KindInt holds 64-bit integers. An int column cannot represent
	// missing values after casting; columns with missing values are
	// promoted to KindFloat.
	KindInt
	// KindFloat holds 64-bit floats. NaN counts as missing.
	KindFloat
	// KindTime holds native timestamps.
	KindTime
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Numeric reports whether the kind has a numeric representation.
func (k Kind) Numeric() bool { return k == KindInt || k == KindFloat }

// Column is a named sequence of values of a single kind with a validity
// mask. valid[i] == false marks row i as missing.
type Column struct {
	name    string
	kind    Kind
	ints    []int64
	floats  []float64
	strings []string
	times   []time.Time
	valid   []bool
}

// NewStringColumn creates a string column. All values are valid; use
// SetMissing (or the inspect package's sentinel normalization) to mark
// missing entries.
func NewStringColumn(name string, values []string) *Column {
	return &Column{name: name, kind: KindString, strings: values, valid: allValid(len(values))}
}

// NewIntColumn creates an int column.
func NewIntColumn(name string, values []int64) *Column {
	return &Column{name: name, kind: KindInt, ints: values, valid: allValid(len(values))}
}

// NewFloatColumn creates a float column. NaN values are marked missing.
func NewFloatColumn(name string, values []float64) *Column {
	c := &Column{name: name, kind: KindFloat, floats: values, valid: allValid(len(values))}
	for i, v := range values {
		if math.IsNaN(v) {
			c.valid[i] = false
		}
	}
	return c
}

// NewTimeColumn creates a timestamp column. The zero time is the
// missing sentinel for timestamps, mirroring NaN for float columns:
// zero values are marked missing and cannot round-trip as valid data.
// Real-world timestamps never normalize to the zero instant (year 1,
// UTC), so no valid input collides with the sentinel.
func NewTimeColumn(name string, values []time.Time) *Column {
	c := &Column{name: name, kind: KindTime, times: values, valid: allValid(len(values))}
	for i, v := range values {
		if v.IsZero() {
			c.valid[i] = false
		}
	}
	return c
}

func allValid(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.valid) }

// Missing reports whether row i is missing.
func (c *Column) Missing(i int) bool { return !c.valid[i] }

// SetMissing marks row i as missing.
func (c *Column) SetMissing(i int) { c.valid[i] = false }

// MissingCount returns the number of missing rows.
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.valid {
		if !v {
			n++
		}
	}
	return n
}

// HasMissing reports whether any row is missing.
func (c *Column) HasMissing() bool {
	for _, v := range c.valid {
		if !v {
			return true
		}
	}
	return false
}

// Str returns the string value at row i. Valid only for KindString.
func (c *Column) Str(i int) string { return c.strings[i] }

// Int returns the integer value at row i. Valid only for KindInt.
func (c *Column) Int(i int) int64 { return c.ints[i] }

// Time returns the timestamp at row i. Valid only for KindTime.
func (c *Column) Time(i int) time.Time { return c.times[i] }

// Float returns the value at row i as a float64 for numeric kinds.
// Missing rows return NaN.
func (c *Column) Float(i int) float64 {
	if !c.valid[i] {
		return math.NaN()
	}
	switch c.kind {
	case KindInt:
		return float64(c.ints[i])
	case KindFloat:
		return c.floats[i]
	default:
		return math.NaN()
	}
}

// Render returns a string representation of the value at row i,
// independent of kind. Missing rows render as the empty string.
func (c *Column) Render(i int) string {
	if !c.valid[i] {
		return ""
	}
	switch c.kind {
	case KindString:
		return c.strings[i]
	case KindInt:
		return strconv.FormatInt(c.ints[i], 10)
	case KindFloat:
		return strconv.FormatFloat(c.floats[i], 'g', -1, 64)
	case KindTime:
		return c.times[i].Format(time.RFC3339)
	default:
		return ""
	}
}

// Distinct returns the number of distinct non-missing values.
func (c *Column) Distinct() int { return len(c.DistinctValues()) }

// DistinctValues returns the sorted distinct non-missing values,
// rendered as strings.
func (c *Column) DistinctValues() []string {
	seen := make(map[string]struct{})
	for i := 0; i < c.Len(); i++ {
		if !c.valid[i] {
			continue
		}
		seen[c.Render(i)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy of the column.
func (c *Column) Clone() *Column {
	out := &Column{name: c.name, kind: c.kind}
	out.valid = append([]bool(nil), c.valid...)
	out.ints = append([]int64(nil), c.ints...)
	out.floats = append([]float64(nil), c.floats...)
	out.strings = append([]string(nil), c.strings...)
	out.times = append([]time.Time(nil), c.times...)
	return out
}

// Rename returns a shallow copy of the column under a new name.
func (c *Column) Rename(name string) *Column {
	out := *c
	out.name = name
	return &out
}

// FillMissingFloat returns a copy with missing rows replaced by v.
// Valid only for numeric kinds; int columns are promoted to float.
func (c *Column) FillMissingFloat(v float64) *Column {
	out := make([]float64, c.Len())
	for i := range out {
		if c.valid[i] {
			out[i] = c.Float(i)
		} else {
			out[i] = v
		}
	}
	return NewFloatColumn(c.name, out)
}

// FillMissingString returns a copy with missing rows replaced by v.
// Valid only for KindString.
func (c *Column) FillMissingString(v string) *Column {
	out := append([]string(nil), c.strings...)
	for i := range out {
		if !c.valid[i] {
			out[i] = v
		}
	}
	return NewStringColumn(c.name, out)
}

// FillMissingTime returns a copy with missing rows replaced by v.
// Valid only for KindTime.
func (c *Column) FillMissingTime(v time.Time) *Column {
	out := append([]time.Time(nil), c.times...)
	for i := range out {
		if !c.valid[i] {
			out[i] = v
		}
	}
	return NewTimeColumn(c.name, out)
}

// MostFrequent returns the most frequent non-missing rendered value.
// Ties break towards the lexicographically smallest value so the result
// is deterministic. The second return is false for all-missing columns.
func (c *Column) MostFrequent() (string, bool) {
	counts := make(map[string]int)
	for i := 0; i < c.Len(); i++ {
		if c.valid[i] {
			counts[c.Render(i)]++
		}
	}
	if len(counts) == 0 {
		return "", false
	}
	best, bestN := "", -1
	for v, n := range counts {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best, true
}

// Mean returns the mean of the non-missing values of a numeric column.
// The second return is false for all-missing or non-numeric columns.
func (c *Column) Mean() (float64, bool) {
	if !c.kind.Numeric() {
		return 0, false
	}
	sum, n := 0.0, 0
	for i := 0; i < c.Len(); i++ {
		if c.valid[i] {
			sum += c.Float(i)
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
