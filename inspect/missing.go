package inspect

import (
	"strings"

	"github.com/hupe1980/tablevec/frame"
)

// Recognized missing-value sentinels for string columns. Real-world
// exports mix several spellings in a single column; they all normalize
// to the one missing marker before counting or casting.
var missingSentinels = map[string]struct{}{
	"":     {},
	"nan":  {},
	"null": {},
	"none": {},
	"na":   {},
	"n/a":  {},
	"<na>": {},
	"?":    {},
	"-":    {},
}

// IsMissingToken reports whether the string is a recognized
// missing-value sentinel. Matching is case-insensitive and ignores
// surrounding whitespace.
func IsMissingToken(s string) bool {
	_, ok := missingSentinels[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// NormalizeMissing returns a copy of a string column with every
// recognized sentinel marked as missing. Non-string columns are
// returned unchanged.
func NormalizeMissing(col *frame.Column) *frame.Column {
	if col.Kind() != frame.KindString {
		return col
	}
	out := col.Clone()
	for i := 0; i < out.Len(); i++ {
		if out.Missing(i) {
			continue
		}
		if IsMissingToken(out.Str(i)) {
			out.SetMissing(i)
		}
	}
	return out
}
