package inspect

import (
	"strings"
	"time"

	"github.com/hupe1980/tablevec/frame"
)

// Datetime layouts in detection priority order. Families: ISO-like first,
// then day-month-year, then year-month-day with non-ISO separators, and
// month-day-year last. Within a family, layouts with a time-of-day
// component precede date-only layouts.
//
// Day-first layouts take precedence over month-first: a column like
// "02-12-2012" that parses under both is classified day-month-year.
var datetimeLayouts = []string{
	// ISO-like
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	// day-month-year
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	"02.01.2006 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	// year-month-day, non-ISO separators
	"2006/01/02 15:04:05",
	"2006.01.02 15:04:05",
	"2006/01/02",
	"2006.01.02",
	// month-day-year
	"01-02-2006 15:04:05",
	"01/02/2006 15:04:05",
	"01-02-2006",
	"01/02/2006",
}

// detectDatetime returns the first layout that parses every non-missing
// value of the column. Detection runs once per column; the winning layout
// is recorded in the plan and applied to all rows.
func detectDatetime(col *frame.Column) (string, bool) {
	seen := false
	for i := 0; i < col.Len(); i++ {
		if !col.Missing(i) {
			seen = true
			break
		}
	}
	if !seen {
		return "", false
	}

	for _, layout := range datetimeLayouts {
		if layoutParsesAll(layout, col) {
			return layout, true
		}
	}
	return "", false
}

func layoutParsesAll(layout string, col *frame.Column) bool {
	for i := 0; i < col.Len(); i++ {
		if col.Missing(i) {
			continue
		}
		if _, err := time.Parse(layout, strings.TrimSpace(col.Str(i))); err != nil {
			return false
		}
	}
	return true
}

// parseAnyLayout reports whether the value parses under any known layout.
// Used only for downgrade observability, never for casting.
func parseAnyLayout(s string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
