package encoder

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablevec/frame"
)

func TestDatetimeExpansion(t *testing.T) {
	ts := time.Date(2022, 3, 15, 10, 30, 0, 0, time.UTC)
	cols := []*frame.Column{frame.NewTimeColumn("when", []time.Time{ts})}

	e := NewDatetime()
	require.NoError(t, e.Fit(cols))

	names, err := e.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"when_year", "when_month", "when_day", "when_hour", "when_total_seconds",
	}, names)

	out, err := e.Transform(cols)
	require.NoError(t, err)

	get := func(name string) float64 {
		c, ok := out.Column(name)
		require.True(t, ok)
		return c.Float(0)
	}
	assert.Equal(t, 2022.0, get("when_year"))
	assert.Equal(t, 3.0, get("when_month"))
	assert.Equal(t, 15.0, get("when_day"))
	assert.Equal(t, 10.0, get("when_hour"))
	assert.Equal(t, float64(ts.Unix()), get("when_total_seconds"))
}

func TestDatetimeMissingExpandsToMissing(t *testing.T) {
	cols := []*frame.Column{frame.NewTimeColumn("when", []time.Time{
		{}, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})}

	e := NewDatetime()
	require.NoError(t, e.Fit(cols))
	out, err := e.Transform(cols)
	require.NoError(t, err)

	for _, name := range out.Names() {
		c, _ := out.Column(name)
		assert.True(t, math.IsNaN(c.Float(0)), "%s row 0", name)
		assert.False(t, math.IsNaN(c.Float(1)), "%s row 1", name)
	}
}

func TestDatetimeRejectsNonTime(t *testing.T) {
	e := NewDatetime()
	err := e.Fit([]*frame.Column{frame.NewStringColumn("s", []string{"2022-01-01"})})
	require.Error(t, err)
}
