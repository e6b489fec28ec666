package encoder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablevec/frame"
)

func TestStandardScaler(t *testing.T) {
	cols := []*frame.Column{
		frame.NewFloatColumn("x", []float64{2, 4, 6}),
	}

	e := NewStandardScaler()
	require.NoError(t, e.Fit(cols))

	assert.Equal(t, []float64{4}, e.Means)
	assert.InDelta(t, math.Sqrt(8.0/3.0), e.Stds[0], 1e-12)

	out, err := e.Transform(cols)
	require.NoError(t, err)

	c, _ := out.Column("x")
	assert.InDelta(t, 0.0, c.Float(0)+c.Float(2), 1e-12, "symmetric around mean")
	assert.InDelta(t, 0.0, c.Float(1), 1e-12)
}

func TestStandardScalerConstantColumn(t *testing.T) {
	cols := []*frame.Column{frame.NewFloatColumn("x", []float64{5, 5, 5})}

	e := NewStandardScaler()
	require.NoError(t, e.Fit(cols))
	assert.Equal(t, 1.0, e.Stds[0])

	out, err := e.Transform(cols)
	require.NoError(t, err)
	c, _ := out.Column("x")
	assert.Equal(t, 0.0, c.Float(0))
}

func TestStandardScalerMissingStaysMissing(t *testing.T) {
	cols := []*frame.Column{frame.NewFloatColumn("x", []float64{1, math.NaN(), 3})}

	e := NewStandardScaler()
	require.NoError(t, e.Fit(cols))

	out, err := e.Transform(cols)
	require.NoError(t, err)
	c, _ := out.Column("x")
	assert.True(t, c.Missing(1))
}

func TestStandardScalerRejectsNonNumeric(t *testing.T) {
	e := NewStandardScaler()
	err := e.Fit([]*frame.Column{frame.NewStringColumn("s", []string{"x"})})
	require.Error(t, err)
}

func TestStandardScalerIntColumns(t *testing.T) {
	cols := []*frame.Column{frame.NewIntColumn("n", []int64{1, 3})}

	e := NewStandardScaler()
	require.NoError(t, e.Fit(cols))
	assert.Equal(t, []float64{2}, e.Means)

	names, err := e.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, names)
}
