package inspect

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablevec/frame"
)

func col(f *frame.Frame, name string) *frame.Column {
	c, ok := f.Column(name)
	if !ok {
		panic("missing column " + name)
	}
	return c
}

func TestAutoCast_CleanNumeric(t *testing.T) {
	f, err := frame.New(
		frame.NewStringColumn("ints", []string{"1", "2", "3"}),
		frame.NewStringColumn("floats", []string{"1.5", "2.0", "-0.5"}),
	)
	require.NoError(t, err)

	out, plan, err := AutoCast(f)
	require.NoError(t, err)

	assert.Equal(t, frame.KindInt, col(out, "ints").Kind())
	assert.Equal(t, frame.KindFloat, col(out, "floats").Kind())
	assert.Equal(t, int64(2), col(out, "ints").Int(1))
	assert.Equal(t, -0.5, col(out, "floats").Float(2))

	for _, cp := range plan.Columns {
		assert.False(t, cp.Downgraded)
	}
}

func TestAutoCast_IntWithMissingBecomesFloat(t *testing.T) {
	f, err := frame.New(
		frame.NewStringColumn("v", []string{"1", "nan", "3"}),
	)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)

	c := col(out, "v")
	assert.Equal(t, frame.KindFloat, c.Kind())
	assert.True(t, c.Missing(1))
	assert.Equal(t, 3.0, c.Float(2))
}

func TestAutoCast_MissingSentinels(t *testing.T) {
	f, err := frame.New(
		frame.NewStringColumn("v", []string{"a", "", "NaN", "None", "N/A", "?", "b"}),
	)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)

	c := col(out, "v")
	assert.Equal(t, frame.KindString, c.Kind())
	assert.Equal(t, 5, c.MissingCount())
	assert.Equal(t, []string{"a", "b"}, c.DistinctValues())
}

func TestAutoCast_DirtyColumnDowngradesWithoutError(t *testing.T) {
	// Mostly numeric with one stray token: the column must stay
	// categorical and be flagged, never raise.
	f, err := frame.New(
		frame.NewStringColumn("v", []string{"1", "2", "oops", "4"}),
	)
	require.NoError(t, err)

	out, plan, err := AutoCast(f)
	require.NoError(t, err)

	assert.Equal(t, frame.KindString, col(out, "v").Kind())
	require.Len(t, plan.Columns, 1)
	assert.True(t, plan.Columns[0].Downgraded)
}

func TestAutoCast_HexStringsStayCategorical(t *testing.T) {
	// Base-prefixed codes are identifiers, not numbers. They must not
	// be coerced through base-0 integer parsing.
	f, err := frame.New(
		frame.NewStringColumn("code", []string{"0x10", "0x20", "0x30"}),
	)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)

	c := col(out, "code")
	assert.Equal(t, frame.KindString, c.Kind())
	assert.Equal(t, []string{"0x10", "0x20", "0x30"}, c.DistinctValues())
}

func TestAutoCast_LeadingZeroCodesParseDecimal(t *testing.T) {
	// Zero-padded codes parse under decimal semantics like their
	// unpadded form, so the whole column classifies uniformly.
	f, err := frame.New(
		frame.NewStringColumn("zip", []string{"08540", "02115", "10001"}),
	)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)

	c := col(out, "zip")
	assert.Equal(t, frame.KindInt, c.Kind())
	assert.Equal(t, int64(8540), c.Int(0))
	assert.Equal(t, int64(2115), c.Int(1))
}

func TestAutoCast_PureTextNotDowngraded(t *testing.T) {
	f, err := frame.New(
		frame.NewStringColumn("v", []string{"red", "green", "blue"}),
	)
	require.NoError(t, err)

	_, plan, err := AutoCast(f)
	require.NoError(t, err)
	assert.False(t, plan.Columns[0].Downgraded)
}

func TestAutoCast_NativeColumnsUntouched(t *testing.T) {
	ts := time.Date(2019, 5, 4, 12, 0, 0, 0, time.UTC)
	f, err := frame.New(
		frame.NewIntColumn("i", []int64{1, 2}),
		frame.NewFloatColumn("f", []float64{0.5, 1.5}),
		frame.NewTimeColumn("t", []time.Time{ts, ts.AddDate(1, 0, 0)}),
	)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)
	assert.Equal(t, frame.KindInt, col(out, "i").Kind())
	assert.Equal(t, frame.KindFloat, col(out, "f").Kind())

	// Native timestamps pass through without re-parsing.
	tc := col(out, "t")
	assert.Equal(t, frame.KindTime, tc.Kind())
	assert.Equal(t, ts, tc.Time(0))
}

func TestAutoCast_NativeIntWithMissingPromotes(t *testing.T) {
	c := frame.NewIntColumn("i", []int64{1, 2, 3})
	c.SetMissing(1)
	f, err := frame.New(c)
	require.NoError(t, err)

	out, _, err := AutoCast(f)
	require.NoError(t, err)

	got := col(out, "i")
	assert.Equal(t, frame.KindFloat, got.Kind())
	assert.True(t, math.IsNaN(got.Float(1)))
}

func TestPlanApply_ReplaysWithoutReinference(t *testing.T) {
	fit, err := frame.New(frame.NewStringColumn("v", []string{"1", "2"}))
	require.NoError(t, err)

	_, plan, err := AutoCast(fit)
	require.NoError(t, err)

	// New data that would not detect as int on its own. The plan still
	// applies the fitted decision; unparseable values degrade to missing.
	next, err := frame.New(frame.NewStringColumn("v", []string{"7", "oops"}))
	require.NoError(t, err)

	out, err := plan.Apply(next)
	require.NoError(t, err)

	c := col(out, "v")
	assert.Equal(t, frame.KindFloat, c.Kind(), "missing forces float")
	assert.Equal(t, 7.0, c.Float(0))
	assert.True(t, c.Missing(1))
}

func TestPlanApply_MissingColumn(t *testing.T) {
	fit, err := frame.New(frame.NewStringColumn("v", []string{"1"}))
	require.NoError(t, err)
	_, plan, err := AutoCast(fit)
	require.NoError(t, err)

	next, err := frame.New(frame.NewStringColumn("other", []string{"1"}))
	require.NoError(t, err)

	_, err = plan.Apply(next)
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, "v", mce.Column)
}

func TestPlanApply_ExtraColumnsIgnored(t *testing.T) {
	fit, err := frame.New(frame.NewStringColumn("v", []string{"1"}))
	require.NoError(t, err)
	_, plan, err := AutoCast(fit)
	require.NoError(t, err)

	next, err := frame.New(
		frame.NewStringColumn("v", []string{"2"}),
		frame.NewStringColumn("extra", []string{"x"}),
	)
	require.NoError(t, err)

	out, err := plan.Apply(next)
	require.NoError(t, err)
	assert.Equal(t, []string{"v"}, out.Names())
}

func TestSplitByCardinality_InclusiveBoundary(t *testing.T) {
	exactly := frame.NewStringColumn("exactly", []string{"a", "b", "c", "a"})
	above := frame.NewStringColumn("above", []string{"a", "b", "c", "d"})

	low, high := SplitByCardinality([]*frame.Column{exactly, above}, 3)
	assert.Equal(t, []string{"exactly"}, low)
	assert.Equal(t, []string{"above"}, high)
}

func TestIsMissingToken(t *testing.T) {
	for _, tok := range []string{"", "  ", "nan", "NaN", "NULL", "None", "na", "N/A", "<NA>", "?", "-"} {
		assert.True(t, IsMissingToken(tok), "token %q", tok)
	}
	for _, tok := range []string{"0", "nanometer", "banana", "x"} {
		assert.False(t, IsMissingToken(tok), "token %q", tok)
	}
}
