package frame

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New(
		NewIntColumn("a", []int64{1}),
		NewIntColumn("a", []int64{2}),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")
}

func TestAppendRejectsLengthMismatch(t *testing.T) {
	f, err := New(NewIntColumn("a", []int64{1, 2}))
	require.NoError(t, err)

	err = f.Append(NewIntColumn("b", []int64{1, 2, 3}))
	require.Error(t, err)
}

func TestSelectPreservesRequestedOrder(t *testing.T) {
	f, err := New(
		NewIntColumn("a", []int64{1}),
		NewIntColumn("b", []int64{2}),
		NewIntColumn("c", []int64{3}),
	)
	require.NoError(t, err)

	sub, err := f.Select("c", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, sub.Names())

	_, err = f.Select("missing")
	require.Error(t, err)
}

func TestConcat(t *testing.T) {
	f1, err := New(NewIntColumn("a", []int64{1, 2}))
	require.NoError(t, err)
	f2, err := New(NewFloatColumn("b", []float64{0.5, 1.5}))
	require.NoError(t, err)

	out, err := Concat(f1, nil, f2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out.Names())
	assert.Equal(t, 2, out.NumRows())

	// Overlapping names must fail.
	_, err = Concat(f1, f1)
	require.Error(t, err)
}

func TestDense(t *testing.T) {
	f, err := New(
		NewIntColumn("i", []int64{1, 2, 3}),
		NewFloatColumn("f", []float64{0.5, math.NaN(), 2.5}),
	)
	require.NoError(t, err)

	m, err := f.Dense()
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 0.5, m.At(0, 1))
	assert.True(t, math.IsNaN(m.At(1, 1)), "missing value should become NaN")
}

func TestDenseRejectsNonNumeric(t *testing.T) {
	f, err := New(NewStringColumn("s", []string{"x", "y"}))
	require.NoError(t, err)

	_, err = f.Dense()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric")
}

func TestReadCSV(t *testing.T) {
	in := "name,age\nalice,34\nbob,27\n"
	f, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, f.Names())
	assert.Equal(t, 2, f.NumRows())

	age, ok := f.Column("age")
	require.True(t, ok)
	assert.Equal(t, KindString, age.Kind())
	assert.Equal(t, "34", age.Str(0))
}

func TestReadCSVRaggedRow(t *testing.T) {
	// encoding/csv reports inconsistent field counts itself.
	_, err := ReadCSV(strings.NewReader("a,b\n1\n"))
	require.Error(t, err)
}
