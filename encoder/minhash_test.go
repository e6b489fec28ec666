package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tablevec/frame"
)

func TestMinHashDimensionsAndNames(t *testing.T) {
	cols := []*frame.Column{
		frame.NewStringColumn("id", []string{"alpha", "beta"}),
	}

	e := NewMinHash(4)
	require.NoError(t, e.Fit(cols))

	names, err := e.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"id_0", "id_1", "id_2", "id_3"}, names)

	out, err := e.Transform(cols)
	require.NoError(t, err)
	assert.Equal(t, names, out.Names())
	assert.Equal(t, 2, out.NumRows())
}

func TestMinHashDeterministic(t *testing.T) {
	cols := []*frame.Column{
		frame.NewStringColumn("id", []string{"employee benefits", "senior engineer"}),
	}

	e1 := NewMinHash(8)
	require.NoError(t, e1.Fit(cols))
	out1, err := e1.Transform(cols)
	require.NoError(t, err)

	e2 := NewMinHash(8)
	require.NoError(t, e2.Fit(cols))
	out2, err := e2.Transform(cols)
	require.NoError(t, err)

	for _, name := range out1.Names() {
		c1, _ := out1.Column(name)
		c2, _ := out2.Column(name)
		for i := 0; i < c1.Len(); i++ {
			assert.Equal(t, c1.Float(i), c2.Float(i))
		}
	}
}

func TestMinHashSimilarStringsShareComponents(t *testing.T) {
	cols := []*frame.Column{
		frame.NewStringColumn("id", []string{"data engineer", "data engineering", "florist"}),
	}

	e := NewMinHash(32)
	require.NoError(t, e.Fit(cols))
	out, err := e.Transform(cols)
	require.NoError(t, err)

	// Rows sharing most grams must collide on more components than
	// unrelated rows.
	equal := func(a, b int) int {
		n := 0
		for _, name := range out.Names() {
			c, _ := out.Column(name)
			if c.Float(a) == c.Float(b) {
				n++
			}
		}
		return n
	}
	assert.Greater(t, equal(0, 1), equal(0, 2))
}

func TestMinHashMissingEncodesToZeros(t *testing.T) {
	c := frame.NewStringColumn("id", []string{"value", "x"})
	c.SetMissing(1)

	e := NewMinHash(3)
	require.NoError(t, e.Fit([]*frame.Column{c}))
	out, err := e.Transform([]*frame.Column{c})
	require.NoError(t, err)

	for _, name := range out.Names() {
		oc, _ := out.Column(name)
		assert.Equal(t, 0.0, oc.Float(1))
	}
}

func TestMinHashShortStringsUseWholeValue(t *testing.T) {
	cols := []*frame.Column{frame.NewStringColumn("id", []string{"ab", "ab"})}

	e := NewMinHash(2)
	require.NoError(t, e.Fit(cols))
	out, err := e.Transform(cols)
	require.NoError(t, err)

	for _, name := range out.Names() {
		c, _ := out.Column(name)
		assert.Equal(t, c.Float(0), c.Float(1))
		assert.Greater(t, c.Float(0), 0.0)
	}
}

func TestMinHashInvalidComponents(t *testing.T) {
	e := &MinHash{NComponents: 0}
	err := e.Fit(nil)
	require.Error(t, err)
}
