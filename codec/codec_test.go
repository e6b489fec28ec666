package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func TestRoundTripAllCodecs(t *testing.T) {
	in := payload{Name: "col", Values: []float64{1.5, -2.25, 0}}

	for _, name := range []string{"json", "go-json", "zstd+json", "zstd+go-json", "lz4+json", "lz4+go-json"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())

		data, err := c.Marshal(in)
		require.NoError(t, err, name)

		var out payload
		require.NoError(t, c.Unmarshal(data, &out), name)
		assert.Equal(t, in, out, name)
	}
}

func TestByNameUnknown(t *testing.T) {
	_, ok := ByName("gob")
	assert.False(t, ok)
}

func TestJSONAndGoJSONAreWireCompatible(t *testing.T) {
	in := payload{Name: "x", Values: []float64{1}}

	data, err := (JSON{}).Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, (GoJSON{}).Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCompressedCodecsShrinkRepetitiveData(t *testing.T) {
	big := payload{Name: "repeat"}
	for i := 0; i < 4096; i++ {
		big.Values = append(big.Values, 42)
	}

	plain := MustMarshal(JSON{}, big)
	compressed := MustMarshal(Zstd(JSON{}), big)
	assert.Less(t, len(compressed), len(plain))
}
