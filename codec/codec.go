// Package codec centralizes the encoding of persisted vectorizer state.
//
// Codec selection is a compatibility boundary: snapshots record the codec
// name in their header, and a snapshot written with one codec can only be
// opened by resolving that name via ByName. Changing the default codec
// never breaks existing snapshots.
package codec

import "fmt"

// Codec encodes and decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}

// ByName returns a built-in codec by its stable name.
//
// Snapshot headers store the codec name; this resolves it on load.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "zstd+json":
		return Zstd(JSON{}), true
	case "zstd+go-json":
		return Zstd(GoJSON{}), true
	case "lz4+json":
		return LZ4(JSON{}), true
	case "lz4+go-json":
		return LZ4(GoJSON{}), true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
