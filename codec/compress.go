package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Zstd wraps a codec with zstd block compression. The name composes as
// "zstd+{inner}", so compressed snapshots stay self-describing.
func Zstd(inner Codec) Codec {
	if inner == nil {
		inner = Default
	}
	return &zstdCodec{inner: inner}
}

type zstdCodec struct {
	inner Codec
}

func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(raw, nil), nil
}

func (c *zstdCodec) Unmarshal(data []byte, v any) error {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("zstd: %w", err)
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("zstd: %w", err)
	}
	return c.inner.Unmarshal(raw, v)
}

func (c *zstdCodec) Name() string { return "zstd+" + c.inner.Name() }

// LZ4 wraps a codec with lz4 frame compression. The name composes as
// "lz4+{inner}".
func LZ4(inner Codec) Codec {
	if inner == nil {
		inner = Default
	}
	return &lz4Codec{inner: inner}
}

type lz4Codec struct {
	inner Codec
}

func (c *lz4Codec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *lz4Codec) Unmarshal(data []byte, v any) error {
	raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return fmt.Errorf("lz4: %w", err)
	}
	return c.inner.Unmarshal(raw, v)
}

func (c *lz4Codec) Name() string { return "lz4+" + c.inner.Name() }
