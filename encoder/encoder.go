// Package encoder defines the feature-encoding transformer contract used
// by the table vectorizer and provides the built-in encoders: one-hot,
// standard scaling, min-hash, datetime expansion and passthrough.
//
// Every encoder follows the same three-method contract: Fit learns state
// from its assigned columns, Transform produces a frame of output feature
// columns, and FeatureNames reports the output column names in transform
// order. Transform and FeatureNames fail with ErrNotFitted before Fit.
//
// Encoders register a stable type name so fitted state can be persisted
// and restored (see Register and New).
package encoder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/tablevec/frame"
)

// ErrNotFitted is returned by Transform and FeatureNames before Fit.
var ErrNotFitted = errors.New("encoder is not fitted")

// Encoder learns a column-to-feature mapping at fit time and applies it
// at transform time. Implementations are not safe for concurrent Fit.
type Encoder interface {
	// Fit learns encoding state from the assigned columns.
	Fit(cols []*frame.Column) error

	// Transform encodes the columns into output feature columns.
	// The input columns must match the fitted columns by name and order.
	Transform(cols []*frame.Column) (*frame.Frame, error)

	// FeatureNames returns the output column names, one per output
	// feature, in transform order.
	FeatureNames() ([]string, error)
}

// Stateful is implemented by encoders whose fitted state can be
// snapshotted and restored. State must round-trip through JSON via
// exported fields.
type Stateful interface {
	Encoder

	// TypeName returns the stable registry name of the encoder.
	TypeName() string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Stateful{}
)

// Register adds a named encoder factory. Built-in encoders register
// themselves; custom encoders must register before snapshots referring
// to them are loaded. Registering a duplicate name panics.
func Register(name string, factory func() Stateful) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		panic(fmt.Sprintf("encoder: duplicate registration of %q", name))
	}
	registry[name] = factory
}

// New creates a registered encoder by type name.
func New(name string) (Stateful, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("encoder: unknown encoder type %q", name)
	}
	return factory(), nil
}

func init() {
	Register("onehot", func() Stateful { return NewOneHot() })
	Register("standard_scaler", func() Stateful { return NewStandardScaler() })
	Register("minhash", func() Stateful { return NewMinHash(DefaultMinHashComponents) })
	Register("datetime", func() Stateful { return NewDatetime() })
	Register("passthrough", func() Stateful { return NewPassthrough() })
}

// checkColumns verifies that the transform input matches the fitted
// column names in order.
func checkColumns(fitted []string, cols []*frame.Column) error {
	if len(cols) != len(fitted) {
		return fmt.Errorf("encoder: got %d columns, fitted on %d", len(cols), len(fitted))
	}
	for i, c := range cols {
		if c.Name() != fitted[i] {
			return fmt.Errorf("encoder: column %d is %q, fitted on %q", i, c.Name(), fitted[i])
		}
	}
	return nil
}

func columnNames(cols []*frame.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name()
	}
	return names
}
