package tablevec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/tablevec/encoder"
)

// ErrNotFitted is returned by Transform, FeatureNames and Transformers
// before a successful Fit.
var ErrNotFitted = errors.New("table vectorizer is not fitted; call Fit or FitTransform first")

// ConfigurationError indicates an invalid option or option combination.
// It is returned eagerly from New, never deferred to Transform.
type ConfigurationError struct {
	Option string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%v: %s", e.Option, e.Value, e.Reason)
}

// TransformerError wraps a failure surfaced by a delegated transformer
// during fit or transform. The underlying error is preserved and can be
// accessed via errors.Unwrap.
type TransformerError struct {
	Op      string // "fit" or "transform"
	Group   string
	Columns []string
	cause   error
}

func (e *TransformerError) Error() string {
	return fmt.Sprintf("%s failed for group %q (columns %s): %v",
		e.Op, e.Group, strings.Join(e.Columns, ", "), e.cause)
}

func (e *TransformerError) Unwrap() error { return e.cause }

// translateError normalizes sub-package errors at the API boundary.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoder.ErrNotFitted) {
		return fmt.Errorf("%w: %w", ErrNotFitted, err)
	}
	return err
}
