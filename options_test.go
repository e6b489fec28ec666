package tablevec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		option string
	}{
		{
			name:   "zero threshold",
			opts:   []Option{WithCardinalityThreshold(0)},
			option: "cardinality_threshold",
		},
		{
			name:   "negative threshold",
			opts:   []Option{WithCardinalityThreshold(-5)},
			option: "cardinality_threshold",
		},
		{
			name:   "unknown directive",
			opts:   []Option{WithNumericalTransformer(Directive("bogus"))},
			option: "numeric_transformer",
		},
		{
			name:   "unsupported transformer type",
			opts:   []Option{WithLowCardCatTransformer(42)},
			option: "low_card_cat_transformer",
		},
		{
			name:   "unknown impute policy",
			opts:   []Option{WithImputeMissing(ImputePolicy("bogus"))},
			option: "impute_missing",
		},
		{
			name:   "unknown remainder policy",
			opts:   []Option{WithRemainder(RemainderPolicy("bogus"))},
			option: "remainder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce), "want ConfigurationError, got %v", err)
			assert.Equal(t, tt.option, ce.Option)
		})
	}
}

func TestNilTransformerIsValid(t *testing.T) {
	_, err := New(
		WithLowCardCatTransformer(nil),
		WithHighCardCatTransformer(nil),
	)
	require.NoError(t, err)
}

func TestDirectivesAreValid(t *testing.T) {
	_, err := New(
		WithNumericalTransformer(Passthrough),
		WithDatetimeTransformer(Skip),
	)
	require.NoError(t, err)
}

func TestNilLoggerAndMetricsFallBack(t *testing.T) {
	tv, err := New(WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)
	require.NotNil(t, tv.logger)
	require.NotNil(t, tv.metrics)
}
