package tablevec

import (
	"github.com/hupe1980/tablevec/codec"
	"github.com/hupe1980/tablevec/encoder"
)

// Transformer group names, in routing order.
const (
	GroupNumeric  = "numeric"
	GroupDatetime = "datetime"
	GroupLowCard  = "low_card_cat"
	GroupHighCard = "high_card_cat"
)

// groupOrder fixes the group-definition order used for binding
// construction, output concatenation and feature naming.
var groupOrder = []string{GroupNumeric, GroupDatetime, GroupLowCard, GroupHighCard}

// Directive selects built-in column handling in place of an encoder.
type Directive string

const (
	// Passthrough emits the group's columns unchanged (no width change,
	// values unchanged except for earlier casting).
	Passthrough Directive = "passthrough"

	// Skip is Passthrough with missing-value imputation bypassed for
	// the group.
	Skip Directive = "skip"
)

// ImputePolicy controls missing-value imputation before encoding.
type ImputePolicy string

const (
	// Impute fills missing values before encoding: numeric columns with
	// the fit-time mean, categorical and datetime columns with the
	// fit-time most frequent value.
	Impute ImputePolicy = "impute"

	// SkipImpute leaves missing values in place.
	SkipImpute ImputePolicy = "skip"
)

// RemainderPolicy controls columns not claimed by any group.
type RemainderPolicy string

const (
	// DropRemainder drops unclaimed columns.
	DropRemainder RemainderPolicy = "drop"

	// PassthroughRemainder appends unclaimed columns unchanged, in
	// original order, after all group outputs.
	PassthroughRemainder RemainderPolicy = "passthrough"
)

// DefaultCardinalityThreshold is the inclusive distinct-count boundary
// below which a categorical column is low-cardinality.
const DefaultCardinalityThreshold = 40

type options struct {
	threshold    int
	transformers map[string]any // group name -> encoder.Encoder | Directive | nil
	autoCast     bool
	impute       ImputePolicy
	remainder    RemainderPolicy
	logger       *Logger
	metrics      MetricsCollector
	codec        codec.Codec
}

// Option configures a TableVectorizer at construction.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		threshold: DefaultCardinalityThreshold,
		transformers: map[string]any{
			GroupNumeric:  nil,
			GroupDatetime: nil,
			GroupLowCard:  encoder.NewOneHot(),
			GroupHighCard: encoder.NewMinHash(encoder.DefaultMinHashComponents),
		},
		autoCast:  true,
		impute:    Impute,
		remainder: DropRemainder,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
		codec:     codec.Default,
	}
}

// WithCardinalityThreshold sets the inclusive low-cardinality boundary:
// a categorical column with at most threshold distinct non-missing
// values routes to the low-cardinality group.
func WithCardinalityThreshold(threshold int) Option {
	return func(o *options) { o.threshold = threshold }
}

// WithNumericalTransformer sets the transformer for numeric columns:
// an encoder.Encoder, a Directive, or nil to leave numeric columns to
// the remainder policy (the default).
func WithNumericalTransformer(t any) Option {
	return func(o *options) { o.transformers[GroupNumeric] = t }
}

// WithDatetimeTransformer sets the transformer for datetime columns.
// Defaults to nil (remainder policy).
func WithDatetimeTransformer(t any) Option {
	return func(o *options) { o.transformers[GroupDatetime] = t }
}

// WithLowCardCatTransformer sets the transformer for low-cardinality
// categorical columns. Defaults to a one-hot encoder.
func WithLowCardCatTransformer(t any) Option {
	return func(o *options) { o.transformers[GroupLowCard] = t }
}

// WithHighCardCatTransformer sets the transformer for high-cardinality
// categorical columns. Defaults to a min-hash encoder.
func WithHighCardCatTransformer(t any) Option {
	return func(o *options) { o.transformers[GroupHighCard] = t }
}

// WithAutoCast enables or disables the type-detection casting step.
// When disabled, columns are routed by their existing kinds and values
// are not re-parsed. Enabled by default.
func WithAutoCast(enabled bool) Option {
	return func(o *options) { o.autoCast = enabled }
}

// WithImputeMissing sets the missing-value imputation policy.
func WithImputeMissing(policy ImputePolicy) Option {
	return func(o *options) { o.impute = policy }
}

// WithRemainder sets the policy for columns not claimed by any group.
func WithRemainder(policy RemainderPolicy) Option {
	return func(o *options) { o.remainder = policy }
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector. Pass nil to disable
// metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithCodec sets the codec used by Save and Load for fitted snapshots.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

func (o *options) validate() error {
	if o.threshold <= 0 {
		return &ConfigurationError{Option: "cardinality_threshold", Value: o.threshold, Reason: "must be positive"}
	}
	switch o.impute {
	case Impute, SkipImpute:
	default:
		return &ConfigurationError{Option: "impute_missing", Value: o.impute, Reason: `must be "impute" or "skip"`}
	}
	switch o.remainder {
	case DropRemainder, PassthroughRemainder:
	default:
		return &ConfigurationError{Option: "remainder", Value: o.remainder, Reason: `must be "drop" or "passthrough"`}
	}
	for _, group := range groupOrder {
		t := o.transformers[group]
		switch v := t.(type) {
		case nil:
		case Directive:
			if v != Passthrough && v != Skip {
				return &ConfigurationError{Option: group + "_transformer", Value: v, Reason: `unknown directive; want "passthrough" or "skip"`}
			}
		case encoder.Encoder:
		default:
			return &ConfigurationError{Option: group + "_transformer", Value: t, Reason: "must be an encoder.Encoder, a Directive or nil"}
		}
	}
	return nil
}
