package tablevec

import (
	"time"

	"github.com/hupe1980/tablevec/frame"
	"github.com/hupe1980/tablevec/inspect"
)

// TableVectorizer turns a heterogeneous table into a numeric feature
// frame. At fit time it infers per-column types, routes columns into
// the numeric, datetime, low-cardinality and high-cardinality groups,
// and fits the configured transformer of each group. Transform replays
// the recorded plan against new data with the same column set.
//
// A TableVectorizer is safe for concurrent Transform calls once fitted.
// Fit and FitTransform must not run concurrently with any other method.
type TableVectorizer struct {
	opts    *options
	logger  *Logger
	metrics MetricsCollector

	fitted       bool
	plan         *inspect.Plan
	bindings     []*binding
	remainder    []string
	featureNames []string
}

// New creates a TableVectorizer with the given options applied on top
// of the defaults. It returns a *ConfigurationError when an option
// value is invalid.
func New(optFns ...Option) (*TableVectorizer, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &TableVectorizer{
		opts:    opts,
		logger:  opts.logger,
		metrics: opts.metrics,
	}, nil
}

// Fit learns the routing plan and fits every group transformer on x.
// Calling Fit again replaces all previously learned state.
func (tv *TableVectorizer) Fit(x *frame.Frame) error {
	start := time.Now()
	err := tv.fit(x)
	tv.metrics.RecordFit(x.NumCols(), time.Since(start), err)
	return err
}

func (tv *TableVectorizer) fit(x *frame.Frame) error {
	casted := x

	var plan *inspect.Plan
	if tv.opts.autoCast {
		var err error
		casted, plan, err = inspect.AutoCast(x)
		if err != nil {
			return err
		}
		for _, cp := range plan.Columns {
			if cp.Downgraded {
				tv.logger.WithColumn(cp.Name).Debug("auto cast downgraded column to categorical")
				tv.metrics.RecordDowngrade(cp.Name)
			}
		}
	}

	bindings, remainder := tv.route(casted)

	var featureNames []string
	for _, b := range bindings {
		cols, err := b.selectColumns(casted)
		if err != nil {
			return err
		}
		b.learnFills(cols)
		cols = b.applyFills(cols)

		if err := b.enc.Fit(cols); err != nil {
			return &TransformerError{Op: "fit", Group: b.group, Columns: b.columns, cause: translateError(err)}
		}
		names, err := b.enc.FeatureNames()
		if err != nil {
			return &TransformerError{Op: "fit", Group: b.group, Columns: b.columns, cause: translateError(err)}
		}
		b.featureNames = names
		featureNames = append(featureNames, names...)

		tv.logger.WithGroup(b.group).Info("fitted group transformer",
			"columns", len(b.columns), "features", len(names))
	}

	if tv.opts.remainder == PassthroughRemainder {
		featureNames = append(featureNames, remainder...)
	}

	tv.plan = plan
	tv.bindings = bindings
	tv.remainder = remainder
	tv.featureNames = featureNames
	tv.fitted = true

	return nil
}

// Transform applies the fitted plan to x and returns the feature frame.
// x must contain every column seen at fit time; extra columns are
// ignored. It returns ErrNotFitted before a successful Fit.
func (tv *TableVectorizer) Transform(x *frame.Frame) (*frame.Frame, error) {
	start := time.Now()
	out, err := tv.transform(x)
	rows := 0
	if out != nil {
		rows = out.NumRows()
	}
	tv.metrics.RecordTransform(rows, time.Since(start), err)
	return out, err
}

func (tv *TableVectorizer) transform(x *frame.Frame) (*frame.Frame, error) {
	if !tv.fitted {
		return nil, ErrNotFitted
	}

	casted := x
	if tv.plan != nil {
		var err error
		casted, err = tv.plan.Apply(x)
		if err != nil {
			return nil, err
		}
	}

	var frames []*frame.Frame
	for _, b := range tv.bindings {
		cols, err := b.selectColumns(casted)
		if err != nil {
			return nil, err
		}
		cols = b.applyFills(cols)

		out, err := b.enc.Transform(cols)
		if err != nil {
			return nil, &TransformerError{Op: "transform", Group: b.group, Columns: b.columns, cause: translateError(err)}
		}
		frames = append(frames, out)
	}

	if tv.opts.remainder == PassthroughRemainder && len(tv.remainder) > 0 {
		rest, err := casted.Select(tv.remainder...)
		if err != nil {
			return nil, err
		}
		frames = append(frames, rest)
	}

	if len(frames) == 0 {
		return frame.New()
	}
	return frame.Concat(frames...)
}

// FitTransform fits on x and transforms the same frame in one call. The
// result is identical to calling Fit followed by Transform.
func (tv *TableVectorizer) FitTransform(x *frame.Frame) (*frame.Frame, error) {
	if err := tv.Fit(x); err != nil {
		return nil, err
	}
	return tv.Transform(x)
}

// FeatureNames returns the output column names in transform order. It
// returns ErrNotFitted before a successful Fit.
func (tv *TableVectorizer) FeatureNames() ([]string, error) {
	if !tv.fitted {
		return nil, ErrNotFitted
	}
	out := make([]string, len(tv.featureNames))
	copy(out, tv.featureNames)
	return out, nil
}

// Transformers reports the fitted routing decisions, one Binding per
// group that claimed at least one column, in group-definition order.
func (tv *TableVectorizer) Transformers() ([]Binding, error) {
	if !tv.fitted {
		return nil, ErrNotFitted
	}
	out := make([]Binding, 0, len(tv.bindings))
	for _, b := range tv.bindings {
		out = append(out, Binding{
			Group:        b.group,
			Transformer:  b.spec,
			Columns:      append([]string(nil), b.columns...),
			FeatureNames: append([]string(nil), b.featureNames...),
		})
	}
	return out, nil
}

// RemainderColumns returns the columns that no group claimed at fit
// time, in original table order.
func (tv *TableVectorizer) RemainderColumns() ([]string, error) {
	if !tv.fitted {
		return nil, ErrNotFitted
	}
	return append([]string(nil), tv.remainder...), nil
}
