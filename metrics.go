package tablevec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus.
type MetricsCollector interface {
	// RecordFit is called after each fit. columns is the number of
	// input columns, duration the total time taken, err nil on success.
	RecordFit(columns int, duration time.Duration, err error)

	// RecordTransform is called after each transform. rows is the
	// number of input rows.
	RecordTransform(rows int, duration time.Duration, err error)

	// RecordDowngrade is called once per column that fell back to
	// categorical-string because its content only partially parsed as
	// numeric or datetime.
	RecordDowngrade(column string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordTransform(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDowngrade(string)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	FitCount            atomic.Int64
	FitErrors           atomic.Int64
	FitTotalNanos       atomic.Int64
	TransformCount      atomic.Int64
	TransformErrors     atomic.Int64
	TransformTotalNanos atomic.Int64
	Downgrades          atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(_ int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordTransform implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTransform(_ int, duration time.Duration, err error) {
	b.TransformCount.Add(1)
	b.TransformTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.TransformErrors.Add(1)
	}
}

// RecordDowngrade implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDowngrade(string) {
	b.Downgrades.Add(1)
}
