package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricOpsTotal    = "misctools.ops.total"
	metricOpDuration  = "misctools.op.duration.seconds"
	metricErrorsTotal = "misctools.errors.total"
	metricItemsTotal  = "misctools.items.total"

	attrOp     = "op"
	attrStatus = "status"
	attrKind   = "kind"
)

const (
	// StatusOK marks a completed operation.
	StatusOK = "ok"

	// StatusError marks a failed operation.
	StatusError = "error"
)

// durationBucketBoundaries covers 10ms to 600s: directory scans finish
// in seconds while solver campaigns run for minutes.
var durationBucketBoundaries = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600}

// OpMetrics holds the OTel instruments recorded around tool operations.
type OpMetrics struct {
	opsTotal    metric.Int64Counter
	opDuration  metric.Float64Histogram
	errorsTotal metric.Int64Counter
	itemsTotal  metric.Int64Counter
}

// NewOpMetrics creates the operation instruments from the given meter.
func NewOpMetrics(mt metric.Meter) (*OpMetrics, error) {
	opsTotal, err := mt.Int64Counter(metricOpsTotal,
		metric.WithDescription("Total number of operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOpsTotal, err)
	}

	opDuration, err := mt.Float64Histogram(metricOpDuration,
		metric.WithDescription("Operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricOpDuration, err)
	}

	errorsTotal, err := mt.Int64Counter(metricErrorsTotal,
		metric.WithDescription("Total number of failed operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricErrorsTotal, err)
	}

	itemsTotal, err := mt.Int64Counter(metricItemsTotal,
		metric.WithDescription("Total number of items processed"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricItemsTotal, err)
	}

	return &OpMetrics{
		opsTotal:    opsTotal,
		opDuration:  opDuration,
		errorsTotal: errorsTotal,
		itemsTotal:  itemsTotal,
	}, nil
}

// RecordOp records a completed operation with its status and duration.
func (om *OpMetrics) RecordOp(ctx context.Context, op, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	om.opsTotal.Add(ctx, 1, attrs)
	om.opDuration.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		om.errorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrOp, op),
		))
	}
}

// AddItems counts items an operation processed, such as scanned files
// or launched models.
func (om *OpMetrics) AddItems(ctx context.Context, op, kind string, n int64) {
	om.itemsTotal.Add(ctx, n, metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrKind, kind),
	))
}
