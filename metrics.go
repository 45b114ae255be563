package gridgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each AddLineSegment call. cells is the
	// number of cells the segment was registered in, duration the time
	// taken, err nil on success.
	RecordInsert(cells int, duration time.Duration, err error)

	// RecordQuery is called after each Query call. candidates is the size
	// of the cell-overlap candidate set, results the final result count.
	RecordQuery(candidates, results int, duration time.Duration)

	// RecordBatchQuery is called after each BatchQuery call. boxes is the
	// number of query boxes attempted.
	RecordBatchQuery(boxes int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordQuery(int, int, time.Duration)        {}
func (NoopMetricsCollector) RecordBatchQuery(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	CellsRegistered  atomic.Int64
	QueryCount       atomic.Int64
	QueryTotalNanos  atomic.Int64
	CandidateCount   atomic.Int64
	ResultCount      atomic.Int64
	BatchQueryCount  atomic.Int64
	BatchQueryErrors atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(cells int, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.CellsRegistered.Add(int64(cells))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(candidates, results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
	b.CandidateCount.Add(int64(candidates))
	b.ResultCount.Add(int64(results))
}

// RecordBatchQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchQuery(boxes int, duration time.Duration, err error) {
	b.BatchQueryCount.Add(1)
	if err != nil {
		b.BatchQueryErrors.Add(1)
	}
}
