package bitscan

import "sync/atomic"

// Op identifies a BitSet operation in metrics and logs.
type Op uint8

const (
	// OpSet is BitSet.Set.
	OpSet Op = iota
	// OpClear is BitSet.Clear.
	OpClear
	// OpTest is BitSet.Test.
	OpTest
	// OpReset is BitSet.Reset.
	OpReset
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpClear:
		return "clear"
	case OpTest:
		return "test"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called on the hot path of every operation and must be cheap.
type MetricsCollector interface {
	// RecordOp is called after each Set, Clear, Test or Reset.
	// err is nil if successful.
	RecordOp(op Op, err error)

	// RecordScan is called after each NextSetBit or Cursor.Advance.
	// found reports whether a set bit was returned.
	RecordScan(found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOp(Op, error) {}
func (NoopMetricsCollector) RecordScan(bool)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between BitSets used on different goroutines.
type BasicMetricsCollector struct {
	SetCount   atomic.Int64
	ClearCount atomic.Int64
	TestCount  atomic.Int64
	ResetCount atomic.Int64
	Errors     atomic.Int64
	ScanCount  atomic.Int64
	ScanHits   atomic.Int64
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(op Op, err error) {
	switch op {
	case OpSet:
		b.SetCount.Add(1)
	case OpClear:
		b.ClearCount.Add(1)
	case OpTest:
		b.TestCount.Add(1)
	case OpReset:
		b.ResetCount.Add(1)
	}
	if err != nil {
		b.Errors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(found bool) {
	b.ScanCount.Add(1)
	if found {
		b.ScanHits.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCount:   b.SetCount.Load(),
		ClearCount: b.ClearCount.Load(),
		TestCount:  b.TestCount.Load(),
		ResetCount: b.ResetCount.Load(),
		Errors:     b.Errors.Load(),
		ScanCount:  b.ScanCount.Load(),
		ScanHits:   b.ScanHits.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCount   int64
	ClearCount int64
	TestCount  int64
	ResetCount int64
	Errors     int64
	ScanCount  int64
	ScanHits   int64
}
