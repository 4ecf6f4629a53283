package bitscan

import (
	"log/slog"
	"math"
)

const (
	// DefaultMaxCapacity is the largest capacity New accepts unless overridden
	// with WithMaxCapacity (1<<36 bits, 8 GiB of words, on 64-bit platforms).
	DefaultMaxCapacity = min(1<<36, math.MaxInt)

	// HardMaxCapacity caps WithMaxCapacity. It keeps the word count within
	// what the runtime can address as a []uint64 on every platform.
	HardMaxCapacity = min(1<<48, math.MaxInt)
)

type options struct {
	maxCapacity      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a BitSet at construction.
type Option func(*options)

// WithMaxCapacity sets the largest capacity New will allocate. Requests above
// it fail with ErrAllocationFailure instead of attempting the allocation.
//
// Non-positive values restore DefaultMaxCapacity. Values above
// HardMaxCapacity are clamped to it.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxCapacity
		}
		o.maxCapacity = min(n, HardMaxCapacity)
	}
}

// WithMetricsCollector enables metrics collection for a BitSet.
// Pass nil to disable.
//
// Example:
//
//	metrics := &bitscan.BasicMetricsCollector{}
//	bs, _ := bitscan.New(1024, bitscan.WithMetricsCollector(metrics))
//	// ... use bs ...
//	stats := metrics.GetStats()
//	fmt.Printf("sets: %d, errors: %d\n", stats.SetCount, stats.Errors)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitscan.NewJSONLogger(slog.LevelDebug)
//	bs, _ := bitscan.New(1024, bitscan.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxCapacity:      DefaultMaxCapacity,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
