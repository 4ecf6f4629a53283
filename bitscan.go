package bitscan

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/hupe1980/bitscan/internal/scan"
)

// BitSet is a fixed-capacity bit array over packed 64-bit words.
//
// Bits at or beyond the capacity inside the last word are always zero: the
// storage starts zeroed and every write is bounds-checked first.
//
// A BitSet is not safe for concurrent mutation. Concurrent calls to the
// read-only methods (Test, NextSetBit, All, From) are safe as long as no
// goroutine mutates the set at the same time.
type BitSet struct {
	words    []uint64
	capacity int

	// generation is bumped by every mutation so cursors can detect that the
	// storage changed under them.
	generation uint64
	closed     bool

	logger  *Logger
	metrics MetricsCollector
}

// New creates a zeroed BitSet addressing bits [0, capacity).
//
// A negative capacity returns *ErrInvalidCapacity. A capacity above the
// configured maximum (see WithMaxCapacity) returns ErrAllocationFailure, as
// does a word count the runtime cannot allocate.
// Capacity 0 is valid and allocates no words.
func New(capacity int, optFns ...Option) (*BitSet, error) {
	opts := applyOptions(optFns)

	if capacity < 0 {
		err := &ErrInvalidCapacity{Capacity: capacity}
		opts.logger.LogInvalidCapacity(capacity, err)
		return nil, err
	}
	if capacity > opts.maxCapacity {
		err := allocationError(capacity, opts.maxCapacity)
		opts.logger.LogNew(capacity, 0, err)
		return nil, err
	}

	n := scan.WordCount(capacity)
	words, err := allocate(n)
	opts.logger.LogNew(capacity, n, err)
	if err != nil {
		return nil, err
	}

	return &BitSet{
		words:    words,
		capacity: capacity,
		logger:   opts.logger.WithCapacity(capacity),
		metrics:  opts.metricsCollector,
	}, nil
}

// allocate returns n zeroed words. A makeslice panic (length beyond what the
// platform can address) is reported as ErrAllocationFailure.
func allocate(n int) (words []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			words = nil
			err = fmt.Errorf("%w: %d words: %v", ErrAllocationFailure, n, r)
		}
	}()
	return make([]uint64, n), nil
}

// Capacity returns the number of addressable bits.
func (b *BitSet) Capacity() int {
	return b.capacity
}

// WordCount returns the number of 64-bit words backing the set.
// It is 0 after Close.
func (b *BitSet) WordCount() int {
	return len(b.words)
}

// Reset clears every bit.
func (b *BitSet) Reset() {
	clear(b.words)
	b.generation++
	b.metrics.RecordOp(OpReset, nil)
	b.logger.Debug("bitset reset")
}

// Set sets bit i.
func (b *BitSet) Set(i int) error {
	if err := b.check(OpSet, i); err != nil {
		return err
	}

	p := scan.At(i)
	b.words[p.Word] |= p.Mask
	b.generation++
	b.metrics.RecordOp(OpSet, nil)
	return nil
}

// Clear clears bit i.
func (b *BitSet) Clear(i int) error {
	if err := b.check(OpClear, i); err != nil {
		return err
	}

	p := scan.At(i)
	b.words[p.Word] &^= p.Mask
	b.generation++
	b.metrics.RecordOp(OpClear, nil)
	return nil
}

// Test reports whether bit i is set.
func (b *BitSet) Test(i int) (bool, error) {
	if err := b.check(OpTest, i); err != nil {
		return false, err
	}

	p := scan.At(i)
	b.metrics.RecordOp(OpTest, nil)
	return b.words[p.Word]&p.Mask != 0, nil
}

// check validates i before any storage access.
func (b *BitSet) check(op Op, i int) error {
	var err error
	switch {
	case b.closed:
		err = ErrClosed
	case i < 0 || i >= b.capacity:
		err = &ErrIndexOutOfRange{Index: i, Capacity: b.capacity}
		b.logger.LogOutOfRange(op, err)
	default:
		return nil
	}

	b.metrics.RecordOp(op, err)
	return err
}

// NextSetBit returns the smallest set index i with start <= i < Capacity().
// It returns (-1, false) if there is none, including when start is at or
// beyond the capacity. A negative start is treated as 0.
//
// NextSetBit keeps no state, so it can restart anywhere:
//
//	for i, ok := bs.NextSetBit(0); ok; i, ok = bs.NextSetBit(i + 1) {
//	    // ...
//	}
func (b *BitSet) NextSetBit(start int) (int, bool) {
	if b.closed {
		return -1, false
	}

	p, ok := scan.Seek(b.words, b.capacity, scan.At(max(start, 0)))
	b.metrics.RecordScan(ok)
	if !ok {
		return -1, false
	}
	return p.Index, true
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *BitSet) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Close releases the storage. Any later Set, Clear or Test returns
// ErrClosed, enumeration yields nothing, and open cursors stop. Closing twice
// returns ErrClosed.
func (b *BitSet) Close() error {
	if b.closed {
		return ErrClosed
	}

	b.words = nil
	b.closed = true
	b.generation++
	b.logger.Debug("bitset closed")
	return nil
}

// String lists the set indices in ascending order, e.g. "{0 3 9}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, ok := b.NextSetBit(0); ok; i, ok = b.NextSetBit(i + 1) {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')
	return sb.String()
}
