package bitscan

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange matches every *ErrIndexOutOfRange via errors.Is.
	ErrOutOfRange = errors.New("bitset index out of range")

	// ErrAllocationFailure is returned when storage for the requested capacity
	// cannot be obtained.
	ErrAllocationFailure = errors.New("bitset allocation failure")

	// ErrStaleCursor is reported by a Cursor whose BitSet was mutated or closed
	// after the cursor was created.
	ErrStaleCursor = errors.New("stale cursor: bitset modified during enumeration")

	// ErrClosed is returned by operations on a closed BitSet.
	ErrClosed = errors.New("bitset is closed")
)

// ErrIndexOutOfRange indicates an index outside [0, Capacity).
type ErrIndexOutOfRange struct {
	Index    int
	Capacity int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitset index %d out of range [0, %d)", e.Index, e.Capacity)
}

// Is reports whether target is ErrOutOfRange.
func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrOutOfRange }

// ErrInvalidCapacity indicates a negative capacity.
type ErrInvalidCapacity struct {
	Capacity int
}

func (e *ErrInvalidCapacity) Error() string {
	return fmt.Sprintf("invalid capacity: %d", e.Capacity)
}

func allocationError(capacity, limit int) error {
	return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrAllocationFailure, capacity, limit)
}
