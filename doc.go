// Package bitscan provides a fixed-capacity bitset with fast enumeration of
// set bits.
//
// Bits live in packed 64-bit words. Set, Clear and Test are O(1) and
// bounds-checked; an index outside [0, Capacity()) returns an
// *ErrIndexOutOfRange instead of touching storage.
//
// # Quick Start
//
//	bs, _ := bitscan.New(128)
//	_ = bs.Set(3)
//	_ = bs.Set(70)
//	ok, _ := bs.Test(3) // true
//
// # Enumeration
//
// Two views share one skip-ahead scan. The scan tests bits one at a time
// inside a word that holds a set bit and jumps over zero words whole, so a
// sparse set enumerates in time proportional to its set bits plus its zero
// words rather than its capacity.
//
// The stateless form restarts anywhere:
//
//	for i, ok := bs.NextSetBit(0); ok; i, ok = bs.NextSetBit(i + 1) {
//	    fmt.Println(i)
//	}
//
//	for i := range bs.From(64) {
//	    fmt.Println(i)
//	}
//
// The stateful form keeps its position and is consumed once:
//
//	c := bs.Cursor()
//	for i, ok := c.Advance(); ok; i, ok = c.Advance() {
//	    fmt.Println(i)
//	}
//	if err := c.Err(); err != nil {
//	    // the bitset was modified while the cursor was in use
//	}
//
// # Errors
//
//   - ErrOutOfRange (matches *ErrIndexOutOfRange): index outside the capacity
//   - ErrAllocationFailure: capacity above the configured maximum
//   - *ErrInvalidCapacity: negative capacity
//   - ErrStaleCursor: cursor used after its bitset was mutated
//   - ErrClosed: bitset used after Close
//
// A BitSet is not safe for concurrent mutation.
package bitscan
