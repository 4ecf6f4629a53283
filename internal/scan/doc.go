// Package scan implements the skip-ahead bit scan shared by every enumeration
// view of a bitscan.BitSet.
//
// Storage is a slice of 64-bit words; bit i lives in words[i/64] at position
// i%64. A scan walks forward from a Position, testing one bit at a time inside
// a word that is known to hold a set bit, and jumping a whole word at a time
// over words that are zero.
//
// Used by:
//   - BitSet.NextSetBit (stateless, derives a Position per call)
//   - Cursor.Advance (stateful, keeps its Position between calls)
package scan
