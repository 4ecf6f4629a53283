package bitscan

import "iter"

// All returns the set indices in ascending order.
// The sequence is restartable: every range over it scans from index 0.
func (b *BitSet) All() iter.Seq[int] {
	return b.From(0)
}

// From returns the set indices at or after start, in ascending order.
func (b *BitSet) From(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := b.NextSetBit(start); ok; i, ok = b.NextSetBit(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// AppendTo appends the set indices in ascending order to dst and returns the
// extended slice.
func (b *BitSet) AppendTo(dst []int) []int {
	for i := range b.All() {
		dst = append(dst, i)
	}
	return dst
}
