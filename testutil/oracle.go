package testutil

import "github.com/RoaringBitmap/roaring/v2"

// Oracle is an independent model of a set of indices, used to check a
// bitset's answers. It wraps a roaring bitmap.
type Oracle struct {
	rb *roaring.Bitmap
}

// NewOracle creates an Oracle holding indices.
func NewOracle(indices ...int) *Oracle {
	o := &Oracle{rb: roaring.New()}
	for _, i := range indices {
		o.Add(i)
	}
	return o
}

// Add inserts i.
func (o *Oracle) Add(i int) {
	o.rb.Add(uint32(i)) //nolint:gosec
}

// Remove deletes i.
func (o *Oracle) Remove(i int) {
	o.rb.Remove(uint32(i)) //nolint:gosec
}

// Contains reports whether i is present.
func (o *Oracle) Contains(i int) bool {
	if i < 0 {
		return false
	}
	return o.rb.Contains(uint32(i)) //nolint:gosec
}

// Len returns the number of indices.
func (o *Oracle) Len() int {
	return int(o.rb.GetCardinality()) //nolint:gosec
}

// Sorted returns the indices in ascending order.
func (o *Oracle) Sorted() []int {
	arr := o.rb.ToArray()
	out := make([]int, len(arr))
	for k, v := range arr {
		out[k] = int(v)
	}
	return out
}

// NextAtOrAfter returns the smallest index >= k, or (-1, false).
func (o *Oracle) NextAtOrAfter(k int) (int, bool) {
	it := o.rb.Iterator()
	it.AdvanceIfNeeded(uint32(max(k, 0))) //nolint:gosec
	if !it.HasNext() {
		return -1, false
	}
	return int(it.Next()), true
}
