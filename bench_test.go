package bitscan

import (
	"testing"

	"github.com/hupe1980/bitscan/testutil"
)

const benchCapacity = 50000

func benchSet(b *testing.B, indices []int) *BitSet {
	b.Helper()

	bs, err := New(benchCapacity)
	if err != nil {
		b.Fatal(err)
	}
	for _, i := range indices {
		if err := bs.Set(i); err != nil {
			b.Fatal(err)
		}
	}
	return bs
}

// BenchmarkEnumerate compares the enumeration forms on a very sparse set (one
// bit at the end) and a dense one (every even index).
func BenchmarkEnumerate(b *testing.B) {
	sets := []struct {
		name    string
		indices []int
	}{
		{"sparse", []int{benchCapacity - 1}},
		{"dense", testutil.Every(benchCapacity, 0, 2)},
	}

	for _, s := range sets {
		bs := benchSet(b, s.indices)

		b.Run(s.name+"/NextSetBit", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				total := 0
				for i, ok := bs.NextSetBit(0); ok; i, ok = bs.NextSetBit(i + 1) {
					total += i
				}
				_ = total
			}
		})

		b.Run(s.name+"/Cursor", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				total := 0
				c := bs.Cursor()
				for i, ok := c.Advance(); ok; i, ok = c.Advance() {
					total += i
				}
				_ = total
			}
		})

		b.Run(s.name+"/All", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				total := 0
				for i := range bs.All() {
					total += i
				}
				_ = total
			}
		})
	}
}

func BenchmarkSetTest(b *testing.B) {
	bs := benchSet(b, nil)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_ = bs.Set(i)
		_, _ = bs.Test(i)
		i = (i + 7919) % benchCapacity
	}
}
