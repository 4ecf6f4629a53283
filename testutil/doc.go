// Package testutil provides testing utilities for bitscan.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating index sets and an
// Oracle, an independent set model backed by a roaring bitmap, to check
// enumeration results against.
//
// # Random Index Sets
//
//	rng := testutil.NewRNG(seed)
//	idx := rng.Indices(capacity, 0.01) // ~1% of [0, capacity), ascending
//
// # Oracle
//
//	o := testutil.NewOracle(idx...)
//	next, ok := o.NextAtOrAfter(k)
package testutil
