package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Indices returns an ascending subset of [0, capacity) where each index is
// included with probability density.
// Locks only once per call.
func (r *RNG) Indices(capacity int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, int(float64(capacity)*density)+1)
	for i := range capacity {
		if r.rand.Float64() < density {
			out = append(out, i)
		}
	}
	return out
}

// Every returns start, start+stride, ... below capacity.
func Every(capacity, start, stride int) []int {
	var out []int
	for i := start; i < capacity; i += stride {
		out = append(out, i)
	}
	return out
}

// Range returns [0, n).
func Range(n int) []int {
	return Every(n, 0, 1)
}
