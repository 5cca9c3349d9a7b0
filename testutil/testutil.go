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

// Int32s returns n pseudo-random values in [0, maxVal).
func (r *RNG) Int32s(n int, maxVal int32) []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int32, n)
	for i := range out {
		out[i] = r.rand.Int31n(maxVal)
	}
	return out
}

// Int64s returns n pseudo-random non-negative int64 values.
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		out[i] = r.rand.Int63()
	}
	return out
}

// Shuffle permutes data in place.
func Shuffle[T any](r *RNG, data []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	})
}

// Ascending returns 0, 1, ..., n-1.
func Ascending(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}

// Descending returns n-1, n-2, ..., 0.
func Descending(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(n - 1 - i)
	}
	return out
}

// Shapes returns named inputs that exercise the usual sorting edge cases.
func (r *RNG) Shapes(n int) map[string][]int32 {
	sawtooth := make([]int32, n)
	for i := range sawtooth {
		sawtooth[i] = int32(i % 17)
	}
	return map[string][]int32{
		"random":     r.Int32s(n, int32(n)+1),
		"few_unique": r.Int32s(n, 3),
		"ascending":  Ascending(n),
		"descending": Descending(n),
		"sawtooth":   sawtooth,
		"constant":   make([]int32, n),
	}
}
