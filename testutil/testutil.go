package testutil

import (
	"math/rand"
	"sync"

	"github.com/yurimorini/vectors"
)

// DefaultRange bounds the coordinates of generated vectors to [-DefaultRange, DefaultRange).
const DefaultRange = 10.0

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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float64 returns a pseudo-random number in [-DefaultRange, DefaultRange).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniform()
}

// Vector generates a vector of the given dimension with coordinates in
// [-DefaultRange, DefaultRange). Dimensions below one are raised to one.
func (r *RNG) Vector(dimension int) vectors.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vectors.MustNew(r.coords(dimension)...)
}

// Vectors generates num random vectors of the given dimension.
func (r *RNG) Vectors(num, dimension int) []vectors.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]vectors.Vector, num)
	for i := range out {
		out[i] = vectors.MustNew(r.coords(dimension)...)
	}

	return out
}

// NonZeroVector generates a random vector whose magnitude is at least one.
func (r *RNG) NonZeroVector(dimension int) vectors.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		v := vectors.MustNew(r.coords(dimension)...)
		if v.Magnitude() >= 1 {
			return v
		}
	}
}

func (r *RNG) coords(dimension int) []float64 {
	dimension = max(dimension, 1)

	c := make([]float64, dimension)
	for i := range c {
		c[i] = r.uniform()
	}

	return c
}

func (r *RNG) uniform() float64 {
	return r.rand.Float64()*2*DefaultRange - DefaultRange
}
