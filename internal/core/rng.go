package core

import (
	"math"
	"math/rand"
)

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

// RNG produces the bounded integers used for spawning and velocities.
type RNG struct {
	src Source
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// NewRNGFrom wraps an arbitrary source, mainly for tests.
func NewRNGFrom(src Source) *RNG {
	return &RNG{src: src}
}

// Int draws u in [0, 1) and returns ceil(2*length*u - length).
// For length 2 the results are {-2, -1, 0, 1, 2}, with -2 only when u == 0.
func (r *RNG) Int(length float64) int {
	u := r.src.Float64()
	return int(math.Ceil(2*length*u - length))
}
