package core

import (
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// An RNG is not safe for concurrent use; give every generation call its own.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Uniform returns a uniform value in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

// Triangular samples the triangular distribution on [left, right] with the
// given mode.
func (r *RNG) Triangular(left, mode, right float64) float64 {
	span := right - left
	if span <= 0 {
		return left
	}
	u := r.r.Float64()
	c := (mode - left) / span
	if u <= c {
		return left + math.Sqrt(u*span*(mode-left))
	}
	return right - math.Sqrt((1-u)*span*(right-mode))
}

// Choice picks an index with probability proportional to its weight.
// Negative weights count as zero; when every weight is zero the last index
// is returned.
func (r *RNG) Choice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return len(weights) - 1
	}
	target := r.r.Float64() * total
	last := len(weights) - 1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if target < w {
			return i
		}
		target -= w
		last = i
	}
	return last
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
