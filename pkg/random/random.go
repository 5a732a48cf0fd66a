// Package random provides the single seeded draw source every generator
// consumes. Generators receive a *Source as an explicit parameter; there is
// no package-global state, so a run is reproducible from its seed alone.
package random

import (
	"math/rand"
)

// Source wraps a seeded math/rand.Rand. It is owned by exactly one
// generation pass and is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a uniform int in [min, max], both ends inclusive.
func (s *Source) IntRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// Int64Range returns a uniform int64 in [min, max], both ends inclusive.
func (s *Source) Int64Range(min, max int64) int64 {
	return min + s.rng.Int63n(max-min+1)
}

// Float64Range returns a uniform float64 in [min, max).
func (s *Source) Float64Range(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Pick returns a uniformly chosen element of pool.
func Pick[T any](s *Source, pool []T) T {
	return pool[s.rng.Intn(len(pool))]
}

// WeightedPick returns an element of pool chosen with probability
// proportional to its weight. Weights must be positive and len(weights)
// must equal len(pool).
func WeightedPick[T any](s *Source, pool []T, weights []int) T {
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := s.rng.Intn(total)
	for i, w := range weights {
		if draw < w {
			return pool[i]
		}
		draw -= w
	}
	return pool[len(pool)-1]
}

// SampleInts returns k distinct ints drawn from [1, n] without replacement,
// via a partial Fisher-Yates over a virtual 1..n sequence.
func (s *Source) SampleInts(n, k int) []int {
	if k > n {
		k = n
	}
	swapped := make(map[int]int, k)
	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		vi, ok := swapped[i]
		if !ok {
			vi = i + 1
		}
		vj, ok := swapped[j]
		if !ok {
			vj = j + 1
		}
		out[i] = vj
		swapped[j] = vi
		swapped[i] = vj
	}
	return out
}
