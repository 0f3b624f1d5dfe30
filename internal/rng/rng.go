// Package rng defines the random source threaded through the generation
// engine. Every selection primitive takes a Source explicitly so that a
// fixed seed reproduces a generation bit for bit.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source yields values in [0, 1). It is the only source of randomness the
// engine consumes; callers that need reproducibility construct one with New
// and reuse it for the whole generation.
//
// A Source is not safe for concurrent use. Give each in-flight generation
// its own.
type Source func() float64

// New returns a deterministic Source seeded from the given value. The same
// seed always produces the same stream.
func New(seed uint64) Source {
	r := rand.New(rand.NewPCG(seed, seed))
	return r.Float64
}

// NewTimeSeeded returns a Source seeded from the current time, for callers
// that did not ask for reproducibility.
func NewTimeSeeded() Source {
	return New(uint64(time.Now().UnixNano()))
}

// Index picks a uniform index in [0, n) from src. It panics if n <= 0;
// callers guard emptiness before drawing.
func Index(src Source, n int) int {
	if n <= 0 {
		panic("rng: Index called with empty range")
	}
	i := int(src() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Pick returns a uniform element of items. It panics on an empty slice for
// the same reason Index does.
func Pick[T any](src Source, items []T) T {
	return items[Index(src, len(items))]
}

// IntBetween picks a uniform integer in [min, max] inclusive. Reversed
// bounds are treated as the single value min.
func IntBetween(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + Index(src, max-min+1)
}

// Sample draws up to count distinct elements from items without
// replacement, preserving no particular order beyond the draw sequence.
// The input slice is not modified.
func Sample[T any](src Source, items []T, count int) []T {
	if count <= 0 || len(items) == 0 {
		return nil
	}
	if count > len(items) {
		count = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	out := make([]T, 0, count)
	for len(out) < count {
		i := Index(src, len(pool))
		out = append(out, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out
}
