// Package generator draws random prompt values.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces prompt values from a seeded source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator that repeats the same draws for a seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Between returns a value uniformly drawn from [lo, hi]. Reversed bounds are
// swapped; equal bounds return lo.
func (g *Generator) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}
