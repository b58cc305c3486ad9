package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	// Int64n returns a value in [0, n).
	Int64n func(n int64) int64
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Int64n: random.Int63n,
	}
}

// Int64Between returns a value in [lo, hi].
func (r Randomizer) Int64Between(lo, hi int64) int64 {
	return lo + r.Int64n(hi-lo+1)
}
