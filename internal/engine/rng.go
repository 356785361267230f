package engine

import (
	"math/rand"
	"time"
)

// RNG is the random source behind damage variance, flee checks and loot
// rolls. It is injected everywhere randomness is consumed so tests can pin
// outcomes.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a seeded source. A zero seed derives one from the clock.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
