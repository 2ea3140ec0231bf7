package core

import (
	"image/color"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() int64 { return time.Now().UnixNano() }

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Color returns a random opaque colour, the equivalent of a random #RRGGBB.
func (r *RNG) Color() color.RGBA {
	v := r.r.Uint32()
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
