package generator

import (
	"math/rand"
	"time"
)

// Noise supplies the random component added to each generated value.
type Noise interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

// RandNoise draws uniform noise from a seeded math/rand source.
type RandNoise struct {
	rng *rand.Rand
}

// NewRandNoise creates a noise source. A zero seed seeds from the wall
// clock, so values differ between runs.
func NewRandNoise(seed int64) *RandNoise {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandNoise{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [lo, hi).
func (n *RandNoise) Uniform(lo, hi float64) float64 {
	return lo + n.rng.Float64()*(hi-lo)
}

// NoNoise always returns the midpoint of the range, leaving only the
// deterministic shape.
type NoNoise struct{}

func (NoNoise) Uniform(lo, hi float64) float64 {
	return (lo + hi) / 2
}
