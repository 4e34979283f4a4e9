package search

import (
	"math/rand/v2"
	"time"

	"github.com/poiesic/bayesearch/core"
)

// Default effectiveness bounds: a pass never covers everything and never
// covers nothing.
const (
	DefaultMinEffectiveness = 0.2
	DefaultMaxEffectiveness = 0.9
)

// Sampler draws per-area search effectiveness for a round.
type Sampler struct {
	rng      *rand.Rand
	min, max float64
}

// NewSampler creates a sampler drawing uniformly from [min, max].
func NewSampler(rng *rand.Rand, min, max float64) (*Sampler, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	if err := core.ValidateEffectivenessRange(min, max); err != nil {
		return nil, err
	}
	return &Sampler{rng: rng, min: min, max: max}, nil
}

// Sample draws one effectiveness value.
func (s *Sampler) Sample() float64 {
	return s.min + (s.max-s.min)*s.rng.Float64()
}

// SampleAll draws an independent value for each of n areas.
func (s *Sampler) SampleAll(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Sample()
	}
	return out
}

// NewRand returns a PCG-backed random source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
