package utils

import (
	"math/rand"
	"sync"
	"time"
)

// Sampler draws the random values used by the placeholder analyses
type Sampler interface {
	// Uniform returns a float in [min, max)
	Uniform(min, max float64) float64
	// IntBetween returns an int in [min, max], both ends included
	IntBetween(min, max int) int
}

// RandSampler is a Sampler backed by math/rand, safe for concurrent use
type RandSampler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSampler returns a sampler seeded with seed
func NewSampler(seed int64) *RandSampler {
	return &RandSampler{rnd: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededSampler returns a sampler seeded from the current time
func NewTimeSeededSampler() *RandSampler {
	return NewSampler(time.Now().UTC().UnixNano())
}

// Uniform returns a float in [min, max)
func (s *RandSampler) Uniform(min, max float64) float64 {
	s.mu.Lock()
	f := s.rnd.Float64()
	s.mu.Unlock()
	return min + (max-min)*f
}

// IntBetween returns an int in [min, max]
func (s *RandSampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	s.mu.Lock()
	n := s.rnd.Intn(max - min + 1)
	s.mu.Unlock()
	return min + n
}

// Choose picks one of the options uniformly
func Choose(s Sampler, options []int) int {
	return options[s.IntBetween(0, len(options)-1)]
}
