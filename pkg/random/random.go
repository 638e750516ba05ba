package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the random dependency injected into every generator
// (slot availability, seat sampling, booking references). Nothing in the
// application reads the global rand, so a seeded Source makes mock data
// fully reproducible.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// NewSeeded returns a Source with a fixed seed. Safe for concurrent use.
func NewSeeded(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// New returns a time-seeded Source for production use.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
