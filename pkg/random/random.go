// Package random provides the injectable source used to pick one response out
// of an intent's candidates.
package random

import (
	"math/rand/v2"
	"sync"
)

// Picker returns an index in [0, n). Callers guarantee n > 0.
type Picker interface {
	Intn(n int) int
}

type global struct{}

// New returns a Picker backed by the runtime's goroutine-safe generator.
func New() Picker { return global{} }

func (global) Intn(n int) int { return rand.IntN(n) }

type seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible Picker.
func NewSeeded(seed uint64) Picker {
	return &seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Fixed always picks index i, clamped into range. Meant for tests.
type Fixed int

func (f Fixed) Intn(n int) int {
	i := int(f)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Choose picks one element of items. ok is false for an empty slice.
func Choose(p Picker, items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if p == nil {
		p = New()
	}
	return items[p.Intn(len(items))], true
}
