package random

import (
	"math/rand/v2"
	"sync"
)

// DefaultMaxScore is the exclusive upper bound for generated step counts.
const DefaultMaxScore = 20000

// ScoreSource hands out synthetic scores in [0, max).
type ScoreSource interface {
	Score() int
}

// Source is a seeded pseudo-random ScoreSource.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
	max int
}

// NewSource returns a Source producing scores in [0, max).
// A zero seed draws a fresh one from crypto/rand.
func NewSource(max int, seed int64) (*Source, error) {
	if max <= 0 {
		max = DefaultMaxScore
	}
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Source{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		max: max,
	}, nil
}

// Score returns the next score.
func (s *Source) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(s.max)
}

// Fixed always returns the same score.
type Fixed int

// Score implements ScoreSource.
func (f Fixed) Score() int { return int(f) }

// Sequence replays the given scores in order and wraps around when exhausted.
type Sequence struct {
	mu     sync.Mutex
	scores []int
	next   int
}

// NewSequence creates a Sequence over scores.
func NewSequence(scores ...int) *Sequence {
	return &Sequence{scores: scores}
}

// Score implements ScoreSource. An empty sequence yields 0.
func (s *Sequence) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.scores) == 0 {
		return 0
	}
	v := s.scores[s.next%len(s.scores)]
	s.next++
	return v
}
