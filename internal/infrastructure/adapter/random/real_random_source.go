package random

import (
	"math/rand"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// RealRandomSource draws from the process-wide math/rand generator
type RealRandomSource struct{}

// NewRealRandomSource creates a new random source
func NewRealRandomSource() core.RandomSource {
	return &RealRandomSource{}
}

// IntN returns a random integer in [0, n)
func (s *RealRandomSource) IntN(n int) int {
	return rand.Intn(n)
}

// SequenceSource replays a fixed list of values, wrapping around.
// Used to make generated references deterministic.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource creates a source that returns values in order
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

// IntN returns the next queued value reduced modulo n
func (s *SequenceSource) IntN(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return ((v % n) + n) % n
}
