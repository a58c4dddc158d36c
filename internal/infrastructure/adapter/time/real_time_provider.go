package time

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// SteppingTimeProvider returns a start instant and advances by a fixed step
// on every call to Now. Tests use it to get strictly increasing timestamps.
type SteppingTimeProvider struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewSteppingTimeProvider creates a provider starting at start
func NewSteppingTimeProvider(start time.Time, step time.Duration) *SteppingTimeProvider {
	return &SteppingTimeProvider{now: start, step: step}
}

// Now returns the current instant and advances the clock
func (p *SteppingTimeProvider) Now() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	t := p.now
	p.now = p.now.Add(p.step)
	return t
}

// Since returns the difference between the current instant and t
func (p *SteppingTimeProvider) Since(t time.Time) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.now.Sub(t)
}
