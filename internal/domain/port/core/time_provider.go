package core

import (
	"time"
)

// TimeProvider abstracts the wall clock so record timestamps and generated
// references are reproducible in tests.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// UnixMillis returns the provider's current time as milliseconds since epoch,
// the unit every persisted timestamp uses.
func UnixMillis(tp TimeProvider) int64 {
	return tp.Now().UnixMilli()
}
