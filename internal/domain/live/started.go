package live

import "time"

// Started decides when a Cell runs its upstream Source
type Started struct {
	eager       bool
	stopTimeout time.Duration
}

// Eagerly starts the upstream immediately and keeps it running for the
// lifetime of the cell's scope, regardless of subscribers.
func Eagerly() Started {
	return Started{eager: true}
}

// WhileSubscribed runs the upstream only while at least one subscriber is
// attached. After the last subscriber leaves, the upstream keeps running for
// stopTimeout so a quick resubscription reuses it.
func WhileSubscribed(stopTimeout time.Duration) Started {
	if stopTimeout < 0 {
		stopTimeout = 0
	}
	return Started{stopTimeout: stopTimeout}
}

// IsEager reports whether the policy ignores subscribers
func (s Started) IsEager() bool {
	return s.eager
}

// StopTimeout returns the grace window of a subscriber-gated policy
func (s Started) StopTimeout() time.Duration {
	return s.stopTimeout
}
