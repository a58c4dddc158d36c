package entity

import (
	tport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// Event types
const (
	EventVisit  = "visit"
	EventAction = "action"
)

// ActionOpenHistory is recorded whenever the transaction history is opened
const ActionOpenHistory = "open_history"

// Event is one navigation or action audit entry
type Event struct {
	ID        int64
	Type      string
	Route     string
	Timestamp int64 // Milliseconds since epoch
}

// NewEvent creates an event stamped with the current time
func NewEvent(eventType, route string, timeProvider tport.TimeProvider) *Event {
	return &Event{
		Type:      eventType,
		Route:     route,
		Timestamp: tport.UnixMillis(timeProvider),
	}
}
