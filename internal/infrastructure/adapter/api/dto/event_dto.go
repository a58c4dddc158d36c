package dto

import "github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"

// EventRequest records one navigation or action
type EventRequest struct {
	Type  string `json:"type" binding:"required"`
	Route string `json:"route" binding:"required"`
}

// EventResponse represents one audit event
type EventResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Route     string `json:"route"`
	Timestamp int64  `json:"timestamp"`
}

// FromEvents renders the audit log. The result is never nil.
func FromEvents(events []*entity.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, EventResponse{
			ID:        e.ID,
			Type:      e.Type,
			Route:     e.Route,
			Timestamp: e.Timestamp,
		})
	}
	return out
}

// AcceptedResponse acknowledges work queued in the background
type AcceptedResponse struct {
	Accepted bool `json:"accepted"`
}
