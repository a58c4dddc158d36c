package model

import (
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
)

// Event represents the database model for audit events
type Event struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Type      string `gorm:"not null;size:32"`
	Route     string `gorm:"not null"`
	Timestamp int64  `gorm:"not null"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// FromEventEntity converts a domain event into a row, keeping its id if set
func FromEventEntity(e *entity.Event) *Event {
	return &Event{
		ID:        e.ID,
		Type:      e.Type,
		Route:     e.Route,
		Timestamp: e.Timestamp,
	}
}

// ToEntity converts the row back into a domain event
func (m *Event) ToEntity() *entity.Event {
	return &entity.Event{
		ID:        m.ID,
		Type:      m.Type,
		Route:     m.Route,
		Timestamp: m.Timestamp,
	}
}
