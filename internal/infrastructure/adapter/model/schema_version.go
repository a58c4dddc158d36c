package model

import (
	"time"
)

// SchemaVersion records the schema tag the store was built with
type SchemaVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   int       `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
	Details   string    `gorm:"type:text"`
}

// TableName specifies the table name for the schema version model
func (SchemaVersion) TableName() string {
	return "schema_versions"
}

// AllModels lists every table the store owns, in creation order
func AllModels() []any {
	return []any{&Transaction{}, &Event{}, &SchemaVersion{}}
}
