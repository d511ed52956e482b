package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LaunchRecord is a persisted snapshot of a launch as last seen upstream.
// The sync worker upserts these; the core pipeline never reads them.
type LaunchRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	LaunchID     string         `gorm:"uniqueIndex;not null"`
	Name         string         `gorm:"type:text;not null"`
	FlightNumber int            `gorm:"not null"`
	DateUTC      time.Time      `gorm:"not null;index"`
	Upcoming     bool           `gorm:"not null;index"`
	Success      *bool          `gorm:""`
	FetchedAt    time.Time      `gorm:"not null;default:now()"`
	Raw          datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}
