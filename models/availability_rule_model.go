package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityRule is one recurring weekly open-hours window for a worker.
// DayOfWeek follows time.Weekday numbering (0 = Sunday). A worker may have
// several rules for the same day (split shifts); rules are not required to
// be non-overlapping.
type AvailabilityRule struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkerID    uuid.UUID `gorm:"not null;index:idx_rules_worker_day" json:"worker_id"`
	DayOfWeek   int       `gorm:"not null;index:idx_rules_worker_day" json:"day_of_week"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
