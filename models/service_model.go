package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WorkerID    uuid.UUID `gorm:"not null;index" json:"worker_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	Rate        float64   `gorm:"type:numeric(10,2)" json:"rate"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`

	Worker WorkerProfile `gorm:"foreignkey:WorkerID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
