package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatRoom struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CustomerID   uuid.UUID  `gorm:"not null;index" json:"customer_id"`
	WorkerID     uuid.UUID  `gorm:"not null;index" json:"worker_id"`
	BookingID    *uuid.UUID `json:"booking_id"`
	ServiceTitle string     `gorm:"size:255" json:"service_title"`
	Status       string     `gorm:"size:20;not null;default:'active'" json:"status"`

	LastMessageAt time.Time `json:"last_message_at"`

	Customer User `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Worker   User `gorm:"foreignkey:WorkerID" json:"worker,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
