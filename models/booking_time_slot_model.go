package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingTimeSlot is one 30-minute granule of a booking's time range.
// WorkerID is denormalized from the parent booking so the partial unique
// index over (worker_id, slot_date, slot_time) can serialize competing
// bookings at the storage layer. IsActive is flipped to false when the
// parent booking is cancelled, which frees the range for rebooking.
type BookingTimeSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID uuid.UUID `gorm:"not null;index" json:"booking_id"`
	WorkerID  uuid.UUID `gorm:"not null;uniqueIndex:uniq_active_worker_slot,where:is_active" json:"worker_id"`
	SlotDate  time.Time `gorm:"type:date;not null;uniqueIndex:uniq_active_worker_slot,where:is_active" json:"slot_date"`
	SlotTime  string    `gorm:"size:5;not null;uniqueIndex:uniq_active_worker_slot,where:is_active" json:"slot_time"`
	IsActive  bool      `gorm:"not null;default:true" json:"-"`

	Booking Booking `gorm:"foreignkey:BookingID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
