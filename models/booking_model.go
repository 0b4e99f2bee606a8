package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference  string     `gorm:"size:10;unique" json:"reference"`
	CustomerID uuid.UUID  `gorm:"not null;index" json:"customer_id"`
	WorkerID   uuid.UUID  `gorm:"not null;index" json:"worker_id"`
	ServiceID  *uuid.UUID `json:"service_id"`

	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	BookingDate   time.Time `gorm:"type:date;not null" json:"booking_date"`
	StartTime     string    `gorm:"size:5;not null" json:"start_time"`
	EndTime       string    `gorm:"size:5;not null" json:"end_time"`
	DurationHours float64   `gorm:"not null" json:"duration_hours"`

	Location string  `gorm:"size:255;not null" json:"location"`
	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Notes    string  `gorm:"type:text" json:"notes"`

	Status        BookingStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:'pending'" json:"payment_status"`

	CustomerRating *int    `json:"customer_rating"`
	WorkerRating   *int    `json:"worker_rating"`
	CustomerReview *string `gorm:"type:text" json:"customer_review"`
	WorkerReview   *string `gorm:"type:text" json:"worker_review"`

	ReceiptURL *string `gorm:"size:255" json:"receipt_url"`

	Customer User          `gorm:"foreignkey:CustomerID" json:"customer,omitempty"`
	Worker   WorkerProfile `gorm:"foreignkey:WorkerID" json:"worker,omitempty"`
	Service  *Service      `gorm:"foreignkey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
