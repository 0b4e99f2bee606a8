package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/models"
	"github.com/karigarhub/karigar-backend/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingInput struct {
	CustomerID    uuid.UUID
	WorkerID      uuid.UUID
	ServiceID     *uuid.UUID
	Title         string
	Description   string
	BookingDate   time.Time
	StartTime     string
	DurationHours float64
	Location      string
	Amount        float64
	Notes         string
}

func (in BookingInput) validate() error {
	if in.CustomerID == uuid.Nil {
		return fmt.Errorf("customer id is required: %w", ErrValidation)
	}
	if in.WorkerID == uuid.Nil {
		return fmt.Errorf("worker id is required: %w", ErrValidation)
	}
	if in.BookingDate.IsZero() {
		return fmt.Errorf("booking date is required: %w", ErrValidation)
	}
	if _, err := parseClock(in.StartTime); err != nil {
		return err
	}
	if in.DurationHours <= 0 {
		return fmt.Errorf("duration must be positive: %w", ErrValidation)
	}
	if in.Location == "" {
		return fmt.Errorf("location is required: %w", ErrValidation)
	}
	if in.Amount < 0 {
		return fmt.Errorf("amount must not be negative: %w", ErrValidation)
	}
	return nil
}

// CreateBooking inserts a pending booking together with its 30-minute slot
// decomposition in one transaction. The slot range is guarded twice: a
// locked pre-read of active conflicting rows, and the partial unique index
// on (worker_id, slot_date, slot_time) as the backstop for races the read
// cannot see. Either guard failing surfaces as ErrConflict and rolls the
// booking back.
func (e *Engine) CreateBooking(in BookingInput) (*models.Booking, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	endTime, err := endFromStart(in.StartTime, in.DurationHours)
	if err != nil {
		return nil, err
	}
	slotTimes, err := WalkSlots(in.StartTime, endTime)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		CustomerID:    in.CustomerID,
		WorkerID:      in.WorkerID,
		ServiceID:     in.ServiceID,
		Title:         in.Title,
		Description:   in.Description,
		BookingDate:   in.BookingDate,
		StartTime:     in.StartTime,
		EndTime:       endTime,
		DurationHours: in.DurationHours,
		Location:      in.Location,
		Amount:        in.Amount,
		Notes:         in.Notes,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	err = e.db.Transaction(func(tx *gorm.DB) error {
		var worker models.WorkerProfile
		if err := tx.First(&worker, "id = ?", in.WorkerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("worker %s: %w", in.WorkerID, ErrNotFound)
			}
			return err
		}

		var taken []models.BookingTimeSlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("worker_id = ? AND slot_date = ? AND slot_time IN ? AND is_active = ?",
				in.WorkerID, in.BookingDate.Format("2006-01-02"), slotTimes, true).
			Find(&taken).Error
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return fmt.Errorf("%s at %s: %w",
				in.BookingDate.Format("2006-01-02"), taken[0].SlotTime, ErrConflict)
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}
		booking.Reference = reference

		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		slots := make([]models.BookingTimeSlot, 0, len(slotTimes))
		for _, label := range slotTimes {
			slots = append(slots, models.BookingTimeSlot{
				BookingID: booking.ID,
				WorkerID:  in.WorkerID,
				SlotDate:  in.BookingDate,
				SlotTime:  label,
				IsActive:  true,
			})
		}
		if err := tx.Create(&slots).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%s: %w", in.BookingDate.Format("2006-01-02"), ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus applies one validated lifecycle transition. Moving
// to cancelled releases the booking's slot rows so the range becomes
// bookable again.
func (e *Engine) UpdateBookingStatus(bookingID uuid.UUID, next models.BookingStatus) error {
	return e.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
			}
			return err
		}

		if err := ValidateTransition(booking.Status, next); err != nil {
			return err
		}

		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return err
		}

		if next == models.BookingCancelled {
			err := tx.Model(&models.BookingTimeSlot{}).
				Where("booking_id = ?", booking.ID).
				Update("is_active", false).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// GetBooking loads one booking with its customer, worker and service.
func (e *Engine) GetBooking(bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := e.db.
		Preload("Customer").
		Preload("Worker.User").
		Preload("Service").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}
	return &booking, nil
}
