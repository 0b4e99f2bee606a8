package scheduling

import (
	"fmt"

	"github.com/karigarhub/karigar-backend/models"
)

// transitions is the booking lifecycle: pending -> confirmed ->
// in_progress -> completed, with cancellation allowed while the booking
// is still pending or confirmed. Completed and cancelled are terminal.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:    {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed:  {models.BookingInProgress, models.BookingCancelled},
	models.BookingInProgress: {models.BookingCompleted},
	models.BookingCompleted:  nil,
	models.BookingCancelled:  nil,
}

func CanTransition(from, to models.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to models.BookingStatus) error {
	if !to.Valid() {
		return fmt.Errorf("unknown booking status %q: %w", to, ErrValidation)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("cannot move booking from %s to %s: %w", from, to, ErrValidation)
	}
	return nil
}
