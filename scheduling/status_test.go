package scheduling

import (
	"errors"
	"testing"

	"github.com/karigarhub/karigar-backend/models"
)

func TestValidTransitions(t *testing.T) {
	allowed := []struct{ from, to models.BookingStatus }{
		{models.BookingPending, models.BookingConfirmed},
		{models.BookingPending, models.BookingCancelled},
		{models.BookingConfirmed, models.BookingInProgress},
		{models.BookingConfirmed, models.BookingCancelled},
		{models.BookingInProgress, models.BookingCompleted},
	}
	for _, tc := range allowed {
		if err := ValidateTransition(tc.from, tc.to); err != nil {
			t.Fatalf("%s -> %s: expected allowed, got %v", tc.from, tc.to, err)
		}
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	all := []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingInProgress,
		models.BookingCompleted,
		models.BookingCancelled,
	}
	for _, terminal := range []models.BookingStatus{models.BookingCompleted, models.BookingCancelled} {
		for _, next := range all {
			if err := ValidateTransition(terminal, next); !errors.Is(err, ErrValidation) {
				t.Fatalf("%s -> %s: expected ErrValidation, got %v", terminal, next, err)
			}
		}
	}
}

func TestSkippingStatesRejected(t *testing.T) {
	rejected := []struct{ from, to models.BookingStatus }{
		{models.BookingPending, models.BookingInProgress},
		{models.BookingPending, models.BookingCompleted},
		{models.BookingConfirmed, models.BookingCompleted},
		{models.BookingInProgress, models.BookingCancelled},
		{models.BookingInProgress, models.BookingPending},
	}
	for _, tc := range rejected {
		if err := ValidateTransition(tc.from, tc.to); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s -> %s: expected ErrValidation, got %v", tc.from, tc.to, err)
		}
	}
}

func TestUnknownStatusRejected(t *testing.T) {
	err := ValidateTransition(models.BookingPending, models.BookingStatus("archived"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown status, got %v", err)
	}
}
