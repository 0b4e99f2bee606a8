package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func validInput() BookingInput {
	return BookingInput{
		CustomerID:    uuid.New(),
		WorkerID:      uuid.New(),
		Title:         "Kitchen sink repair",
		BookingDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		DurationHours: 1,
		Location:      "House 12, Street 4, G-10/2, Islamabad",
		Amount:        800,
	}
}

func TestBookingInputValid(t *testing.T) {
	if err := validInput().validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestBookingInputNegativeAmount(t *testing.T) {
	in := validInput()
	in.Amount = -100
	if err := in.validate(); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative amount, got %v", err)
	}
}

func TestBookingInputMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingInput)
	}{
		{"customer", func(in *BookingInput) { in.CustomerID = uuid.Nil }},
		{"worker", func(in *BookingInput) { in.WorkerID = uuid.Nil }},
		{"date", func(in *BookingInput) { in.BookingDate = time.Time{} }},
		{"start time", func(in *BookingInput) { in.StartTime = "" }},
		{"duration", func(in *BookingInput) { in.DurationHours = 0 }},
		{"negative duration", func(in *BookingInput) { in.DurationHours = -1 }},
		{"location", func(in *BookingInput) { in.Location = "" }},
		{"bad clock", func(in *BookingInput) { in.StartTime = "half past nine" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if err := in.validate(); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestZeroAmountAllowed(t *testing.T) {
	in := validInput()
	in.Amount = 0
	if err := in.validate(); err != nil {
		t.Fatalf("zero amount should be allowed, got %v", err)
	}
}
