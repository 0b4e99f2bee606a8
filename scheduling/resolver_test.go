package scheduling

import (
	"testing"

	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/models"
)

func rule(day int, start, end string) models.AvailabilityRule {
	return models.AvailabilityRule{
		WorkerID:    uuid.New(),
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func TestMarkSlots_AllFree(t *testing.T) {
	slots := markSlots([]models.AvailabilityRule{rule(1, "08:00", "10:00")}, nil, 800)

	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if !slot.Available {
			t.Fatalf("slot %s: expected available", slot.Time)
		}
		if slot.Price != "Rs. 800" {
			t.Fatalf("slot %s: expected price Rs. 800, got %q", slot.Time, slot.Price)
		}
		if slot.BookedBy != "" {
			t.Fatalf("slot %s: free slot must not carry a booker", slot.Time)
		}
	}
}

func TestMarkSlots_OccupiedRange(t *testing.T) {
	// Customer holds 09:00-10:00; 08:00 and 08:30 stay free.
	bookingID := uuid.New()
	occupied := map[string]occupant{
		"09:00": {BookingID: bookingID, CustomerName: "Ali Raza"},
		"09:30": {BookingID: bookingID, CustomerName: "Ali Raza"},
	}

	slots := markSlots([]models.AvailabilityRule{rule(1, "08:00", "10:00")}, occupied, 800)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(slots))
	}

	for _, slot := range slots {
		switch slot.Time {
		case "09:00", "09:30":
			if slot.Available {
				t.Fatalf("slot %s: expected occupied", slot.Time)
			}
			if slot.BookedBy != "Ali Raza" {
				t.Fatalf("slot %s: expected booker Ali Raza, got %q", slot.Time, slot.BookedBy)
			}
			if slot.BookingID != bookingID.String() {
				t.Fatalf("slot %s: wrong booking id %q", slot.Time, slot.BookingID)
			}
		default:
			if !slot.Available {
				t.Fatalf("slot %s: expected free", slot.Time)
			}
		}
	}
}

func TestMarkSlots_OverlappingRulesKeepDuplicates(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(1, "09:00", "10:00"),
		rule(1, "09:30", "10:30"),
	}
	occupied := map[string]occupant{
		"09:30": {BookingID: uuid.New(), CustomerName: "Sana Khan"},
	}

	slots := markSlots(rules, occupied, 500)
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots (duplicates preserved), got %d", len(slots))
	}

	// 09:30 appears once per rule and must be occupied both times.
	var seen int
	for _, slot := range slots {
		if slot.Time != "09:30" {
			continue
		}
		seen++
		if slot.Available {
			t.Fatalf("duplicate occurrence %d of 09:30 must stay occupied", seen)
		}
	}
	if seen != 2 {
		t.Fatalf("expected 09:30 twice, saw it %d times", seen)
	}
}

func TestMarkSlots_SkipsMalformedRule(t *testing.T) {
	rules := []models.AvailabilityRule{
		rule(1, "10:00", "08:00"), // inverted, skipped
		rule(1, "12:00", "13:00"),
	}
	slots := markSlots(rules, nil, 800)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots from the valid rule, got %d", len(slots))
	}
	if slots[0].Time != "12:00" || slots[1].Time != "12:30" {
		t.Fatalf("unexpected labels: %v, %v", slots[0].Time, slots[1].Time)
	}
}

func TestMarkSlots_NoRules(t *testing.T) {
	slots := markSlots(nil, nil, 800)
	if slots == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}
}
