package scheduling

import (
	"errors"
	"testing"
)

func TestWalkSlots_Basic(t *testing.T) {
	labels, err := WalkSlots("08:00", "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"08:00", "08:30", "09:00", "09:30"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(labels), labels)
	}
	for i, label := range want {
		if labels[i] != label {
			t.Fatalf("label %d: expected %s, got %s", i, label, labels[i])
		}
	}
}

func TestWalkSlots_TrailingPartialEmitted(t *testing.T) {
	// 09:00 starts before 09:15 even though the step runs past it.
	labels, err := WalkSlots("08:00", "09:15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"08:00", "08:30", "09:00"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d: %v", len(want), len(labels), labels)
	}
	if labels[2] != "09:00" {
		t.Fatalf("expected trailing slot 09:00, got %s", labels[2])
	}
}

func TestWalkSlots_InvalidRange(t *testing.T) {
	cases := []struct{ start, end string }{
		{"10:00", "10:00"},
		{"11:00", "09:00"},
		{"9am", "10:00"},
		{"08:00", "25:00"},
		{"", "10:00"},
	}
	for _, tc := range cases {
		if _, err := WalkSlots(tc.start, tc.end); !errors.Is(err, ErrValidation) {
			t.Fatalf("WalkSlots(%q, %q): expected ErrValidation, got %v", tc.start, tc.end, err)
		}
	}
}

func TestSlotCount(t *testing.T) {
	cases := []struct {
		duration float64
		want     int
	}{
		{0.5, 1},
		{1, 2},
		{1.5, 3},
		{2, 4},
		{2.5, 5},
		{1.25, 3}, // trailing partial counts as a full granule
	}
	for _, tc := range cases {
		if got := SlotCount(tc.duration); got != tc.want {
			t.Fatalf("SlotCount(%v): expected %d, got %d", tc.duration, tc.want, got)
		}
	}
}

func TestSlotCountMatchesWalk(t *testing.T) {
	// The persisted decomposition and the counted size must agree for
	// every supported duration.
	for _, duration := range []float64{0.5, 1, 1.5, 2, 2.5} {
		end, err := endFromStart("09:00", duration)
		if err != nil {
			t.Fatalf("endFromStart(09:00, %v): %v", duration, err)
		}
		labels, err := WalkSlots("09:00", end)
		if err != nil {
			t.Fatalf("WalkSlots(09:00, %s): %v", end, err)
		}
		if len(labels) != SlotCount(duration) {
			t.Fatalf("duration %v: walk yields %d slots, SlotCount says %d",
				duration, len(labels), SlotCount(duration))
		}
	}
}

func TestEndFromStart(t *testing.T) {
	cases := []struct {
		start    string
		duration float64
		want     string
	}{
		{"09:00", 1, "10:00"},
		{"09:00", 0.5, "09:30"},
		{"08:30", 2.5, "11:00"},
		{"14:00", 1.25, "15:15"},
	}
	for _, tc := range cases {
		got, err := endFromStart(tc.start, tc.duration)
		if err != nil {
			t.Fatalf("endFromStart(%s, %v): %v", tc.start, tc.duration, err)
		}
		if got != tc.want {
			t.Fatalf("endFromStart(%s, %v): expected %s, got %s", tc.start, tc.duration, tc.want, got)
		}
	}
}

func TestEndFromStart_PastMidnight(t *testing.T) {
	if _, err := endFromStart("23:30", 2); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for booking past midnight, got %v", err)
	}
}
