package models

// TimeSlot is the derived, per-query availability view of one 30-minute
// window. It is never persisted. Price and Duration are set on free slots
// for the customer-facing picker; BookedBy is set on occupied slots for
// the worker-facing schedule.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Price     string `json:"price,omitempty"`
	Duration  string `json:"duration,omitempty"`
	BookedBy  string `json:"booked_by,omitempty"`
	BookingID string `json:"booking_id,omitempty"`
}
