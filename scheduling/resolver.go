package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/models"
	"gorm.io/gorm"
)

// defaultRate is the advertised per-slot price when a worker has not set
// an hourly rate.
const defaultRate = 800

// occupant identifies the booking holding a time label on a date.
type occupant struct {
	BookingID    uuid.UUID
	CustomerName string
}

// GetAvailability resolves workerID's weekly rules for date's day of week
// into 30-minute slots and marks the ones held by confirmed or in-progress
// bookings. A worker with no rules for that day yields an empty slice.
func (e *Engine) GetAvailability(workerID uuid.UUID, date time.Time) ([]models.TimeSlot, error) {
	var rules []models.AvailabilityRule
	err := e.db.
		Where("worker_id = ? AND day_of_week = ? AND is_available = ?", workerID, int(date.Weekday()), true).
		Order("start_time asc").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return []models.TimeSlot{}, nil
	}

	occupied, err := e.occupiedSlots(workerID, date)
	if err != nil {
		return nil, err
	}

	rate := float64(defaultRate)
	var worker models.WorkerProfile
	err = e.db.First(&worker, "id = ?", workerID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if worker.HourlyRate != nil && *worker.HourlyRate > 0 {
		rate = *worker.HourlyRate
	}

	return markSlots(rules, occupied, rate), nil
}

// occupiedSlots returns the time labels on date held by workerID's
// bookings in confirmed or in_progress status. Pending bookings do not
// occupy slots, and cancelled bookings have released theirs.
func (e *Engine) occupiedSlots(workerID uuid.UUID, date time.Time) (map[string]occupant, error) {
	var rows []struct {
		SlotTime  string
		BookingID uuid.UUID
		FirstName string
		LastName  string
	}
	err := e.db.
		Table("booking_time_slots").
		Select("booking_time_slots.slot_time, bookings.id AS booking_id, users.first_name, users.last_name").
		Joins("JOIN bookings ON bookings.id = booking_time_slots.booking_id").
		Joins("JOIN users ON users.id = bookings.customer_id").
		Where("booking_time_slots.slot_date = ? AND bookings.worker_id = ? AND bookings.status IN ?",
			date.Format("2006-01-02"), workerID,
			[]models.BookingStatus{models.BookingConfirmed, models.BookingInProgress}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]occupant, len(rows))
	for _, row := range rows {
		occupied[row.SlotTime] = occupant{
			BookingID:    row.BookingID,
			CustomerName: row.FirstName + " " + row.LastName,
		}
	}
	return occupied, nil
}

// markSlots walks every rule and labels each step free or occupied.
// Overlapping rules emit duplicate labels in rule order; a label that is
// occupied stays occupied in every occurrence. Rules with malformed time
// bounds are skipped rather than failing the whole day.
func markSlots(rules []models.AvailabilityRule, occupied map[string]occupant, rate float64) []models.TimeSlot {
	slots := []models.TimeSlot{}
	for _, rule := range rules {
		labels, err := WalkSlots(rule.StartTime, rule.EndTime)
		if err != nil {
			continue
		}
		for _, label := range labels {
			if occ, ok := occupied[label]; ok {
				slots = append(slots, models.TimeSlot{
					Time:      label,
					Available: false,
					BookedBy:  occ.CustomerName,
					BookingID: occ.BookingID.String(),
				})
				continue
			}
			slots = append(slots, models.TimeSlot{
				Time:      label,
				Available: true,
				Price:     fmt.Sprintf("Rs. %.0f", rate),
				Duration:  "1 hr",
			})
		}
	}
	return slots
}
