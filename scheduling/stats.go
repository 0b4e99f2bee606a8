package scheduling

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/models"
	"gorm.io/gorm"
)

type Stats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Confirmed   int     `json:"confirmed"`
	Completed   int     `json:"completed"`
	Cancelled   int     `json:"cancelled"`
	TotalAmount float64 `json:"total_amount"`
}

// BookingStats aggregates the caller's bookings by status. Customers are
// matched by customer_id; workers by their worker profile.
func (e *Engine) BookingStats(userID uuid.UUID, role string) (Stats, error) {
	query := e.db.Model(&models.Booking{}).Select("status, amount")

	switch role {
	case "worker":
		var worker models.WorkerProfile
		if err := e.db.First(&worker, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Stats{}, fmt.Errorf("worker profile for user %s: %w", userID, ErrNotFound)
			}
			return Stats{}, err
		}
		query = query.Where("worker_id = ?", worker.ID)
	default:
		query = query.Where("customer_id = ?", userID)
	}

	var rows []struct {
		Status models.BookingStatus
		Amount float64
	}
	if err := query.Scan(&rows).Error; err != nil {
		return Stats{}, err
	}

	stats := Stats{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingConfirmed:
			stats.Confirmed++
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingCancelled:
			stats.Cancelled++
		}
		stats.TotalAmount += row.Amount
	}
	return stats, nil
}

// AvailableWorkers lists verified worker profiles currently accepting
// bookings, optionally narrowed to one service category.
func (e *Engine) AvailableWorkers(category string) ([]models.WorkerProfile, error) {
	query := e.db.
		Preload("User").
		Where("is_available = ? AND verification_status = ?", true, models.VerificationVerified)
	if category != "" {
		query = query.Where("service_category = ?", category)
	}

	var workers []models.WorkerProfile
	if err := query.Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}
