package scheduling

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/models"
	"gorm.io/gorm"
)

type RuleInput struct {
	DayOfWeek   int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	IsAvailable bool   `json:"is_available"`
}

func (in RuleInput) validate() error {
	if in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week %d out of range: %w", in.DayOfWeek, ErrValidation)
	}
	start, err := parseClock(in.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("start %s is not before end %s: %w", in.StartTime, in.EndTime, ErrValidation)
	}
	return nil
}

// SetWeeklyAvailability replaces workerID's whole weekly schedule in one
// transaction: delete everything, insert the new set. Concurrent replaces
// for the same worker are last-writer-wins; the schedule has a single
// owner so that is acceptable.
func (e *Engine) SetWeeklyAvailability(workerID uuid.UUID, rules []RuleInput) error {
	if workerID == uuid.Nil {
		return fmt.Errorf("worker id is required: %w", ErrValidation)
	}
	for _, rule := range rules {
		if err := rule.validate(); err != nil {
			return err
		}
	}

	return e.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("worker_id = ?", workerID).
			Delete(&models.AvailabilityRule{}).Error
		if err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}

		rows := make([]models.AvailabilityRule, 0, len(rules))
		for _, rule := range rules {
			rows = append(rows, models.AvailabilityRule{
				WorkerID:    workerID,
				DayOfWeek:   rule.DayOfWeek,
				StartTime:   rule.StartTime,
				EndTime:     rule.EndTime,
				IsAvailable: rule.IsAvailable,
			})
		}
		return tx.Create(&rows).Error
	})
}

// WeeklyAvailability returns workerID's full weekly schedule ordered by
// day and start time.
func (e *Engine) WeeklyAvailability(workerID uuid.UUID) ([]models.AvailabilityRule, error) {
	var rules []models.AvailabilityRule
	err := e.db.
		Where("worker_id = ?", workerID).
		Order("day_of_week asc, start_time asc").
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	return rules, nil
}
