// Package scheduling implements the availability and booking engine:
// resolving a worker's recurring weekly schedule into bookable 30-minute
// slots for a date, filtering out slots held by active bookings, and
// writing bookings atomically with their slot decomposition.
package scheduling

import "gorm.io/gorm"

// SlotMinutes is the fixed granule size for both the availability walk
// and the persisted booking decomposition.
const SlotMinutes = 30

type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}
