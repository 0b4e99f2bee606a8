package scheduling

import "errors"

// Sentinel errors returned by the engine. Anything else coming out of an
// engine call is a store failure propagated unchanged from GORM.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("time slot already booked")
)
