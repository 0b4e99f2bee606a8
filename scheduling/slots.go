package scheduling

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseClock converts an "HH:MM" 24-hour label into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time %q: %w", s, ErrValidation)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("malformed time %q: %w", s, ErrValidation)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("malformed time %q: %w", s, ErrValidation)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WalkSlots returns the 30-minute step labels covering [start, end).
// A final step whose start lands before end is emitted even when the
// step itself extends past end.
func WalkSlots(start, end string) ([]string, error) {
	from, err := parseClock(start)
	if err != nil {
		return nil, err
	}
	to, err := parseClock(end)
	if err != nil {
		return nil, err
	}
	if from >= to {
		return nil, fmt.Errorf("start %s is not before end %s: %w", start, end, ErrValidation)
	}

	var labels []string
	for t := from; t < to; t += SlotMinutes {
		labels = append(labels, formatClock(t))
	}
	return labels, nil
}

// SlotCount is the number of 30-minute granules a booking of the given
// duration occupies. Trailing partial granules count as a full one.
func SlotCount(durationHours float64) int {
	return int(math.Ceil(durationHours * 60 / SlotMinutes))
}

// endFromStart derives a booking's end label from its start and duration.
func endFromStart(start string, durationHours float64) (string, error) {
	from, err := parseClock(start)
	if err != nil {
		return "", err
	}
	to := from + int(math.Round(durationHours*60))
	if to > 24*60 {
		return "", fmt.Errorf("booking runs past midnight: %w", ErrValidation)
	}
	if to == 24*60 {
		to = 24*60 - 1 // keep the label within the day; the walk still covers the last granule
	}
	return formatClock(to), nil
}
