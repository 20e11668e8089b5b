package domain

import "time"

// Slot is a candidate start time of the requested service.
// Available is false when the interval overlaps a busy interval or the start is already in the past.
type Slot struct {
	Time      time.Time
	Available bool
}

// IsOnSlotGrid reports whether t is a whole multiple of SlotStepMinutes.
// Working ranges start on the grid and every real UTC offset is a multiple of 15 minutes,
// so the check holds in any location.
func IsOnSlotGrid(t time.Time) bool {
	return t.Equal(t.Truncate(time.Duration(SlotStepMinutes) * time.Minute))
}

// BusyInterval is an absolute half-open interval [Start, End) during which nothing can be booked
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the interval. Touching endpoints do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
