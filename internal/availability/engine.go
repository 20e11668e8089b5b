package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

var (
	// ErrInvalidDuration is returned for a non-positive service duration
	ErrInvalidDuration = errors.New("availability: service duration must be positive")

	// ErrMalformedRange is returned when a working range time cannot be parsed
	ErrMalformedRange = errors.New("availability: malformed working range")

	// ErrMissingLocation is returned when no business timezone is given
	ErrMissingLocation = errors.New("availability: business location is required")
)

// Input is everything the engine needs to compute one day
type Input struct {
	Date                   CalendarDate
	ServiceDurationMinutes int
	Ranges                 []domain.TimeRange
	Busy                   []domain.BusyInterval
	// Now is the server clock; slots starting at or before it are not available
	Now      time.Time
	Location *time.Location
}

// GenerateSlots walks every working range from its start in 15 minute steps and emits one slot
// per start time whose service interval fits into the range. A slot is available when its
// interval [start, start+duration) overlaps no busy interval and it starts after Now.
// Slots are returned in range order with times in UTC.
func GenerateSlots(in Input) ([]domain.Slot, error) {
	if in.ServiceDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, in.ServiceDurationMinutes)
	}
	if in.Location == nil {
		return nil, ErrMissingLocation
	}

	duration := time.Duration(in.ServiceDurationMinutes) * time.Minute
	step := time.Duration(domain.SlotStepMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	for _, r := range in.Ranges {
		rangeStart, err := in.Date.At(r.Start, in.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: start %q: %v", ErrMalformedRange, r.Start, err)
		}
		rangeEnd, err := in.Date.At(r.End, in.Location)
		if err != nil {
			return nil, fmt.Errorf("%w: end %q: %v", ErrMalformedRange, r.End, err)
		}

		for cursor := rangeStart; cursor.Before(rangeEnd); cursor = cursor.Add(step) {
			slotEnd := cursor.Add(duration)
			if slotEnd.After(rangeEnd) {
				break
			}

			available := cursor.After(in.Now) && !overlapsAny(cursor, slotEnd, in.Busy)
			slots = append(slots, domain.Slot{Time: cursor, Available: available})
		}
	}

	return slots, nil
}

func overlapsAny(start, end time.Time, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// AvailableOnly drops unavailable slots, keeping order
func AvailableOnly(slots []domain.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

// IsBookable reports whether start is one of the available slots of the computation
func IsBookable(in Input, start time.Time) (bool, error) {
	slots, err := GenerateSlots(in)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s.Time.Equal(start) {
			return s.Available, nil
		}
	}
	return false, nil
}

// CountAvailable returns the number of available and unavailable slots
func CountAvailable(slots []domain.Slot) (available, unavailable int) {
	for _, s := range slots {
		if s.Available {
			available++
		} else {
			unavailable++
		}
	}
	return available, unavailable
}
