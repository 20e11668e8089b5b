package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// BuildBusyIntervals merges appointments and time blocks into busy intervals.
// Only appointments whose status occupies the calendar are kept; their end is
// extended by bufferMinutes. Time blocks are used as is.
func BuildBusyIntervals(appointments []*domain.Appointment, blocks []*domain.TimeBlock, bufferMinutes int) []domain.BusyInterval {
	buffer := time.Duration(bufferMinutes) * time.Minute
	busy := make([]domain.BusyInterval, 0, len(appointments)+len(blocks))

	for _, a := range appointments {
		if !a.Status.OccupiesCalendar() {
			continue
		}
		busy = append(busy, domain.BusyInterval{
			Start: a.StartTime.UTC(),
			End:   a.EndTime.Add(buffer).UTC(),
		})
	}

	for _, b := range blocks {
		busy = append(busy, domain.BusyInterval{
			Start: b.StartTime.UTC(),
			End:   b.EndTime.UTC(),
		})
	}

	return busy
}
