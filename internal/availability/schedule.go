package availability

import "github.com/m04kA/SMC-BarberBookingService/internal/domain"

// ResolveDayRanges returns the working ranges of the date's weekday.
// A closed day yields an empty result, not an error.
func ResolveDayRanges(date CalendarDate, hours domain.WorkingHours) []domain.TimeRange {
	ranges := hours.RangesFor(domain.WeekdayOf(date.Weekday()))
	if len(ranges) == 0 {
		return nil
	}
	out := make([]domain.TimeRange, len(ranges))
	copy(out, ranges)
	return out
}
