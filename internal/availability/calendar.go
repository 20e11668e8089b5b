package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// ErrInvalidDate is returned when a date string is not YYYY-MM-DD
var ErrInvalidDate = errors.New("availability: invalid date")

// CalendarDate is a day of the business calendar, independent of any timezone
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCalendarDate parses YYYY-MM-DD
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf returns the calendar date of an instant as seen in loc
func DateOf(instant time.Time, loc *time.Location) CalendarDate {
	y, m, d := instant.In(loc).Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Weekday returns the day of week of the date
func (d CalendarDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Before reports whether d is an earlier day than other
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.midnightUTC().Before(other.midnightUTC())
}

// AddDays returns the date shifted by n days
func (d CalendarDate) AddDays(n int) CalendarDate {
	t := d.midnightUTC().AddDate(0, 0, n)
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// At anchors a local wall-clock time to this date in loc and returns the UTC instant
func (d CalendarDate) At(ts types.TimeString, loc *time.Location) (time.Time, error) {
	t, err := ts.On(d.Year, d.Month, d.Day, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// DayBounds returns [local midnight, next local midnight) of the date in loc, as UTC instants.
// On DST transition days the window is 23 or 25 hours long.
func (d CalendarDate) DayBounds(loc *time.Location) (time.Time, time.Time) {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	end := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}

func (d CalendarDate) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}
