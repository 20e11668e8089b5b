package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, CalendarDate{Year: 2024, Month: time.February, Day: 29}, d)
	assert.Equal(t, "2024-02-29", d.String())
	assert.Equal(t, time.Thursday, d.Weekday())

	for _, bad := range []string{"", "2024-13-01", "2023-02-29", "01/05/2024", "2024-1-5"} {
		_, err := ParseCalendarDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}

func TestCalendarDate_DayBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	start, end := CalendarDate{Year: 2024, Month: time.January, Day: 5}.DayBounds(loc)
	assert.Equal(t, time.Date(2024, time.January, 4, 22, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.January, 5, 22, 0, 0, 0, time.UTC), end)

	// Переход на летнее время в Израиле 29.03.2024: сутки длятся 23 часа
	start, end = CalendarDate{Year: 2024, Month: time.March, Day: 29}.DayBounds(loc)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestCalendarDate_Helpers(t *testing.T) {
	d := CalendarDate{Year: 2024, Month: time.December, Day: 31}

	next := d.AddDays(1)
	assert.Equal(t, CalendarDate{Year: 2025, Month: time.January, Day: 1}, next)
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))

	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, next, DateOf(time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), loc))
}

func TestResolveDayRanges(t *testing.T) {
	hours := domain.DefaultBusinessSettings().WorkingHours

	friday := ResolveDayRanges(CalendarDate{Year: 2024, Month: time.January, Day: 5}, hours)
	assert.Equal(t, []domain.TimeRange{{Start: "09:00", End: "14:00"}}, friday)

	saturday := ResolveDayRanges(CalendarDate{Year: 2024, Month: time.January, Day: 6}, hours)
	assert.Empty(t, saturday)

	assert.Empty(t, ResolveDayRanges(CalendarDate{Year: 2024, Month: time.January, Day: 5}, nil))
}
