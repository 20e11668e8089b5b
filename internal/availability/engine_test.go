package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

func utc(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func slotTimes(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time.Format(domain.TimeFormat)
	}
	return out
}

func findSlot(t *testing.T, slots []domain.Slot, at time.Time) domain.Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time.Equal(at) {
			return s
		}
	}
	t.Fatalf("slot %s not found", at)
	return domain.Slot{}
}

func mondayInput() Input {
	return Input{
		Date:                   CalendarDate{Year: 2024, Month: time.January, Day: 1},
		ServiceDurationMinutes: 15,
		Ranges:                 []domain.TimeRange{{Start: "09:00", End: "18:00"}},
		Now:                    utc(0, 0).AddDate(0, 0, -1),
		Location:               time.UTC,
	}
}

func TestGenerateSlots_NoPastSlotsToday(t *testing.T) {
	in := mondayInput()
	in.Now = utc(10, 0)

	slots, err := GenerateSlots(in)
	require.NoError(t, err)

	assert.False(t, findSlot(t, slots, utc(9, 45)).Available)
	assert.False(t, findSlot(t, slots, utc(10, 0)).Available, "slot starting exactly now is past")
	assert.True(t, findSlot(t, slots, utc(10, 15)).Available)
}

func TestGenerateSlots_BufferEnforcement(t *testing.T) {
	in := mondayInput()
	in.Busy = BuildBusyIntervals(
		[]*domain.Appointment{{StartTime: utc(10, 0), EndTime: utc(10, 30), Status: domain.StatusApproved}},
		nil,
		15,
	)

	slots, err := GenerateSlots(in)
	require.NoError(t, err)

	assert.False(t, findSlot(t, slots, utc(10, 30)).Available)
	assert.True(t, findSlot(t, slots, utc(10, 45)).Available)
}

func TestGenerateSlots_DurationOverrun(t *testing.T) {
	in := mondayInput()
	in.Ranges = []domain.TimeRange{{Start: "09:00", End: "09:30"}}
	in.ServiceDurationMinutes = 45

	slots, err := GenerateSlots(in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	hours := domain.DefaultBusinessSettings().WorkingHours
	saturday := CalendarDate{Year: 2024, Month: time.January, Day: 6}

	in := mondayInput()
	in.Date = saturday
	in.Ranges = ResolveDayRanges(saturday, hours)

	slots, err := GenerateSlots(in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MultiRangeDay(t *testing.T) {
	friday := CalendarDate{Year: 2024, Month: time.January, Day: 5}
	hours := domain.WorkingHours{
		domain.Friday: {
			{Start: "09:00", End: "12:00"},
			{Start: "13:00", End: "14:00"},
		},
	}

	in := mondayInput()
	in.Date = friday
	in.Ranges = ResolveDayRanges(friday, hours)
	in.ServiceDurationMinutes = 30

	slots, err := GenerateSlots(in)
	require.NoError(t, err)

	expected := []string{
		"09:00", "09:15", "09:30", "09:45",
		"10:00", "10:15", "10:30", "10:45",
		"11:00", "11:15", "11:30",
		"13:00", "13:15", "13:30",
	}
	assert.Equal(t, expected, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGenerateSlots_OverlapSymmetry(t *testing.T) {
	in := mondayInput()
	in.ServiceDurationMinutes = 30
	in.Busy = []domain.BusyInterval{{Start: utc(10, 0), End: utc(10, 30)}}

	slots, err := GenerateSlots(in)
	require.NoError(t, err)

	assert.False(t, findSlot(t, slots, utc(9, 45)).Available, "[09:45,10:15) shares [10:00,10:15)")
	assert.False(t, findSlot(t, slots, utc(10, 15)).Available)
	assert.True(t, findSlot(t, slots, utc(9, 30)).Available, "[09:30,10:00) only touches the busy start")
	assert.True(t, findSlot(t, slots, utc(10, 30)).Available, "[10:30,11:00) only touches the busy end")
}

func TestGenerateSlots_TimeBlocksHaveNoBuffer(t *testing.T) {
	in := mondayInput()
	in.Busy = BuildBusyIntervals(
		nil,
		[]*domain.TimeBlock{{StartTime: utc(12, 0), EndTime: utc(13, 0)}},
		30,
	)

	slots, err := GenerateSlots(in)
	require.NoError(t, err)

	assert.False(t, findSlot(t, slots, utc(12, 45)).Available)
	assert.True(t, findSlot(t, slots, utc(13, 0)).Available)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	in := mondayInput()
	in.Now = utc(11, 7)
	in.Busy = []domain.BusyInterval{{Start: utc(14, 0), End: utc(15, 10)}}

	first, err := GenerateSlots(in)
	require.NoError(t, err)
	second, err := GenerateSlots(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSlots_BusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	in := Input{
		Date:                   CalendarDate{Year: 2024, Month: time.January, Day: 5},
		ServiceDurationMinutes: 60,
		Ranges:                 []domain.TimeRange{{Start: "09:00", End: "10:00"}},
		Now:                    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		Location:               loc,
	}

	slots, err := GenerateSlots(in)
	require.NoError(t, err)
	require.Len(t, slots, 1)

	// 09:00 в Иерусалиме зимой это 07:00 UTC
	assert.Equal(t, time.Date(2024, time.January, 5, 7, 0, 0, 0, time.UTC), slots[0].Time)
	assert.Equal(t, time.UTC, slots[0].Time.Location())
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	in := mondayInput()
	in.ServiceDurationMinutes = 0
	_, err := GenerateSlots(in)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	in = mondayInput()
	in.Location = nil
	_, err = GenerateSlots(in)
	assert.ErrorIs(t, err, ErrMissingLocation)

	in = mondayInput()
	in.Ranges = []domain.TimeRange{{Start: "9am", End: "18:00"}}
	_, err = GenerateSlots(in)
	assert.ErrorIs(t, err, ErrMalformedRange)
}

func TestGenerateSlots_InvertedRangeYieldsNothing(t *testing.T) {
	in := mondayInput()
	in.Ranges = []domain.TimeRange{{Start: "18:00", End: "09:00"}}

	slots, err := GenerateSlots(in)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestIsBookable(t *testing.T) {
	in := mondayInput()
	in.ServiceDurationMinutes = 30
	in.Busy = []domain.BusyInterval{{Start: utc(10, 0), End: utc(10, 30)}}

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{name: "free slot", start: utc(11, 0), want: true},
		{name: "busy slot", start: utc(10, 15), want: false},
		{name: "off the 15 minute grid", start: utc(11, 5), want: false},
		{name: "outside working hours", start: utc(8, 0), want: false},
		{name: "runs past closing", start: utc(17, 45), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := IsBookable(in, tt.start)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestAvailableOnlyAndCount(t *testing.T) {
	slots := []domain.Slot{
		{Time: utc(9, 0), Available: false},
		{Time: utc(9, 15), Available: true},
		{Time: utc(9, 30), Available: true},
	}

	filtered := AvailableOnly(slots)
	assert.Equal(t, []string{"09:15", "09:30"}, slotTimes(filtered))

	available, unavailable := CountAvailable(slots)
	assert.Equal(t, 2, available)
	assert.Equal(t, 1, unavailable)
}
