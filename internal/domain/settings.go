package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// ErrMalformedWorkingHours is returned when stored working hours cannot be decoded
var ErrMalformedWorkingHours = errors.New("domain: malformed working hours")

// Weekday is a lowercase English weekday name used as a key in WorkingHours
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays in time.Weekday order
var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps a time.Weekday to its key
func WeekdayOf(d time.Weekday) Weekday {
	return Weekdays[d]
}

// IsValid reports whether w is one of the seven known keys
func (w Weekday) IsValid() bool {
	for _, d := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// TimeRange is one open interval of a working day in local wall-clock time
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Validate checks that the range is well-formed and non-empty
func (r TimeRange) Validate() error {
	if err := r.Start.Validate(); err != nil {
		return err
	}
	if err := r.End.Validate(); err != nil {
		return err
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: range %s-%s must start before it ends", ErrMalformedWorkingHours, r.Start, r.End)
	}
	// Сетка слотов отсчитывается от начала интервала
	if m, _ := r.Start.Minutes(); m%SlotStepMinutes != 0 {
		return fmt.Errorf("%w: range start %s is not a multiple of %d minutes", ErrMalformedWorkingHours, r.Start, SlotStepMinutes)
	}
	return nil
}

// WorkingHours maps a weekday to its ordered list of open ranges.
// A missing key, a null value or an empty list means the business is closed that day.
// Ranges are used as stored; they are validated when settings are written, not when read.
type WorkingHours map[Weekday][]TimeRange

// RangesFor returns the ranges of the day, nil if closed
func (wh WorkingHours) RangesFor(day Weekday) []TimeRange {
	return wh[day]
}

// Validate checks every day: known keys, well-formed ranges, sorted and non-overlapping
func (wh WorkingHours) Validate() error {
	for day, ranges := range wh {
		if !day.IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrMalformedWorkingHours, day)
		}
		for i, r := range ranges {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s: %w", day, err)
			}
			if i > 0 && r.Start.IsBefore(ranges[i-1].End) {
				return fmt.Errorf("%w: %s ranges overlap or are not sorted", ErrMalformedWorkingHours, day)
			}
		}
	}
	return nil
}

// UnmarshalJSON accepts both the list form {"friday":[{"start":..,"end":..}]} and
// the legacy single-range form {"friday":{"start":..,"end":..}}.
func (wh *WorkingHours) UnmarshalJSON(data []byte) error {
	var raw map[Weekday]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedWorkingHours, err)
	}

	result := make(WorkingHours, len(raw))
	for day, value := range raw {
		if len(value) == 0 || string(value) == "null" {
			continue
		}

		var ranges []TimeRange
		if value[0] == '{' {
			var single TimeRange
			if err := json.Unmarshal(value, &single); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrMalformedWorkingHours, day, err)
			}
			ranges = []TimeRange{single}
		} else if err := json.Unmarshal(value, &ranges); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedWorkingHours, day, err)
		}

		if len(ranges) > 0 {
			result[day] = ranges
		}
	}

	*wh = result
	return nil
}

// Value implements driver.Valuer, stored as JSONB
func (wh WorkingHours) Value() (driver.Value, error) {
	out := make(map[Weekday][]TimeRange, len(Weekdays))
	for _, day := range Weekdays {
		out[day] = wh[day]
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (wh *WorkingHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*wh = WorkingHours{}
		return nil
	case []byte:
		return wh.UnmarshalJSON(v)
	case string:
		return wh.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedWorkingHours, src)
	}
}

// BusinessSettings is the barbershop-wide configuration, loaded once per request and passed by value
type BusinessSettings struct {
	ID                             int64
	WorkingHours                   WorkingHours
	BufferMinutes                  int
	AutoApproveAppointments        bool
	CancellationHoursBefore        int
	RebookingHoursBefore           int
	CancellationGracePeriodMinutes int
	RebookingGracePeriodMinutes    int
	AppointmentRemindersEnabled    bool
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// CancellationWindow returns the client cancellation policy
func (s BusinessSettings) CancellationWindow() ChangeWindow {
	return ChangeWindow{HoursBefore: s.CancellationHoursBefore, GracePeriodMinutes: s.CancellationGracePeriodMinutes}
}

// RebookingWindow returns the client rebooking policy
func (s BusinessSettings) RebookingWindow() ChangeWindow {
	return ChangeWindow{HoursBefore: s.RebookingHoursBefore, GracePeriodMinutes: s.RebookingGracePeriodMinutes}
}

// InitialStatus returns the status a newly booked appointment gets
func (s BusinessSettings) InitialStatus() AppointmentStatus {
	if s.AutoApproveAppointments {
		return StatusApproved
	}
	return StatusPending
}

// DefaultBusinessSettings returns the settings a fresh installation starts with:
// Sunday to Thursday 09:00-18:00, Friday 09:00-14:00, Saturday closed.
func DefaultBusinessSettings() BusinessSettings {
	fullDay := []TimeRange{{Start: "09:00", End: "18:00"}}
	return BusinessSettings{
		ID: DefaultSettingsID,
		WorkingHours: WorkingHours{
			Sunday:    fullDay,
			Monday:    fullDay,
			Tuesday:   fullDay,
			Wednesday: fullDay,
			Thursday:  fullDay,
			Friday:    {{Start: "09:00", End: "14:00"}},
		},
		BufferMinutes:                  DefaultBufferMinutes,
		CancellationHoursBefore:        DefaultCancellationHoursBefore,
		RebookingHoursBefore:           DefaultRebookingHoursBefore,
		CancellationGracePeriodMinutes: DefaultCancellationGracePeriodMinutes,
		RebookingGracePeriodMinutes:    DefaultRebookingGracePeriodMinutes,
	}
}
