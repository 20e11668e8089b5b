package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusCompleted, true},
		{StatusApproved, StatusClientApprovalPending, true},
		{StatusApproved, StatusPending, false},
		{StatusClientApprovalPending, StatusApproved, true},
		{StatusClientApprovalPending, StatusCancelled, true},
		{StatusClientApprovalPending, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{AppointmentStatus("unknown"), StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestAppointmentStatus_OccupiesCalendar(t *testing.T) {
	assert.True(t, StatusPending.OccupiesCalendar())
	assert.True(t, StatusApproved.OccupiesCalendar())
	assert.True(t, StatusClientApprovalPending.OccupiesCalendar())

	assert.False(t, StatusRejected.OccupiesCalendar())
	assert.False(t, StatusCancelled.OccupiesCalendar())
	assert.False(t, StatusCompleted.OccupiesCalendar())

	for _, s := range OccupyingStatuses {
		assert.True(t, s.OccupiesCalendar(), s)
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusClientApprovalPending.IsTerminal())
}

func TestChangeWindow_AllowsChange(t *testing.T) {
	now := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	window := ChangeWindow{HoursBefore: 12, GracePeriodMinutes: 30}

	tests := []struct {
		name      string
		start     time.Time
		createdAt time.Time
		want      bool
	}{
		{
			name:      "far enough ahead",
			start:     now.Add(13 * time.Hour),
			createdAt: now.Add(-48 * time.Hour),
			want:      true,
		},
		{
			name:      "exactly at the notice boundary",
			start:     now.Add(12 * time.Hour),
			createdAt: now.Add(-48 * time.Hour),
			want:      true,
		},
		{
			name:      "too close and old",
			start:     now.Add(2 * time.Hour),
			createdAt: now.Add(-48 * time.Hour),
			want:      false,
		},
		{
			name:      "too close but within grace period",
			start:     now.Add(2 * time.Hour),
			createdAt: now.Add(-10 * time.Minute),
			want:      true,
		},
		{
			name:      "already started",
			start:     now.Add(-time.Minute),
			createdAt: now.Add(-5 * time.Minute),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{StartTime: tt.start, CreatedAt: tt.createdAt}
			assert.Equal(t, tt.want, window.AllowsChange(a, now))
		})
	}
}

func TestAppointment_DurationMinutes(t *testing.T) {
	start := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	a := &Appointment{StartTime: start, EndTime: start.Add(45 * time.Minute)}
	assert.Equal(t, 45, a.DurationMinutes())
}
