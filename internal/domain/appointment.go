package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when a status change is not allowed by the appointment lifecycle
var ErrInvalidTransition = errors.New("domain: invalid appointment status transition")

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending               AppointmentStatus = "pending"
	StatusApproved              AppointmentStatus = "approved"
	StatusRejected              AppointmentStatus = "rejected"
	StatusCancelled             AppointmentStatus = "cancelled"
	StatusCompleted             AppointmentStatus = "completed"
	StatusClientApprovalPending AppointmentStatus = "client_approval_pending"
)

// transitions is the whole appointment lifecycle. Statuses missing as keys are terminal.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:               {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:              {StatusCancelled, StatusCompleted, StatusClientApprovalPending},
	StatusClientApprovalPending: {StatusApproved, StatusCancelled},
}

// OccupyingStatuses lists statuses that hold a place in the calendar
var OccupyingStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusClientApprovalPending,
}

// IsValid reports whether s is a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted, StatusClientApprovalPending:
		return true
	}
	return false
}

// OccupiesCalendar reports whether an appointment in this status blocks the slot for other clients
func (s AppointmentStatus) OccupiesCalendar() bool {
	switch s {
	case StatusPending, StatusApproved, StatusClientApprovalPending:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s AppointmentStatus) IsTerminal() bool {
	_, ok := transitions[s]
	return !ok
}

// ValidateTransition checks that an appointment may move from one status to another
func ValidateTransition(from, to AppointmentStatus) error {
	if !from.IsValid() || !to.IsValid() {
		return fmt.Errorf("%w: unknown status %q -> %q", ErrInvalidTransition, from, to)
	}
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Appointment represents a client's reservation of one barber service
type Appointment struct {
	ID        int64
	UserID    uuid.UUID
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus
	Notes     *string

	// Denormalized service data for history
	ServiceName string
	Price       float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the booked length of the appointment
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// IsOwnedBy reports whether the appointment belongs to the user
func (a *Appointment) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// ChangeWindow describes when a client may still cancel or rebook by themselves
type ChangeWindow struct {
	// HoursBefore minimal notice before the appointment start
	HoursBefore int
	// GracePeriodMinutes period after creation during which changes are always allowed
	GracePeriodMinutes int
}

// AllowsChange reports whether the client may change the appointment at now.
// A change is allowed when the start is at least HoursBefore away, or the appointment
// was created less than GracePeriodMinutes ago. Appointments in the past never qualify.
func (w ChangeWindow) AllowsChange(a *Appointment, now time.Time) bool {
	if !a.StartTime.After(now) {
		return false
	}
	if a.StartTime.Sub(now) >= time.Duration(w.HoursBefore)*time.Hour {
		return true
	}
	return now.Sub(a.CreatedAt) < time.Duration(w.GracePeriodMinutes)*time.Minute
}

// AppointmentsFilter фильтр для списка записей
type AppointmentsFilter struct {
	UserID   *uuid.UUID          // Фильтр по клиенту (опционально)
	From     *time.Time          // Начало периода по start_time, включительно (опционально)
	To       *time.Time          // Конец периода по start_time, не включительно (опционально)
	Statuses []AppointmentStatus // Фильтр по статусам (если пуст - все статусы)
}
