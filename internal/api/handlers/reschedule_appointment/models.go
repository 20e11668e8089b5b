package reschedule_appointment

import (
	"time"

	"github.com/google/uuid"

	rescheduleAppointment "github.com/m04kA/SMC-BarberBookingService/internal/usecase/reschedule_appointment"
)

// RescheduleAppointmentRequest HTTP request model
type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"startTime"` // RFC3339
	ServiceID *int64    `json:"serviceId,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64, userID uuid.UUID, isAdmin bool) *rescheduleAppointment.Request {
	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		UserID:        userID,
		IsAdmin:       isAdmin,
		NewStartTime:  r.StartTime,
		ServiceID:     r.ServiceID,
		Notes:         r.Notes,
	}
}
