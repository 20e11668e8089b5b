package create_appointment

import (
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID int64     `json:"serviceId"`
	StartTime time.Time `json:"startTime"` // RFC3339, например "2024-01-05T07:00:00Z"
	Notes     *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID uuid.UUID) *createAppointment.Request {
	return &createAppointment.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		StartTime: r.StartTime,
		Notes:     r.Notes,
	}
}
