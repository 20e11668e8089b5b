package propose_appointment_time

import (
	"time"

	"github.com/google/uuid"

	proposeTime "github.com/m04kA/SMC-BarberBookingService/internal/usecase/propose_appointment_time"
)

// ProposeTimeRequest HTTP request model
type ProposeTimeRequest struct {
	StartTime time.Time `json:"startTime"` // RFC3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProposeTimeRequest) ToUseCaseRequest(appointmentID int64, adminID uuid.UUID) *proposeTime.Request {
	return &proposeTime.Request{
		AppointmentID: appointmentID,
		AdminID:       adminID,
		NewStartTime:  r.StartTime,
	}
}
