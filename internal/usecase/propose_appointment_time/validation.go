package propose_appointment_time

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if req.AdminID == uuid.Nil {
		return fmt.Errorf("%w: adminID is required", ErrInvalidInput)
	}

	if req.NewStartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.IsOnSlotGrid(req.NewStartTime) {
		return fmt.Errorf("%w: startTime must be a multiple of %d minutes", ErrInvalidInput, domain.SlotStepMinutes)
	}

	return nil
}
