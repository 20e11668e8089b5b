package propose_appointment_time

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	proposeTime "github.com/m04kA/SMC-BarberBookingService/internal/usecase/propose_appointment_time"
)

type ProposeAppointmentTimeUseCase interface {
	Execute(ctx context.Context, req *proposeTime.Request) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
