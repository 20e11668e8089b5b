package busy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListOccupying(ctx context.Context, from, to time.Time, bufferMinutes int) ([]*domain.Appointment, error)
}

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
