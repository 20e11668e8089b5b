package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BarberService, error)
}

// SlotsService расчёт сетки слотов на день
type SlotsService interface {
	Compute(ctx context.Context, date availability.CalendarDate, durationMinutes int, now time.Time) (*slots.DaySlots, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
