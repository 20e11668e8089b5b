package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// SettingsProvider источник настроек бизнеса (кэш или репозиторий)
type SettingsProvider interface {
	Get(ctx context.Context, id int64) (*domain.BusinessSettings, error)
}

// BusyCollector собирает занятые интервалы окна
type BusyCollector interface {
	Collect(ctx context.Context, from, to time.Time, bufferMinutes int) ([]domain.BusyInterval, error)
	CollectExcluding(ctx context.Context, from, to time.Time, bufferMinutes int, appointmentID int64) ([]domain.BusyInterval, error)
}

// Metrics метрики расчёта слотов
type Metrics interface {
	ObserveSlotComputation(duration time.Duration, available, unavailable int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
