package settings

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// SettingsStore хранилище настроек бизнеса (кэш поверх репозитория или сам репозиторий)
type SettingsStore interface {
	Get(ctx context.Context, id int64) (*domain.BusinessSettings, error)
	EnsureDefaults(ctx context.Context, settings domain.BusinessSettings) (bool, error)
	Update(ctx context.Context, settings domain.BusinessSettings) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
