package timeblocks

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// TimeBlockRepository интерфейс репозитория блокировок времени
type TimeBlockRepository interface {
	Create(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
