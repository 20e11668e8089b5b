package get_business_settings

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
	GetPublic(ctx context.Context) (*models.PublicSettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
