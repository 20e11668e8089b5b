package get_business_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings"
)

const (
	msgNotFound = "настройки барбершопа не найдены"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
// Клиенты получают публичную часть, администратор (если прошел Auth) - полные настройки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result interface{}
		err    error
	)

	if middleware.IsAdmin(r.Context()) {
		result, err = h.service.Get(r.Context())
	} else {
		result, err = h.service.GetPublic(r.Context())
	}

	if err != nil {
		switch {
		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Error("GET /settings - Business settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /settings - Failed to get settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /settings - Settings retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
