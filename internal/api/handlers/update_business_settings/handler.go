package update_business_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "не передано ни одного поля для обновления"
	msgInvalidData        = "некорректные данные настроек"
	msgNotFound           = "настройки барбершопа не найдены"
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

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PUT /settings - Empty update")
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Error("PUT /settings - Business settings not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
