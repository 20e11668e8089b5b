package propose_appointment_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	proposeTime "github.com/m04kA/SMC-BarberBookingService/internal/usecase/propose_appointment_time"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректное время записи"
	msgNotFound             = "запись не найдена"
	msgCannotPropose        = "для записи нельзя предложить новое время"
	msgSlotNotAvailable     = "выбранное время недоступно"
	msgConfigMissing        = "настройки барбершопа недоступны"
)

type Handler struct {
	useCase ProposeAppointmentTimeUseCase
	logger  Logger
}

func NewHandler(useCase ProposeAppointmentTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/propose-time
// Администратор переносит запись, клиент должен подтвердить новое время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/propose-time - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/propose-time - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ProposeTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/propose-time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, adminID))
	if err != nil {
		switch {
		case errors.Is(err, proposeTime.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/propose-time - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, proposeTime.ErrCannotPropose):
			h.logger.Warn("POST /appointments/{id}/propose-time - Cannot propose: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotPropose)

		case errors.Is(err, proposeTime.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments/{id}/propose-time - Slot not available: appointment_id=%d, start=%s",
				appointmentID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, proposeTime.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/propose-time - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, proposeTime.ErrConfigurationMissing):
			h.logger.Error("POST /appointments/{id}/propose-time - Business settings missing: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfigMissing)

		default:
			h.logger.Error("POST /appointments/{id}/propose-time - Failed to propose time: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/propose-time - New time proposed: appointment_id=%d, start=%s",
		appointmentID, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
