package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные параметры запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration    = "длительность услуги должна быть положительной"
	msgServiceNotFound    = "услуга не найдена"
	msgConfigMissing      = "настройки барбершопа недоступны"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/available-slots
// Body: {"date": "2024-01-05", "serviceDuration": 30}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailableSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /available-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.execute(w, r, "POST /available-slots", &req)
}

// HandleQuery GET /api/v1/available-slots
// Query params: date (обязателен), serviceId или serviceDuration, onlyAvailable (опционально)
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req, err := FromQuery(q.Get("date"), q.Get("serviceId"), q.Get("serviceDuration"), q.Get("onlyAvailable"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	h.execute(w, r, "GET /available-slots", req)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *AvailableSlotsRequest) {
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("%s - Invalid date: date=%s", route, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: date=%s, duration=%d, error=%v", route, req.Date, req.ServiceDuration, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%v", route, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrConfigurationMissing):
			h.logger.Error("%s - Business settings missing: %v", route, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgConfigMissing)

		default:
			h.logger.Error("%s - Failed to get slots: date=%s, error=%v", route, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Slots retrieved successfully: date=%s, duration=%d, slots_count=%d",
		route, result.Date, result.ServiceDurationMinutes, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
