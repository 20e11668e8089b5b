package list_time_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/timeblocks"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/timeblocks/models"
)

const (
	msgInvalidParams = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"
)

type Handler struct {
	service TimeBlockService
	logger  Logger
}

func NewHandler(service TimeBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/time-blocks
// Query params: from, to (YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListTimeBlocksRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrInvalidInput):
			h.logger.Warn("GET /time-blocks - Invalid parameters: from=%s, to=%s, error=%v", req.From, req.To, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /time-blocks - Failed to list time blocks: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /time-blocks - Time blocks retrieved successfully: count=%d", len(result.TimeBlocks))
	handlers.RespondJSON(w, http.StatusOK, result.TimeBlocks)
}
