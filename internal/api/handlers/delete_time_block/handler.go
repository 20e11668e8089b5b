package delete_time_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/timeblocks"
)

const (
	msgInvalidTimeBlockID = "некорректный ID блокировки"
	msgNotFound           = "блокировка не найдена"
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

// Handle DELETE /api/v1/time-blocks/{timeBlockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	timeBlockID, err := strconv.ParseInt(mux.Vars(r)["timeBlockId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /time-blocks/{id} - Invalid time block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeBlockID)
		return
	}

	if err := h.service.Delete(r.Context(), timeBlockID); err != nil {
		switch {
		case errors.Is(err, timeblocks.ErrTimeBlockNotFound):
			h.logger.Warn("DELETE /time-blocks/{id} - Time block not found: time_block_id=%d", timeBlockID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /time-blocks/{id} - Failed to delete time block: time_block_id=%d, error=%v",
				timeBlockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-blocks/{id} - Time block deleted successfully: time_block_id=%d", timeBlockID)
	handlers.RespondNoContent(w)
}
