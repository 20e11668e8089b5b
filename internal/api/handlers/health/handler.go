package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

type Logger interface {
	Warn(format string, v ...interface{})
}

// Check проверка одной зависимости
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Response ответ health check
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks []Check
	logger Logger
}

func NewHandler(logger Logger, checks ...Check) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK

	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			h.logger.Warn("GET /health - %s is unavailable: %v", c.Name, err)
			resp.Checks[c.Name] = "unavailable"
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[c.Name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
