package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vaultpass/passgen/internal/service"
)

const (
	defaultStatsWindow = 24 * time.Hour
	maxStatsWindow     = 90 * 24 * time.Hour
)

// StatsHandler serves aggregated usage of the generator endpoints.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats?window=<duration> requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	window := defaultStatsWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 || d > maxStatsWindow {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid window"))
			return
		}
		window = d
	}

	resp, err := h.service.Summary(r.Context(), window)
	if err != nil {
		slog.Error("loading usage summary failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
