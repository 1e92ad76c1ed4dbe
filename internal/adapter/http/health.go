package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz pings every registered dependency and answers 503 when any
// of them fails.
func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	ready := true
	for _, c := range h.checks {
		if err := c.p.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed", slog.String("dependency", c.name), slog.Any("error", err))
			status[c.name] = "down"
			ready = false
			continue
		}
		status[c.name] = "up"
	}

	code := http.StatusOK
	if !ready {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}
