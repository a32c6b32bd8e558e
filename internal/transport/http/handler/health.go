package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "ping":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "pong"})
	case "uptime":
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: time.Since(h.startedAt).Round(time.Second).String()})
	default:
		writeError(w, http.StatusBadRequest, "unknown action")
	}
}
