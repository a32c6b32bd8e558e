package handler

import (
	"encoding/json"
	"net/http"

	"github.com/biteright/biteright-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TokenEnvelope wraps responses that issue a bearer token.
type TokenEnvelope struct {
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MeEnvelope wraps the authenticated user's own record and profile.
type MeEnvelope struct {
	User    *domain.User    `json:"user,omitempty"`
	Profile *domain.Profile `json:"profile,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
