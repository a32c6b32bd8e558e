package handler

import (
	"net/http"

	userapp "github.com/biteright/biteright-api/internal/application/user"
	"github.com/biteright/biteright-api/internal/transport/http/middleware"
)

// UserHandler serves the authenticated user's own records.
type UserHandler struct {
	svc userapp.Service
}

func NewUserHandler(svc userapp.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, p, err := h.svc.Me(r.Context(), ident.Email)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MeEnvelope{User: u, Profile: p})
}
