package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biteright/biteright-api/internal/application/auth"
	"github.com/biteright/biteright-api/internal/domain"
	"github.com/biteright/biteright-api/internal/pkg/validate"
	"github.com/biteright/biteright-api/internal/transport/http/middleware"
)

type CheckAvailabilityRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerificationRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

type PasswordResetRequest struct {
	Email       string `json:"email" validate:"required"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type UsernameUpdateRequest struct {
	NewUsername string `json:"new_username" validate:"required"`
}

type EmailUpdateRequest struct {
	NewEmail string `json:"new_email" validate:"required"`
}

type PasswordUpdateRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type tokenSigner interface {
	Sign(email string) (string, error)
}

// AuthHandler handles the registration, verification, login and password
// lifecycle endpoints.
type AuthHandler struct {
	svc    auth.Service
	tokens tokenSigner
}

func NewAuthHandler(svc auth.Service, tokens tokenSigner) *AuthHandler {
	return &AuthHandler{svc: svc, tokens: tokens}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.svc.Register(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "user registered successfully"})
}

func (h *AuthHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.svc.CheckAvailability(r.Context(), req.Username, req.Email)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpError(w, err)
		return
	}
	token, err := h.tokens.Sign(u.Email)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.VerifyRegistration(r.Context(), req.Email, req.Code); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "user verified successfully"})
}

// ForgottenPassword always answers 200 for well-formed requests, whether or
// not the address is registered.
func (h *AuthHandler) ForgottenPassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if err := h.svc.ManageForgottenPassword(r.Context(), email); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "if the email is registered, a reset email has been sent"})
}

func (h *AuthHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.VerifyForgottenPasswordCode(r.Context(), req.Email, req.Code); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "reset code accepted"})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ResetForgottenPassword(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "password changed successfully"})
}

func (h *AuthHandler) TokenCheck(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "the token provided is valid for " + ident.Email})
}

func (h *AuthHandler) ChangeUsername(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req UsernameUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ChangeUsername(r.Context(), ident.Email, req.NewUsername); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "username changed successfully"})
}

// ChangeEmail rewrites the identity and answers with a fresh token bound to
// the new address, since tokens carry the email as subject.
func (h *AuthHandler) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req EmailUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	u, err := h.svc.ChangeEmail(r.Context(), ident.Email, req.NewEmail)
	if err != nil {
		httpError(w, err)
		return
	}
	token, err := h.tokens.Sign(u.Email)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token, Message: "email changed successfully"})
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req PasswordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.ChangePassword(r.Context(), ident.Email, req.OldPassword, req.NewPassword); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "password changed successfully"})
}
