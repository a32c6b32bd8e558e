package handler

import (
	"errors"
	"net/http"

	"github.com/biteright/biteright-api/internal/domain"
)

// httpError maps domain sentinel errors to HTTP status codes and writes the
// error message. Anything unrecognized is a collaborator failure: the client
// gets a generic 500 and may retry the whole operation.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrAlreadyVerified),
		errors.Is(err, domain.ErrCodeExpired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotVerified),
		errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
