package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// ErrNotVerified is returned on login while the email is still unconfirmed.
	// Distinct from ErrUnauthorized: the credentials were correct and a fresh
	// verification code has already been re-sent as a side effect.
	ErrNotVerified = errors.New("not verified")

	// ErrAlreadyVerified guards the one-way unverified -> verified transition.
	ErrAlreadyVerified = errors.New("already verified")

	// ErrCodeExpired means the submitted verification code had expired; a
	// replacement code has already been generated and e-mailed.
	ErrCodeExpired = errors.New("verification code expired")
)
