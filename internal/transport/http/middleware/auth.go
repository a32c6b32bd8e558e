package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/biteright/biteright-api/internal/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

// Identity is the authenticated caller, derived per request from the bearer
// token and carried explicitly in the request context. There is no
// process-global security state.
type Identity struct {
	UserID      string
	Email       string
	AccountType string
}

type tokenVerifier interface {
	Verify(tokenStr string) (string, error)
}

type userResolver interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticate reads the Authorization header, validates the bearer token and
// resolves its subject email against the user store. On success the identity
// is attached to the request context. On any failure (missing header, bad
// signature, expired token, vanished user) the request proceeds
// unauthenticated and the route's own guard decides whether to reject it.
func Authenticate(tokens tokenVerifier, users userResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}
			email, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			u, err := users.GetByEmail(r.Context(), email)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ident := &Identity{UserID: u.UserID, Email: u.Email, AccountType: u.AccountType}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), IdentityKey, ident)))
		})
	}
}

// RequireUser is the route-level guard: it rejects requests that
// Authenticate left anonymous.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "missing or invalid bearer token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(IdentityKey).(*Identity)
	return ident, ok
}
