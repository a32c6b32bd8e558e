package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biteright/biteright-api/internal/domain"
)

type mockTokenVerifier struct{ mock.Mock }

func (m *mockTokenVerifier) Verify(tokenStr string) (string, error) {
	args := m.Called(tokenStr)
	return args.String(0), args.Error(1)
}

type mockUserResolver struct{ mock.Mock }

func (m *mockUserResolver) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// run sends a request through Authenticate and captures the identity the
// inner handler observed.
func run(t *testing.T, tokens *mockTokenVerifier, users *mockUserResolver, authHeader string) (*Identity, bool, *httptest.ResponseRecorder) {
	t.Helper()
	var ident *Identity
	var ok bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	Authenticate(tokens, users)(inner).ServeHTTP(rec, req)
	return ident, ok, rec
}

func TestAuthenticate_NoHeader_ProceedsAnonymous(t *testing.T) {
	ident, ok, rec := run(t, &mockTokenVerifier{}, &mockUserResolver{}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
	assert.Nil(t, ident)
}

func TestAuthenticate_NotBearer_ProceedsAnonymous(t *testing.T) {
	ident, ok, rec := run(t, &mockTokenVerifier{}, &mockUserResolver{}, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
	assert.Nil(t, ident)
}

func TestAuthenticate_BadToken_ProceedsAnonymous(t *testing.T) {
	tokens := &mockTokenVerifier{}
	tokens.On("Verify", "bad-token").Return("", domain.ErrUnauthorized)

	ident, ok, rec := run(t, tokens, &mockUserResolver{}, "Bearer bad-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
	assert.Nil(t, ident)
}

func TestAuthenticate_VanishedUser_ProceedsAnonymous(t *testing.T) {
	tokens := &mockTokenVerifier{}
	tokens.On("Verify", "good-token").Return("gone@example.com", nil)
	users := &mockUserResolver{}
	users.On("GetByEmail", mock.Anything, "gone@example.com").Return(nil, domain.ErrNotFound)

	ident, ok, rec := run(t, tokens, users, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
	assert.Nil(t, ident)
}

func TestAuthenticate_ValidToken_AttachesIdentity(t *testing.T) {
	tokens := &mockTokenVerifier{}
	tokens.On("Verify", "good-token").Return("alice@example.com", nil)
	users := &mockUserResolver{}
	users.On("GetByEmail", mock.Anything, "alice@example.com").Return(&domain.User{
		UserID: "u1", Email: "alice@example.com", AccountType: domain.AccountTypeStandard,
	}, nil)

	ident, ok, rec := run(t, tokens, users, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, "u1", ident.UserID)
	assert.Equal(t, "alice@example.com", ident.Email)
	assert.Equal(t, domain.AccountTypeStandard, ident.AccountType)
}

func TestRequireUser_RejectsAnonymous(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for anonymous requests")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RequireUser(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing or invalid bearer token")
}

func TestRequireUser_PassesAuthenticated(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), IdentityKey, &Identity{UserID: "u1"})
	rec := httptest.NewRecorder()
	RequireUser(inner).ServeHTTP(rec, req.WithContext(ctx))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
