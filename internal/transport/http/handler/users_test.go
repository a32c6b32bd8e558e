package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biteright/biteright-api/internal/domain"
)

type mockUserSvc struct{ mock.Mock }

func (m *mockUserSvc) Me(ctx context.Context, email string) (*domain.User, *domain.Profile, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	p, _ := args.Get(1).(*domain.Profile)
	return u, p, args.Error(2)
}

func TestMe_OK(t *testing.T) {
	svc := &mockUserSvc{}
	svc.On("Me", mock.Anything, "alice@example.com").Return(
		&domain.User{UserID: "u1", Username: "alice", Email: "alice@example.com"},
		&domain.Profile{UserID: "u1", Info: domain.UserInfo{Name: "Alice"}},
		nil,
	)

	h := NewUserHandler(svc)
	req := authedRequest(t, http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env MeEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.User)
	assert.Equal(t, "alice", env.User.Username)
	require.NotNil(t, env.Profile)
	assert.Equal(t, "Alice", env.Profile.Info.Name)
}

func TestMe_NoIdentity(t *testing.T) {
	h := NewUserHandler(&mockUserSvc{})
	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_VanishedUser(t *testing.T) {
	svc := &mockUserSvc{}
	svc.On("Me", mock.Anything, "alice@example.com").Return(nil, nil, domain.ErrNotFound)

	h := NewUserHandler(svc)
	req := authedRequest(t, http.MethodGet, "/v1/users/me", nil)
	rec := httptest.NewRecorder()
	h.Me(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPing(t *testing.T) {
	h := NewHealthHandler()
	r := chi.NewRouter()
	r.Get("/v1/health-check/{action}", h.Ping)

	req := httptest.NewRequest(http.MethodGet, "/v1/health-check/ping", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", decodeEnvelope(t, rec).Message)

	req = httptest.NewRequest(http.MethodGet, "/v1/health-check/status", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
