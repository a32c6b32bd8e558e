package user

import (
	"context"
	"fmt"

	"github.com/biteright/biteright-api/internal/domain"
)

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
}

// Service exposes the authenticated user's own records.
type Service interface {
	Me(ctx context.Context, email string) (*domain.User, *domain.Profile, error)
}

type service struct {
	users    userStore
	profiles profileStore
}

func NewService(users userStore, profiles profileStore) Service {
	return &service{users: users, profiles: profiles}
}

func (s *service) Me(ctx context.Context, email string) (*domain.User, *domain.Profile, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	p, err := s.profiles.Get(ctx, u.UserID)
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}
