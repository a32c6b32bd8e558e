package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/biteright/biteright-api/internal/domain"
	"github.com/biteright/biteright-api/internal/pkg/code"
)

// Result classifies a verification attempt.
type Result int

const (
	ResultVerified Result = iota
	ResultExpired
	ResultMismatch
	ResultNotFound
)

// purgeGrace keeps an expired row readable long enough for the reissue path
// before the store's TTL reaper removes it.
const purgeGrace = 24 * time.Hour

type codeStore interface {
	Put(ctx context.Context, v *domain.VerificationCode) error
	Get(ctx context.Context, userID string) (*domain.VerificationCode, error)
}

// Manager owns the per-user one-time code lifecycle: generate, store,
// validate, expire, regenerate. Each user has at most one live code; issuing
// replaces whatever was there before.
type Manager struct {
	store codeStore
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(store codeStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl, now: time.Now}
}

// Issue generates a fresh 8-digit code for the user, persists it
// (create-or-replace) and returns the plaintext for delivery.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	c, err := code.New()
	if err != nil {
		return "", err
	}
	expiresAt := m.now().Add(m.ttl)
	v := &domain.VerificationCode{
		UserID:    userID,
		Code:      c,
		ExpiresAt: expiresAt.Unix(),
		PurgeAt:   expiresAt.Add(purgeGrace).Unix(),
	}
	if err := m.store.Put(ctx, v); err != nil {
		return "", fmt.Errorf("store verification code: %w", err)
	}
	return c, nil
}

// Verify checks the submitted code against the user's stored one.
//
// An expired code is never accepted; instead a replacement is issued and
// returned so the caller can resend it. Mismatch is only reported for an
// unexpired code, and the comparison is exact string equality.
func (m *Manager) Verify(ctx context.Context, userID, submitted string) (Result, string, error) {
	v, err := m.store.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return ResultNotFound, "", nil
	}
	if err != nil {
		return ResultNotFound, "", err
	}
	if m.now().Unix() >= v.ExpiresAt {
		fresh, err := m.Issue(ctx, userID)
		if err != nil {
			return ResultExpired, "", err
		}
		return ResultExpired, fresh, nil
	}
	if v.Code != submitted {
		return ResultMismatch, "", nil
	}
	return ResultVerified, "", nil
}
