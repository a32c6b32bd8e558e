package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/biteright/biteright-api/internal/application/verification"
	"github.com/biteright/biteright-api/internal/domain"
	"github.com/biteright/biteright-api/internal/pkg/code"
	"github.com/biteright/biteright-api/internal/pkg/id"
	"github.com/biteright/biteright-api/internal/pkg/validate"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldIsVerified            = "is_verified"
	fieldPasswordHash          = "password_hash"
	fieldForgottenPasswordCode = "forgotten_password_code"
)

type Service interface {
	Register(ctx context.Context, req domain.RegistrationRequest) (*domain.User, error)
	CheckAvailability(ctx context.Context, username, email string) (*domain.AvailabilityResponse, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	VerifyRegistration(ctx context.Context, email, submittedCode string) error
	ChangeUsername(ctx context.Context, email, newUsername string) error
	ChangeEmail(ctx context.Context, email, newEmail string) (*domain.User, error)
	ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error
	ManageForgottenPassword(ctx context.Context, email string) error
	VerifyForgottenPasswordCode(ctx context.Context, email, submittedCode string) error
	ResetForgottenPassword(ctx context.Context, email, submittedCode, newPassword string) error
}

type userStore interface {
	CreateWithProfile(ctx context.Context, u *domain.User, p *domain.Profile) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	UpdateUsername(ctx context.Context, userID, oldUsername, newUsername string) error
	UpdateEmail(ctx context.Context, userID, oldEmail, newEmail string) error
}

type codeManager interface {
	Issue(ctx context.Context, userID string) (string, error)
	Verify(ctx context.Context, userID, submitted string) (verification.Result, string, error)
}

type passwordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

type notifier interface {
	SendVerificationEmail(username, email, code string) error
	SendPasswordResetEmail(username, email, code string) error
}

type service struct {
	users  userStore
	codes  codeManager
	hasher passwordHasher
	mailer notifier
}

type ServiceDeps struct {
	UserRepo userStore
	Codes    codeManager
	Hasher   passwordHasher
	Mailer   notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:  deps.UserRepo,
		codes:  deps.Codes,
		hasher: deps.Hasher,
		mailer: deps.Mailer,
	}
}

// Register creates the user together with its profile record (goal, personal
// info, preferences, daily limits) in one storage transaction, then issues a
// verification code and emails it. The account starts unverified.
func (s *service) Register(ctx context.Context, req domain.RegistrationRequest) (*domain.User, error) {
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if err := validate.Username(req.Username); err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}
	if err := validateOnboarding(&req); err != nil {
		return nil, err
	}

	// Friendly pre-checks; the transactional uniqueness claims in the store
	// remain the authority under concurrent registration.
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username %s already taken: %w", req.Username, domain.ErrConflict)
	}
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s already taken: %w", req.Email, domain.ErrConflict)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	forgottenCode, err := code.New()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:                id.New(),
		Username:              req.Username,
		Email:                 req.Email,
		PasswordHash:          hash,
		AccountType:           domain.AccountTypeStandard,
		IsVerified:            false,
		ForgottenPasswordCode: forgottenCode,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.users.CreateWithProfile(ctx, u, buildProfile(u.UserID, &req, now)); err != nil {
		return nil, err
	}

	verificationCode, err := s.codes.Issue(ctx, u.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendVerificationEmail(u.Username, u.Email, verificationCode); err != nil {
		return nil, fmt.Errorf("send verification email: %w", err)
	}
	slog.Info("user registered", "user_id", u.UserID)
	return u, nil
}

func (s *service) CheckAvailability(ctx context.Context, username, email string) (*domain.AvailabilityResponse, error) {
	resp := &domain.AvailabilityResponse{UsernameAvailable: true, EmailAvailable: true}
	var msgs []string

	if strings.TrimSpace(username) != "" {
		if _, err := s.users.GetByUsername(ctx, username); err == nil {
			resp.UsernameAvailable = false
			msgs = append(msgs, "Username already taken.")
		}
	}
	if strings.TrimSpace(email) != "" {
		if _, err := s.users.GetByEmail(ctx, email); err == nil {
			resp.EmailAvailable = false
			msgs = append(msgs, "Email already registered.")
		}
	}
	if resp.UsernameAvailable && resp.EmailAvailable {
		resp.Message = "Username and email are available."
	} else {
		resp.Message = strings.Join(msgs, " ")
	}
	return resp, nil
}

// Login authenticates by email and password. The password check runs before
// the verification gate so a wrong password never discloses verification
// status. An unverified login with correct credentials re-issues and re-sends
// a fresh code as a side effect, then fails with ErrNotVerified.
func (s *service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return nil, fmt.Errorf("invalid password: %w", domain.ErrUnauthorized)
	}
	if !u.IsVerified {
		fresh, err := s.codes.Issue(ctx, u.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.mailer.SendVerificationEmail(u.Username, u.Email, fresh); err != nil {
			return nil, fmt.Errorf("resend verification email: %w", err)
		}
		slog.Info("unverified login, verification email resent", "user_id", u.UserID)
		return nil, fmt.Errorf("account is not verified, a new verification email has been sent: %w", domain.ErrNotVerified)
	}
	return u, nil
}

// VerifyRegistration flips is_verified on a correct, unexpired code. The
// transition is one-way: a verified user gets ErrAlreadyVerified. An expired
// submission triggers reissue-and-resend before failing.
func (s *service) VerifyRegistration(ctx context.Context, email, submittedCode string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if u.IsVerified {
		return fmt.Errorf("user with email %s: %w", email, domain.ErrAlreadyVerified)
	}

	result, fresh, err := s.codes.Verify(ctx, u.UserID, submittedCode)
	if err != nil {
		return err
	}
	switch result {
	case verification.ResultNotFound:
		return fmt.Errorf("verification code not found: %w", domain.ErrNotFound)
	case verification.ResultMismatch:
		return fmt.Errorf("invalid verification code: %w", domain.ErrUnauthorized)
	case verification.ResultExpired:
		if err := s.mailer.SendVerificationEmail(u.Username, u.Email, fresh); err != nil {
			return fmt.Errorf("resend verification email: %w", err)
		}
		return fmt.Errorf("a new verification email has been sent: %w", domain.ErrCodeExpired)
	}

	if err := s.users.Update(ctx, u.UserID, map[string]interface{}{fieldIsVerified: true}); err != nil {
		return err
	}
	slog.Info("user verified", "user_id", u.UserID)
	return nil
}

func (s *service) ChangeUsername(ctx context.Context, email, newUsername string) error {
	if err := validate.Username(newUsername); err != nil {
		return err
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if u.Username == newUsername {
		return nil
	}
	if _, err := s.users.GetByUsername(ctx, newUsername); err == nil {
		return fmt.Errorf("username %s already taken: %w", newUsername, domain.ErrConflict)
	}
	return s.users.UpdateUsername(ctx, u.UserID, u.Username, newUsername)
}

// ChangeEmail rewrites the identity the token subject is resolved against.
// The account's verification state is kept as-is; callers should issue a new
// token for the new address. Returns the updated user.
func (s *service) ChangeEmail(ctx context.Context, email, newEmail string) (*domain.User, error) {
	if err := validate.Email(newEmail); err != nil {
		return nil, err
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if u.Email == newEmail {
		return u, nil
	}
	if _, err := s.users.GetByEmail(ctx, newEmail); err == nil {
		return nil, fmt.Errorf("email %s already taken: %w", newEmail, domain.ErrConflict)
	}
	if err := s.users.UpdateEmail(ctx, u.UserID, u.Email, newEmail); err != nil {
		return nil, err
	}
	u.Email = newEmail
	slog.Info("email changed", "user_id", u.UserID)
	return u, nil
}

func (s *service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if !s.hasher.Verify(oldPassword, u.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", domain.ErrUnauthorized)
	}
	if err := validate.Password(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.Update(ctx, u.UserID, map[string]interface{}{fieldPasswordHash: hash})
}

// ManageForgottenPassword emails the standing reset code. The response is
// uniform whether or not the account exists, so the endpoint cannot be used
// to probe for registered addresses.
func (s *service) ManageForgottenPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Info("forgotten password requested for unknown email")
			return nil
		}
		return err
	}
	return s.mailer.SendPasswordResetEmail(u.Username, u.Email, u.ForgottenPasswordCode)
}

func (s *service) VerifyForgottenPasswordCode(ctx context.Context, email, submittedCode string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if submittedCode != u.ForgottenPasswordCode {
		return fmt.Errorf("incorrect reset code provided: %w", domain.ErrUnauthorized)
	}
	return nil
}

// ResetForgottenPassword verifies and consumes the reset code in one
// operation: the new password hash and a regenerated code are written in a
// single update, so the old code cannot be replayed between steps.
func (s *service) ResetForgottenPassword(ctx context.Context, email, submittedCode, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user with email %s not found: %w", email, domain.ErrNotFound)
	}
	if submittedCode != u.ForgottenPasswordCode {
		return fmt.Errorf("incorrect reset code provided: %w", domain.ErrUnauthorized)
	}
	if err := validate.Password(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	rotated, err := code.New()
	if err != nil {
		return err
	}
	if err := s.users.Update(ctx, u.UserID, map[string]interface{}{
		fieldPasswordHash:          hash,
		fieldForgottenPasswordCode: rotated,
	}); err != nil {
		return err
	}
	slog.Info("password reset completed", "user_id", u.UserID)
	return nil
}
