package jwtinfra

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/biteright/biteright-api/internal/config"
	"github.com/biteright/biteright-api/internal/domain"
)

// Issuer is the fixed iss claim stamped into every token.
const Issuer = "biteRightApplication"

// Typed verification failures. All of them wrap domain.ErrUnauthorized so the
// HTTP layer maps them with a single errors.Is check.
var (
	ErrMalformed    = fmt.Errorf("malformed token: %w", domain.ErrUnauthorized)
	ErrBadSignature = fmt.Errorf("invalid token signature: %w", domain.ErrUnauthorized)
	ErrExpired      = fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
)

// Provider signs and verifies HS256 bearer tokens carrying the user's email
// as the subject claim. Verification is a pure function of (token, key,
// clock): tokens are never persisted and expiry is the only invalidation.
type Provider struct {
	key    []byte
	expiry time.Duration
	now    func() time.Time
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	key, err := base64.StdEncoding.DecodeString(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("decode JWT secret: %w", err)
	}
	if len(key) < 32 {
		return nil, errors.New("JWT secret must be at least 32 bytes")
	}
	return &Provider{key: key, expiry: cfg.JWTExpiry, now: time.Now}, nil
}

// Sign issues a compact signed token with claims
// {sub: email, iat: now, exp: now+TTL, iss: Issuer}.
func (p *Provider) Sign(email string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.key)
}

// Verify parses and validates a token string and returns the subject email.
// Failures are reported as ErrMalformed, ErrBadSignature or ErrExpired.
func (p *Provider) Verify(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return p.key, nil
	})
	switch {
	case err == nil && token.Valid && claims.Subject != "":
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "", ErrMalformed
	default:
		// Wrong issuer, missing exp, empty subject and anything else
		// unexpected count as malformed claims.
		return "", ErrMalformed
	}
}
