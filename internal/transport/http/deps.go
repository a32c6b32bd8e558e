package http

import (
	"time"

	"github.com/biteright/biteright-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/biteright/biteright-api/internal/infrastructure/jwt"
	"github.com/biteright/biteright-api/internal/infrastructure/smtp"
	"github.com/biteright/biteright-api/internal/pkg/password"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo             *dynamo.UserRepo
	ProfileRepo          *dynamo.ProfileRepo
	VerificationCodeRepo *dynamo.VerificationCodeRepo
	Mailer               smtp.Notifier
	JWTProvider          *jwtinfra.Provider
	Hasher               *password.Hasher
	CodeTTL              time.Duration
}
