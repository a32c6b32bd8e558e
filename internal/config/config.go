package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// The JWT secret and the code/token TTLs are read once at startup and are not
// hot-reloadable; rotating the secret invalidates every outstanding token.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTSecret   string // base64-encoded symmetric signing key
	JWTExpiry   time.Duration
	CodeExpiry  time.Duration // verification code TTL
	FrontendURL string        // base URL embedded in verification/reset links

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users             string
	Profiles          string
	VerificationCodes string
	Uniques           string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:             getEnv("DYNAMO_TABLE_USERS", "users"),
			Profiles:          getEnv("DYNAMO_TABLE_PROFILES", "profiles"),
			VerificationCodes: getEnv("DYNAMO_TABLE_VERIFICATION_CODES", "verification_codes"),
			Uniques:           getEnv("DYNAMO_TABLE_UNIQUES", "uniques"),
		},

		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTExpiry:   time.Duration(getEnvInt("JWT_EXPIRY_MINUTES", 60*24)) * time.Minute,
		CodeExpiry:  time.Duration(getEnvInt("VERIFICATION_CODE_TTL_MINUTES", 60)) * time.Minute,
		FrontendURL: getEnv("FRONTEND_BASE_URL", "http://localhost:80"),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@biteright.app"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
