package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/biteright/biteright-api/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Struct validates the given struct using its validate tags.
// Returns a human-readable error string or nil.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

var (
	localPartRe   = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)
	domainLabelRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?$`)
)

// Email enforces the registration email rules: exactly one '@', a non-empty
// local part of at most 64 characters, and a domain with at least one dot
// whose final label is alphabetic and at least two characters.
func Email(email string) error {
	invalid := fmt.Errorf("invalid email: %w", domain.ErrBadRequest)

	at := strings.Count(email, "@")
	if at != 1 {
		return invalid
	}
	local, host, _ := strings.Cut(email, "@")
	if local == "" || len(local) > 64 || !localPartRe.MatchString(local) {
		return invalid
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return invalid
	}
	for _, l := range labels {
		if !domainLabelRe.MatchString(l) {
			return invalid
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 || strings.ContainsAny(tld, "0123456789-") {
		return invalid
	}
	return nil
}

// Username enforces the 3–50 character, non-blank rule.
func Username(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty: %w", domain.ErrBadRequest)
	}
	if len(username) < 3 || len(username) > 50 {
		return fmt.Errorf("username must be between 3 and 50 characters: %w", domain.ErrBadRequest)
	}
	return nil
}

// Password enforces the minimum length rule. Hashes are capped by bcrypt at
// 72 bytes, so overly long inputs are rejected here rather than truncated.
func Password(pw string) error {
	if pw == "" {
		return fmt.Errorf("password cannot be empty: %w", domain.ErrBadRequest)
	}
	if len(pw) < 6 {
		return fmt.Errorf("password must be at least 6 characters long: %w", domain.ErrBadRequest)
	}
	if len(pw) > 72 {
		return fmt.Errorf("password must be at most 72 characters long: %w", domain.ErrBadRequest)
	}
	return nil
}
