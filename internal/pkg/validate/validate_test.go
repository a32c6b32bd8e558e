package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biteright/biteright-api/internal/domain"
)

func TestEmail_Valid(t *testing.T) {
	for _, e := range []string{
		"alice@example.com",
		"a@b.co",
		"first.last@sub.example.org",
		"user_name-1@my-host.example.com",
	} {
		assert.NoError(t, Email(e), e)
	}
}

func TestEmail_Invalid(t *testing.T) {
	for _, e := range []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"a@b@c.com",
		"@example.com",
		"alice@",
		"alice@nodot",
		"alice@example.c",       // tld too short
		"alice@example.123",     // numeric tld
		".leadingdot@example.com",
		"trailingdot.@example.com",
		"sp ace@example.com",
		strings.Repeat("x", 65) + "@example.com", // local part over 64
	} {
		err := Email(e)
		require.Error(t, err, e)
		assert.True(t, errors.Is(err, domain.ErrBadRequest), e)
	}
}

func TestEmail_LocalPartBoundary(t *testing.T) {
	assert.NoError(t, Email(strings.Repeat("x", 64)+"@example.com"))
	assert.Error(t, Email(strings.Repeat("x", 65)+"@example.com"))
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("bob"))
	assert.NoError(t, Username(strings.Repeat("u", 50)))

	for _, u := range []string{"", "   ", "ab", strings.Repeat("u", 51)} {
		err := Username(u)
		require.Error(t, err, u)
		assert.True(t, errors.Is(err, domain.ErrBadRequest), u)
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("123456"))
	assert.NoError(t, Password(strings.Repeat("p", 72)))

	for _, p := range []string{"", "12345", strings.Repeat("p", 73)} {
		err := Password(p)
		require.Error(t, err, p)
		assert.True(t, errors.Is(err, domain.ErrBadRequest), p)
	}
}

func TestStruct(t *testing.T) {
	type payload struct {
		Email string `validate:"required"`
	}
	assert.NoError(t, Struct(&payload{Email: "x"}))
	assert.Error(t, Struct(&payload{}))
}
