package jwttoken_test

import (
	"strings"
	"testing"
	"time"

	"artisan/internal/adapters/out/jwttoken"
	"artisan/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newService(t *testing.T, c *clock) *jwttoken.TokenService {
	t.Helper()
	s, err := jwttoken.NewTokenService(secret, jwttoken.WithClock(c.Now))
	require.NoError(t, err)
	return s
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	s, err := jwttoken.NewTokenService("")

	assert.Nil(t, s)
	require.ErrorIs(t, err, jwttoken.ErrSecretIsRequired)
}

func TestTokenService_IssueThenVerify(t *testing.T) {
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := newService(t, c)

	token, err := s.Issue()
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := s.Verify(token)

	require.NoError(t, err)
	assert.Equal(t, ports.AdminSubject, claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(c.now.Add(7*24*time.Hour)))
}

func TestTokenService_Verify_Expired(t *testing.T) {
	c := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := newService(t, c)
	token, err := s.Issue()
	require.NoError(t, err)

	t.Run("still valid just before expiry", func(t *testing.T) {
		c.now = c.now.Add(jwttoken.DefaultTTL - time.Minute)

		_, err := s.Verify(token)

		require.NoError(t, err)
	})

	t.Run("expired after seven days", func(t *testing.T) {
		c.now = c.now.Add(2 * time.Minute)

		_, err := s.Verify(token)

		require.ErrorIs(t, err, ports.ErrTokenExpired)
		require.ErrorIs(t, err, ports.ErrUnauthorized)
		assert.NotErrorIs(t, err, ports.ErrTokenInvalid)
	})
}

func TestTokenService_Verify_Invalid(t *testing.T) {
	c := &clock{now: time.Now()}
	s := newService(t, c)
	token, err := s.Issue()
	require.NoError(t, err)

	other, err := jwttoken.NewTokenService("another-secret", jwttoken.WithClock(c.Now))
	require.NoError(t, err)
	foreign, err := other.Issue()
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(c.now.Add(time.Hour)),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(c.now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	testCases := map[string]string{
		"empty":                "",
		"garbage":              "not-a-token",
		"wrong secret":         foreign,
		"tampered payload":     tampered,
		"missing expiry":       noExpiry,
		"unexpected algorithm": hs512,
		"alg none":             unsigned,
	}

	for name, candidate := range testCases {
		t.Run(name, func(t *testing.T) {
			claims, err := s.Verify(candidate)

			require.ErrorIs(t, err, ports.ErrTokenInvalid)
			require.ErrorIs(t, err, ports.ErrUnauthorized)
			assert.Empty(t, claims.Subject)
		})
	}
}

func TestTokenService_WithTTL(t *testing.T) {
	c := &clock{now: time.Now()}
	s, err := jwttoken.NewTokenService(secret, jwttoken.WithClock(c.Now), jwttoken.WithTTL(time.Hour))
	require.NoError(t, err)

	token, err := s.Issue()
	require.NoError(t, err)

	c.now = c.now.Add(2 * time.Hour)
	_, err = s.Verify(token)

	require.ErrorIs(t, err, ports.ErrTokenExpired)
}
