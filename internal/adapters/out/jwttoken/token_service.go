// Package jwttoken implements ports.TokenService with HS256-signed JWTs.
package jwttoken

import (
	"errors"
	"fmt"
	"time"

	"artisan/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long an issued credential stays valid.
const DefaultTTL = 7 * 24 * time.Hour

var ErrSecretIsRequired = errors.New("token signing secret is required")

// TokenService signs credentials for ports.AdminSubject with a shared secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*TokenService)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *TokenService) { s.ttl = ttl }
}

// WithClock replaces time.Now for both issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

func NewTokenService(secret string, opts ...Option) (*TokenService, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}

	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue returns a signed token with sub=admin, iat=now and exp=now+ttl.
func (s *TokenService) Issue() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   ports.AdminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify accepts only HS256 tokens signed with this service's secret that carry
// an expiry in the future.
func (s *TokenService) Verify(token string) (ports.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ports.TokenClaims{}, ports.ErrTokenExpired
	case err != nil:
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", ports.ErrTokenInvalid, err)
	}

	return ports.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
