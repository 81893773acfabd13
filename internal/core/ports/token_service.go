package ports

import (
	"errors"
	"fmt"
	"time"
)

// AdminSubject is the only subject ever issued: the system has one administrator.
const AdminSubject = "admin"

var (
	// ErrUnauthorized covers a wrong password and any unusable bearer credential.
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrUnauthorized)
	ErrTokenInvalid = fmt.Errorf("%w: token invalid", ErrUnauthorized)
)

// TokenClaims is what a verified credential proves about its bearer.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService issues and verifies self-contained session credentials.
// There is no server-side session list and no revocation.
type TokenService interface {
	// Issue signs a credential for AdminSubject.
	Issue() (string, error)

	// Verify checks signature and expiry. It fails with ErrTokenExpired or
	// ErrTokenInvalid, both of which wrap ErrUnauthorized.
	Verify(token string) (TokenClaims, error)
}
