package http

import (
	"fmt"
	"strings"

	"artisan/internal/core/ports"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "artisan.claims"

var ErrMissingToken = fmt.Errorf("%w: missing bearer token", ports.ErrUnauthorized)

// BearerAuth rejects the request before any handler runs unless it carries
// "Authorization: Bearer <token>" with a token tokens accepts for the admin.
func BearerAuth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return err
			}
			if claims.Subject != ports.AdminSubject {
				return ports.ErrTokenInvalid
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by BearerAuth.
func ClaimsFromContext(c echo.Context) (ports.TokenClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(ports.TokenClaims)
	return claims, ok
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
