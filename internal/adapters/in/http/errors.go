package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"artisan/internal/core/application/usecases/commands"
	"artisan/internal/core/ports"
	"artisan/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler writes every error as an Error body. Only 5xx responses are
// logged here; their cause is never sent to the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := errorResponse(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func errorResponse(err error) (int, string) {
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, httpErrorMessage(httpErr)

	case errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized, "Missing bearer token"
	case errors.Is(err, ports.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, commands.ErrInvalidPassword):
		return http.StatusUnauthorized, "Incorrect password"
	case errors.Is(err, ports.ErrUnauthorized):
		return http.StatusUnauthorized, "Invalid token"

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "Order not found"

	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, err.Error()

	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func httpErrorMessage(err *echo.HTTPError) string {
	switch m := err.Message.(type) {
	case string:
		return m
	case nil:
		return http.StatusText(err.Code)
	default:
		return fmt.Sprint(m)
	}
}
