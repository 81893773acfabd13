package http

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"artisan/api"
	"artisan/internal/core/ports"
	"artisan/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type RouterConfig struct {
	// BasePath prefixes every API route, e.g. "/api". Empty mounts them at the root.
	BasePath    string
	CORSOrigins []string
	Tokens      ports.TokenService
	UseCases    UseCases
	Logger      *slog.Logger

	// HealthCheck backs GET /health; nil reports healthy unconditionally.
	HealthCheck func(ctx context.Context) error
}

// NewRouter builds the echo instance serving the API, /health, /metrics and
// the Swagger UI at /swagger/.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	basePath := normalizeBasePath(cfg.BasePath)

	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	doc.Servers = nil
	if basePath != "" {
		doc.Servers = openapi3.Servers{{URL: basePath}}
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	// Credentials are never allowed together with a wildcard origin.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: !slices.Contains(cfg.CORSOrigins, "*"),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderOrigin},
	}))

	e.GET("/health", healthHandler(cfg.HealthCheck))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", SwaggerHandler())

	RegisterHandlers(e, NewServer(cfg.UseCases), basePath, RouteMiddlewares{
		Public:    []echo.MiddlewareFunc{validator},
		Protected: []echo.MiddlewareFunc{BearerAuth(cfg.Tokens)},
	})

	return e, nil
}

func healthHandler(check func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if check != nil {
			if err := check(c.Request().Context()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "Unhealthy").SetInternal(err)
			}
		}
		return c.String(http.StatusOK, "Healthy")
	}
}

// normalizeBasePath turns "api", "/api/" and "/api" into "/api", and "/" into "".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
