package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"artisan/internal/jobs"
	"artisan/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPPort      = "8000"
	DefaultJWTSecret     = "artisan-orders-secret-key-2024"
	DefaultAdminPassword = "admin123"
	DefaultCORSOrigins   = "*"
)

type Config struct {
	HTTPPort      string
	DatabaseURL   string
	DBName        string
	JWTSecret     string
	AdminPassword string
	CORSOrigins   []string
	APIBasePath   string
	StatsSchedule string
}

// DSN is DatabaseURL with DBName applied as the database to connect to.
func (c Config) DSN() (string, error) {
	return withDatabaseName(c.DatabaseURL, c.DBName)
}

// LoadConfig reads the process environment, after loading .env from the
// working directory if there is one. Variables already set in the
// environment win over .env.
func LoadConfig(logger *slog.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	databaseURL := env("DATABASE_URL", "")
	if databaseURL == "" {
		databaseURL = env("MONGO_URL", "")
	}

	cfg := Config{
		HTTPPort:      env("HTTP_PORT", DefaultHTTPPort),
		DatabaseURL:   databaseURL,
		DBName:        env("DB_NAME", ""),
		JWTSecret:     env("JWT_SECRET", DefaultJWTSecret),
		AdminPassword: env("ADMIN_PASSWORD", DefaultAdminPassword),
		CORSOrigins:   splitList(env("CORS_ORIGINS", DefaultCORSOrigins)),
		APIBasePath:   env("API_BASE_PATH", ""),
		StatsSchedule: env("STATS_SCHEDULE", jobs.DefaultOrderStatsSchedule),
	}

	if err := errors.Join(
		required("DATABASE_URL", cfg.DatabaseURL),
		required("DB_NAME", cfg.DBName),
	); err != nil {
		return Config{}, err
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{DefaultCORSOrigins}
	}

	if cfg.JWTSecret == DefaultJWTSecret {
		logger.Warn("JWT_SECRET is not set, using the built-in default; tokens can be forged by anyone who knows it")
	}
	if cfg.AdminPassword == DefaultAdminPassword {
		logger.Warn("ADMIN_PASSWORD is not set, using the built-in default")
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// withDatabaseName sets the database of a postgres:// URL or of a key=value DSN.
func withDatabaseName(dsn, name string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", errs.NewValueIsInvalidErrorWithCause("DATABASE_URL", err)
		}
		u.Path = "/" + name
		u.RawPath = ""
		return u.String(), nil
	}

	fields := strings.Fields(dsn)
	kept := fields[:0]
	for _, f := range fields {
		if !strings.HasPrefix(f, "dbname=") {
			kept = append(kept, f)
		}
	}
	return strings.Join(append(kept, "dbname="+name), " "), nil
}
