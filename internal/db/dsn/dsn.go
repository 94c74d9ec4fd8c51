// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
)

// Create builds the Data Source Name for the configured engine.
// SQLite returns the file path, "" means in-memory.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return Postgres(cfg)
	case config.EngineSQLite:
		if cfg.DB.SQLitePath == "" {
			return "file::memory:?cache=shared"
		}

		return cfg.DB.SQLitePath
	default:
		return MySQL(cfg)
	}
}

// MySQL builds a go-sql-driver DSN: user:pass@tcp(host:port)/name?extras.
func MySQL(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// Postgres builds a postgres:// connection URI. Extras is appended as query string.
func Postgres(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.Name,
		RawQuery: cfg.DB.Extras,
	}

	return u.String()
}
