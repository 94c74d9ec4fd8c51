package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	mysqlstorage "github.com/gofiber/storage/mysql/v2"
	pgstorage "github.com/gofiber/storage/postgres/v3"
	"github.com/rs/zerolog/log"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/dsn"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const rateLimitTable = "rate_limits"

// limiterStorage shares the limiter counters through the database on mysql and postgres.
// sqlite runs single instance, there the limiter keeps its counters in memory.
func limiterStorage(cfg *config.Config) fiber.Storage {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysqlstorage.New(mysqlstorage.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         rateLimitTable,
			GCInterval:    10 * time.Second, //nolint:mnd
		})
	case config.EnginePostgres:
		return pgstorage.New(pgstorage.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         rateLimitTable,
			GCInterval:    10 * time.Second, //nolint:mnd
		})
	default:
		return nil
	}
}

// authLimiter throttles the login and register endpoints per client IP.
// A LoginRateLimit of zero disables it.
func authLimiter(cfg *config.Config, storage fiber.Storage) fiber.Handler {
	if cfg.Webserver.LoginRateLimit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	window := cfg.Webserver.LoginRateWindow
	if window <= 0 {
		window = time.Minute
	}

	log.Debug().Int("max", cfg.Webserver.LoginRateLimit).Dur("window", window).Msg("auth rate limiter enabled")

	return limiter.New(limiter.Config{
		Max:        cfg.Webserver.LoginRateLimit,
		Expiration: window,
		Storage:    storage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(handler.ErrorResponse{
				Message: "Too many requests, try again later",
				Code:    "RATE_LIMITED",
			})
		},
	})
}
