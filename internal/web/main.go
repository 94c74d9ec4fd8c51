// Package web wires the fiber application: middlewares, error handling and routes.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/auth"
	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	fiberlogger "github.com/metropolitan-website/metropolitan-backend/internal/logger/adapter/fiber"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/adminauth"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/careers"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/casestudy"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/division"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/inquiry"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/news"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler/testimonial"
)

// CheckAlivePath answers 200 while the service accepts traffic and 503 while it drains.
const CheckAlivePath = "/checkalive"

var (
	// ErrConfigNil is returned by New without configuration.
	ErrConfigNil = errors.New("config cannot be nil")
	// ErrDBNil is returned by New without database.
	ErrDBNil = errors.New("db cannot be nil")
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	storage      fiber.Storage
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan error, 1)

	go func() {
		err := s.App.Listen(addr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("fiber listen error")
		}

		doneFiber <- err
	}()

	return <-doneFiber
}

// Alive reports whether /checkalive currently answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains the service: /checkalive fails for ShutDownTime seconds so a
// load balancer can remove the instance, then the server stops.
func (s *Service) Shutdown() {
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}

	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			log.Error().Err(err).Msg("rate limit storage close")
		}
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates the web service with every route registered.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if db == nil {
		return nil, ErrDBNil
	}

	issuer, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			ReadTimeout:    cfg.Webserver.ReadTimeout,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			ErrorHandler:   ErrorHandler,
		},
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	service.storage = limiterStorage(cfg)

	app.Use(countRequests)

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:       cfg.Log,
		SkipURIs:     []string{CheckAlivePath, MetricsPath},
		PrincipalKey: auth.LocalsEmail,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Webserver.CORSOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	authService := auth.NewService(db, issuer)
	guard := auth.Middleware(issuer, authService)

	handlers := []handler.Service{
		&casestudy.Service{},
		&news.Service{},
		&testimonial.Service{},
		&inquiry.Service{},
		&careers.Service{},
		&division.Service{},
		&adminauth.Service{AuthService: authService, Limiter: authLimiter(cfg, service.storage)},
	}

	for _, h := range handlers {
		if err = h.Init(app, cfg, db, guard); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	return service, nil
}
