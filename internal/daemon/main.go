// Package daemon assembles database and web service into the running backend.
package daemon

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/db"
	"github.com/metropolitan-website/metropolitan-backend/internal/web"
)

// ErrConfigNil is returned by New without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start serves HTTP until SIGINT or SIGTERM completed a graceful shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr) //nolint:wrapcheck
}

// New opens and migrates the database, seeds it when configured and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = db.Migrate(conn); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if cfg.DB.Seed {
		if err = Seed(context.Background(), conn); err != nil {
			return nil, errors.Wrap(err, "failed to seed database")
		}
	}

	webService, err := web.New(cfg, conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{cfg: cfg, webService: webService}, nil
}
