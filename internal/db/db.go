// Package db opens the configured relational store and migrates the schema.
package db

import (
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/dsn"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	gormadapter "github.com/metropolitan-website/metropolitan-backend/internal/logger/adapter/gorm"
)

// ErrConfigNil is returned when Open gets no configuration.
var ErrConfigNil = errors.New("config is nil")

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Postgres(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownGormEngine, cfg.DB.GormEngine)
	}
}

// Open connects to the database. Driver errors are translated to gorm errors,
// so unique violations surface as gorm.ErrDuplicatedKey.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormadapter.New(cfg.DevMode),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.GormEngine)
	}

	if cfg.DB.GormEngine == config.EngineSQLite {
		// sqlite serialises writers, one connection avoids "database is locked"
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, errors.Wrap(err, "sqlite handle")
		}

		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database connected")

	return conn, nil
}

// Models lists every table the service owns.
func Models() []any {
	return []any{
		&models.AdminUser{},
		&models.CaseStudy{},
		&models.News{},
		&models.Testimonial{},
		&models.Inquiry{},
		&models.JobApplication{},
	}
}

// Migrate creates or updates the schema of all models.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
