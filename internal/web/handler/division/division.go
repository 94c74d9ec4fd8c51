// Package division lists the business divisions.
package division

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

// Path of the division catalogue.
const Path = handler.APIPrefix + "/divisions"

// Service is the division handler service.
type Service struct {
	handler.Service
}

// Init registers the catalogue route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, _ fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	app.Get(Path, s.List)

	return nil
}

// List returns the division display names.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(models.Divisions())
}
