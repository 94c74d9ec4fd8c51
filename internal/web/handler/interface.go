// Package handler holds what the route handlers share: the Service contract,
// request binding and response bodies.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
)

// Service is the interface for a web handler service.
// guard protects the admin routes a handler registers.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error
}
