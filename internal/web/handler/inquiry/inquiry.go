// Package inquiry accepts contact form submissions and lists them to admins.
package inquiry

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	inquiryctl "github.com/metropolitan-website/metropolitan-backend/internal/db/controller/inquiry"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// Path is the public submission route.
	Path = handler.APIPrefix + "/inquiries"
	// AdminPath is the protected route group.
	AdminPath = handler.AdminPrefix + "/inquiries"

	resource = "Inquiry"
)

// Request is the contact form body.
type Request struct {
	Name     string `json:"name" validate:"required,max=255" label:"Name"`
	Email    string `json:"email" validate:"required,email,max=255" label:"Email"`
	Phone    string `json:"phone" validate:"max=50" label:"Phone"`
	Subject  string `json:"subject" validate:"max=255" label:"Subject"`
	Message  string `json:"message" validate:"required" label:"Message"`
	Division string `json:"division" validate:"max=100" label:"Division"`
}

// Service is the inquiry handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *inquiryctl.Service
}

// Init registers the submission route and the admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.svc = inquiryctl.New(db)

	app.Post(Path, s.Create)

	admin := app.Group(AdminPath, guard)
	admin.Get(handler.RootPath, s.List)
	admin.Get(handler.IDPath, s.Get)
	admin.Delete(handler.IDPath, s.Delete)

	return nil
}

// Create stores a contact form submission.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(Request)
	if err := handler.Bind(c, req); err != nil {
		return err
	}

	rec, err := s.svc.Create(c.UserContext(), &models.Inquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Message:  req.Message,
		Division: req.Division,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Uint64("inquiry_id", rec.ID).Str("division", rec.Division).Msg("inquiry received")

	return handler.Created(c, rec)
}

// List returns a page of inquiries filtered by division and creation date.
func (s *Service) List(c *fiber.Ctx) error {
	p, err := handler.List(c, s.cfg.Pagination.AdminLimit, s.cfg.Pagination.MaxLimit)
	if err != nil {
		return err
	}

	res, err := s.svc.List(c.UserContext(), p.Query, p.Page, p.Limit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}

// Get returns one inquiry.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	rec, err := s.svc.Get(c.UserContext(), id)
	if err != nil {
		return handler.NotFound(err, resource, id)
	}

	return c.JSON(rec)
}

// Delete removes an inquiry.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	if err = s.svc.Delete(c.UserContext(), id); err != nil {
		return handler.NotFound(err, resource, id)
	}

	return handler.Deleted(c, resource, id)
}
