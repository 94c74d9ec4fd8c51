// Package careers accepts job applications and lists them to admins.
package careers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/controller/jobapplication"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// ApplyPath is the public submission route.
	ApplyPath = handler.APIPrefix + "/careers/apply"
	// AdminPath is the protected route group.
	AdminPath = handler.AdminPrefix + "/job-applications"

	resource = "Job application"
)

// Request is the application form body.
type Request struct {
	Name         string `json:"name" validate:"required,max=255" label:"Name"`
	Email        string `json:"email" validate:"required,email,max=255" label:"Email"`
	Position     string `json:"position" validate:"required,max=255" label:"Position"`
	PortfolioURL string `json:"portfolioUrl" validate:"omitempty,url,max=1024" label:"Portfolio URL"`
	CoverLetter  string `json:"coverLetter" label:"Cover letter"`
}

// Service is the careers handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *jobapplication.Service
}

// Init registers the apply route and the admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.svc = jobapplication.New(db)

	app.Post(ApplyPath, s.Apply)

	admin := app.Group(AdminPath, guard)
	admin.Get(handler.RootPath, s.List)
	admin.Get(handler.IDPath, s.Get)
	admin.Delete(handler.IDPath, s.Delete)

	return nil
}

// Apply stores a job application.
func (s *Service) Apply(c *fiber.Ctx) error {
	req := new(Request)
	if err := handler.Bind(c, req); err != nil {
		return err
	}

	rec, err := s.svc.Create(c.UserContext(), &models.JobApplication{
		Name:         req.Name,
		Email:        req.Email,
		Position:     req.Position,
		PortfolioURL: req.PortfolioURL,
		CoverLetter:  req.CoverLetter,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Uint64("application_id", rec.ID).Str("position", rec.Position).Msg("job application received")

	return handler.Created(c, rec)
}

// List returns a page of applications filtered by creation date.
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

// Get returns one application.
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

// Delete removes an application.
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
