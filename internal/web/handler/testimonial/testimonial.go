// Package testimonial serves customer testimonials and their admin CRUD routes.
package testimonial

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	testimonialctl "github.com/metropolitan-website/metropolitan-backend/internal/db/controller/testimonial"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// Path is the public route group.
	Path = handler.APIPrefix + "/testimonials"
	// AdminPath is the protected route group.
	AdminPath = handler.AdminPrefix + "/testimonials"

	resource = "Testimonial"
)

// Request is the create and update body.
type Request struct {
	Content  string `json:"content" validate:"required" label:"Content"`
	Author   string `json:"author" validate:"required,max=255" label:"Author"`
	Role     string `json:"role" validate:"required,max=255" label:"Role"`
	Division string `json:"division" validate:"required,max=100" label:"Division"`
}

func (r *Request) model() *models.Testimonial {
	return &models.Testimonial{
		Content:  r.Content,
		Author:   r.Author,
		Role:     r.Role,
		Division: r.Division,
	}
}

// Service is the testimonial handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *testimonialctl.Service
}

// Init registers the public and admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.svc = testimonialctl.New(db)

	app.Get(Path, s.List)

	admin := app.Group(AdminPath, guard)
	admin.Get(handler.RootPath, s.AdminList)
	admin.Get(handler.IDPath, s.Get)
	admin.Post(handler.RootPath, s.Create)
	admin.Put(handler.IDPath, s.Update)
	admin.Delete(handler.IDPath, s.Delete)

	return nil
}

// List pages only when both page and limit are given. Otherwise it returns the
// full list of the division, newest first, as a plain array.
func (s *Service) List(c *fiber.Ctx) error {
	p, err := handler.List(c, s.cfg.Pagination.PublicLimit, s.cfg.Pagination.MaxLimit)
	if err != nil {
		return err
	}

	if !handler.Has(c, "page") || !handler.Has(c, "limit") {
		rows, err := s.svc.ListByDivision(c.UserContext(), p.Division)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return c.JSON(rows)
	}

	p.FromDate, p.ToDate = nil, nil

	res, err := s.svc.ListWithFilters(c.UserContext(), p.Query, p.Page, p.Limit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}

// AdminList returns a page of testimonials filtered by division and creation date.
func (s *Service) AdminList(c *fiber.Ctx) error {
	p, err := handler.List(c, s.cfg.Pagination.AdminLimit, s.cfg.Pagination.MaxLimit)
	if err != nil {
		return err
	}

	res, err := s.svc.ListWithFilters(c.UserContext(), p.Query, p.Page, p.Limit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}

// Get returns one testimonial.
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

// Create stores a new testimonial.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(Request)
	if err := handler.Bind(c, req); err != nil {
		return err
	}

	rec, err := s.svc.Create(c.UserContext(), req.model())
	if err != nil {
		return err //nolint:wrapcheck
	}

	return handler.Created(c, rec)
}

// Update replaces the mutable fields of a testimonial.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ID(c)
	if err != nil {
		return err
	}

	req := new(Request)
	if err = handler.Bind(c, req); err != nil {
		return err
	}

	rec, err := s.svc.Update(c.UserContext(), id, req.model())
	if err != nil {
		return handler.NotFound(err, resource, id)
	}

	return c.JSON(rec)
}

// Delete removes a testimonial.
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
