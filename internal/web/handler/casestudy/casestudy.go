// Package casestudy serves the public portfolio and its admin CRUD routes.
package casestudy

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	casestudyctl "github.com/metropolitan-website/metropolitan-backend/internal/db/controller/casestudy"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// Path is the public route group.
	Path = handler.APIPrefix + "/case-studies"
	// AdminPath is the protected route group.
	AdminPath = handler.AdminPrefix + "/case-studies"

	resource = "Case study"
)

// Request is the create and update body.
type Request struct {
	Title          string `json:"title" validate:"required,max=255" label:"Title"`
	Description    string `json:"description" validate:"required" label:"Description"`
	Image          string `json:"image" validate:"required,max=1024" label:"Image"`
	Division       string `json:"division" validate:"required,max=100" label:"Division"`
	Client         string `json:"client" validate:"max=255" label:"Client"`
	Location       string `json:"location" validate:"max=255" label:"Location"`
	CompletionDate string `json:"completionDate" validate:"max=50" label:"Completion date"`
}

func (r *Request) model() *models.CaseStudy {
	return &models.CaseStudy{
		Title:          r.Title,
		Description:    r.Description,
		Image:          r.Image,
		Division:       r.Division,
		Client:         r.Client,
		Location:       r.Location,
		CompletionDate: r.CompletionDate,
	}
}

// Service is the case study handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *casestudyctl.Service
}

// Init registers the public and admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.svc = casestudyctl.New(db)

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get(handler.IDPath, s.Get)
	})

	admin := app.Group(AdminPath, guard)
	admin.Get(handler.RootPath, s.AdminList)
	admin.Get(handler.IDPath, s.Get)
	admin.Post(handler.RootPath, s.Create)
	admin.Put(handler.IDPath, s.Update)
	admin.Delete(handler.IDPath, s.Delete)

	return nil
}

// List returns a page of case studies, optionally of one division.
func (s *Service) List(c *fiber.Ctx) error {
	p, err := handler.List(c, s.cfg.Pagination.PublicLimit, s.cfg.Pagination.MaxLimit)
	if err != nil {
		return err
	}

	p.FromDate, p.ToDate = nil, nil

	res, err := s.svc.ListWithFilters(c.UserContext(), p.Query, p.Page, p.Limit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}

// AdminList returns a page of case studies filtered by division and creation date.
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

// Get returns one case study.
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

// Create stores a new case study.
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

// Update replaces the mutable fields of a case study.
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

// Delete removes a case study.
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
