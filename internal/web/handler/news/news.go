// Package news serves the news articles and their admin CRUD routes.
package news

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/config"
	newsctl "github.com/metropolitan-website/metropolitan-backend/internal/db/controller/news"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

const (
	// Path is the public route group.
	Path = handler.APIPrefix + "/news"
	// AdminPath is the protected route group.
	AdminPath = handler.AdminPrefix + "/news"

	resource = "News"
)

// Request is the create and update body. Date is optional and defaults to the creation date.
type Request struct {
	Title   string      `json:"title" validate:"required,max=255" label:"Title"`
	Content string      `json:"content" validate:"required" label:"Content"`
	Summary string      `json:"summary" validate:"required,max=1024" label:"Summary"`
	Image   string      `json:"image" validate:"required,max=1024" label:"Image"`
	Date    models.Date `json:"date"`
}

func (r *Request) model() *models.News {
	return &models.News{
		Title:   r.Title,
		Content: r.Content,
		Summary: r.Summary,
		Image:   r.Image,
		Date:    r.Date,
	}
}

// Service is the news handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	svc *newsctl.Service
}

// Init registers the public and admin routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard fiber.Handler) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilACD
	}

	s.cfg = cfg
	s.svc = newsctl.New(db)

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

// List returns a page of articles, latest publication date first.
func (s *Service) List(c *fiber.Ctx) error {
	p, err := handler.List(c, s.cfg.Pagination.PublicLimit, s.cfg.Pagination.MaxLimit)
	if err != nil {
		return err
	}

	res, err := s.svc.List(c.UserContext(), p.Page, p.Limit)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return c.JSON(res)
}

// AdminList returns a page of articles filtered by creation date.
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

// Get returns one article.
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

// Create stores a new article.
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

// Update replaces the mutable fields of an article.
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

// Delete removes an article.
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
