// Package testimonial provides CRUD operations for customer testimonials.
package testimonial

import (
	"context"

	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
)

// Service handles testimonials.
type Service struct {
	store *store.Store[models.Testimonial]
}

// New creates the service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{store: store.New[models.Testimonial](db)}
}

// Create stores rec.
func (s *Service) Create(ctx context.Context, rec *models.Testimonial) (*models.Testimonial, error) {
	rec.ID = 0

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Get returns the testimonial with id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.Testimonial, error) {
	return s.store.FindByID(ctx, id) //nolint:wrapcheck
}

// Update replaces the mutable fields of the testimonial with id.
func (s *Service) Update(ctx context.Context, id uint64, patch *models.Testimonial) (*models.Testimonial, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	rec.Patch(patch)

	if err = s.store.Save(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Delete removes the testimonial with id.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id) //nolint:wrapcheck
}

// List returns one page of all testimonials.
func (s *Service) List(ctx context.Context, page, limit int) (*pagination.Result[models.Testimonial], error) {
	return pagination.Paginate[models.Testimonial](ctx, s.store, nil, page, limit)
}

// ListWithFilters returns one page of the testimonials matching q.
func (s *Service) ListWithFilters(
	ctx context.Context, q filter.Query, page, limit int,
) (*pagination.Result[models.Testimonial], error) {
	return pagination.Paginate[models.Testimonial](ctx, s.store, q.Filter(), page, limit)
}

// ListByDivision returns every testimonial of division, newest first.
// A nil division returns all of them.
func (s *Service) ListByDivision(ctx context.Context, division *string) ([]models.Testimonial, error) {
	return s.store.All(ctx, filter.Query{Division: division}.Filter()) //nolint:wrapcheck
}
