// Package casestudy provides CRUD operations for portfolio case studies.
package casestudy

import (
	"context"

	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
)

// Service handles case studies.
type Service struct {
	store *store.Store[models.CaseStudy]
}

// New creates the service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{store: store.New[models.CaseStudy](db)}
}

// Create stores rec as given. ID and CreatedAt are assigned by the store.
func (s *Service) Create(ctx context.Context, rec *models.CaseStudy) (*models.CaseStudy, error) {
	rec.ID = 0

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Get returns the case study with id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.CaseStudy, error) {
	return s.store.FindByID(ctx, id) //nolint:wrapcheck
}

// Update replaces the mutable fields of the case study with id.
func (s *Service) Update(ctx context.Context, id uint64, patch *models.CaseStudy) (*models.CaseStudy, error) {
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

// Delete removes the case study with id.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id) //nolint:wrapcheck
}

// List returns one page of all case studies, newest first.
func (s *Service) List(ctx context.Context, page, limit int) (*pagination.Result[models.CaseStudy], error) {
	return pagination.Paginate[models.CaseStudy](ctx, s.store, nil, page, limit)
}

// ListWithFilters returns one page of the case studies matching q.
func (s *Service) ListWithFilters(
	ctx context.Context, q filter.Query, page, limit int,
) (*pagination.Result[models.CaseStudy], error) {
	return pagination.Paginate[models.CaseStudy](ctx, s.store, q.Filter(), page, limit)
}
