// Package jobapplication stores careers form submissions.
package jobapplication

import (
	"context"

	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
)

// Service handles job applications. There is no update path.
type Service struct {
	store *store.Store[models.JobApplication]
}

// New creates the service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{store: store.New[models.JobApplication](db)}
}

// Create stores a new application.
func (s *Service) Create(ctx context.Context, rec *models.JobApplication) (*models.JobApplication, error) {
	rec.ID = 0

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Get returns the application with id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.JobApplication, error) {
	return s.store.FindByID(ctx, id) //nolint:wrapcheck
}

// Delete removes the application with id.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id) //nolint:wrapcheck
}

// List returns one page of applications created within q's date range.
// Applications have no division.
func (s *Service) List(
	ctx context.Context, q filter.Query, page, limit int,
) (*pagination.Result[models.JobApplication], error) {
	q.Division = nil

	return pagination.Paginate[models.JobApplication](ctx, s.store, q.Filter(), page, limit)
}
