// Package inquiry stores contact form submissions.
package inquiry

import (
	"context"

	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
)

// Service handles inquiries. There is no update path.
type Service struct {
	store *store.Store[models.Inquiry]
}

// New creates the service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{store: store.New[models.Inquiry](db)}
}

// Create stores a new inquiry.
func (s *Service) Create(ctx context.Context, rec *models.Inquiry) (*models.Inquiry, error) {
	rec.ID = 0

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Get returns the inquiry with id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.Inquiry, error) {
	return s.store.FindByID(ctx, id) //nolint:wrapcheck
}

// Delete removes the inquiry with id.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id) //nolint:wrapcheck
}

// List returns one page of inquiries matching q, newest first.
func (s *Service) List(ctx context.Context, q filter.Query, page, limit int) (*pagination.Result[models.Inquiry], error) {
	return pagination.Paginate[models.Inquiry](ctx, s.store, q.Filter(), page, limit)
}
