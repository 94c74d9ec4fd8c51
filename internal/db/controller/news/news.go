// Package news provides CRUD operations for news articles.
//
// Articles are listed by publication date, newest first. The HTML body is
// sanitised on every write.
package news

import (
	"context"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
)

// ColumnDate is the publication date column.
const ColumnDate = "date"

var (
	policyOnce sync.Once          //nolint:gochecknoglobals
	policy     *bluemonday.Policy //nolint:gochecknoglobals
)

// Sanitize strips scripts, handlers and unknown markup from article HTML.
func Sanitize(html string) string {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})

	return policy.Sanitize(html)
}

// Service handles news articles.
type Service struct {
	store *store.Store[models.News]
}

// New creates the service on top of db.
func New(db *gorm.DB) *Service {
	return &Service{store: store.New[models.News](db, store.Desc(ColumnDate), store.Desc("id"))}
}

// Create stores rec. An empty date becomes the creation date.
func (s *Service) Create(ctx context.Context, rec *models.News) (*models.News, error) {
	rec.ID = 0
	rec.Content = Sanitize(rec.Content)

	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Get returns the article with id.
func (s *Service) Get(ctx context.Context, id uint64) (*models.News, error) {
	return s.store.FindByID(ctx, id) //nolint:wrapcheck
}

// Update replaces the mutable fields of the article with id.
func (s *Service) Update(ctx context.Context, id uint64, patch *models.News) (*models.News, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	rec.Patch(patch)
	rec.Content = Sanitize(rec.Content)

	if err = s.store.Save(ctx, rec); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return rec, nil
}

// Delete removes the article with id.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	return s.store.DeleteByID(ctx, id) //nolint:wrapcheck
}

// List returns one page of all articles.
func (s *Service) List(ctx context.Context, page, limit int) (*pagination.Result[models.News], error) {
	return pagination.Paginate[models.News](ctx, s.store, nil, page, limit)
}

// ListWithFilters returns one page of the articles created within q's date range.
// Division does not apply to news and is ignored.
func (s *Service) ListWithFilters(
	ctx context.Context, q filter.Query, page, limit int,
) (*pagination.Result[models.News], error) {
	q.Division = nil

	return pagination.Paginate[models.News](ctx, s.store, q.Filter(), page, limit)
}
