// Package store implements the generic persistence gateway used by every model.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
)

// Store is the gateway for one table. Listings use the configured sort order.
type Store[T any] struct {
	db    *gorm.DB
	order []clause.OrderByColumn
}

// Desc orders by column descending.
func Desc(column string) clause.OrderByColumn {
	return clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}
}

// New creates a store. Without an explicit order rows are listed newest first
// with the id as tie-breaker.
func New[T any](db *gorm.DB, order ...clause.OrderByColumn) *Store[T] {
	if len(order) == 0 {
		order = []clause.OrderByColumn{Desc(filter.ColumnCreatedAt), Desc("id")}
	}

	return &Store[T]{db: db, order: order}
}

func (s *Store[T]) session(ctx context.Context) (*gorm.DB, error) {
	if s == nil || s.db == nil {
		return nil, ErrDBNil
	}

	return s.db.WithContext(ctx), nil
}

// Insert stores rec, gorm assigns id and creation time.
func (s *Store[T]) Insert(ctx context.Context, rec *T) error {
	tx, err := s.session(ctx)
	if err != nil {
		return err
	}

	if err = tx.Create(rec).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	return nil
}

// FindByID loads the row with the given id.
func (s *Store[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	var rec T

	if err = tx.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("find %d: %w", id, err)
	}

	return &rec, nil
}

// FindBy loads the first row where column equals value.
func (s *Store[T]) FindBy(ctx context.Context, column string, value any) (*T, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	var rec T

	err = tx.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("find by %s: %w", column, err)
	}

	return &rec, nil
}

// ExistsByID reports whether a row with id exists.
func (s *Store[T]) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return false, err
	}

	var n int64

	if err = tx.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("exists %d: %w", id, err)
	}

	return n > 0, nil
}

// Save writes every column of rec except the ones marked create-only.
func (s *Store[T]) Save(ctx context.Context, rec *T) error {
	tx, err := s.session(ctx)
	if err != nil {
		return err
	}

	if err = tx.Save(rec).Error; err != nil {
		return fmt.Errorf("save: %w", err)
	}

	return nil
}

// UpdateColumn sets a single column on the row with id.
func (s *Store[T]) UpdateColumn(ctx context.Context, id uint64, column string, value any) error {
	tx, err := s.session(ctx)
	if err != nil {
		return err
	}

	res := tx.Model(new(T)).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update %s of %d: %w", column, id, res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteByID removes the row with id. A missing row is ErrNotFound.
func (s *Store[T]) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := s.session(ctx)
	if err != nil {
		return err
	}

	res := tx.Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of rows in the table.
func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	return s.CountMatching(ctx, nil)
}

// CountMatching returns the number of rows matching f.
func (s *Store[T]) CountMatching(ctx context.Context, f *filter.Filter) (int64, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return 0, err
	}

	var n int64

	if err = tx.Model(new(T)).Scopes(f.Scope).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return n, nil
}

// Page returns at most limit rows matching f, skipping offset rows.
// A negative offset is treated as zero.
func (s *Store[T]) Page(ctx context.Context, f *filter.Filter, offset, limit int) ([]T, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	var rows []T

	err = tx.Scopes(f.Scope).
		Clauses(clause.OrderBy{Columns: s.order}).
		Offset(max(offset, 0)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	return rows, nil
}

// All returns every row matching f in list order.
func (s *Store[T]) All(ctx context.Context, f *filter.Filter) ([]T, error) {
	tx, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]T, 0)

	if err = tx.Scopes(f.Scope).Clauses(clause.OrderBy{Columns: s.order}).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	return rows, nil
}
