// Package filter composes optional list filters into a single WHERE conjunction.
//
// Inputs that were not supplied are skipped, so an empty filter matches every row.
package filter

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column names shared by the content models.
const (
	ColumnCreatedAt = "created_at"
	ColumnDivision  = "division"
)

// Filter is a list of active clauses joined with AND.
type Filter struct {
	exprs []clause.Expression
}

// New returns an empty filter.
func New() *Filter {
	return &Filter{}
}

// Eq adds column = value when value is set.
func (f *Filter) Eq(column string, value *string) *Filter {
	if value != nil {
		f.exprs = append(f.exprs, clause.Eq{Column: clause.Column{Name: column}, Value: *value})
	}

	return f
}

// From adds column >= t when t is set.
func (f *Filter) From(column string, t *time.Time) *Filter {
	if t != nil {
		f.exprs = append(f.exprs, clause.Gte{Column: clause.Column{Name: column}, Value: t.UTC()})
	}

	return f
}

// To adds column <= t when t is set.
func (f *Filter) To(column string, t *time.Time) *Filter {
	if t != nil {
		f.exprs = append(f.exprs, clause.Lte{Column: clause.Column{Name: column}, Value: t.UTC()})
	}

	return f
}

// Len is the number of active clauses.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}

	return len(f.exprs)
}

// Scope applies the filter to a query. A nil or empty filter is a no-op.
func (f *Filter) Scope(tx *gorm.DB) *gorm.DB {
	if f.Len() == 0 {
		return tx
	}

	return tx.Where(clause.And(f.exprs...))
}

// Query holds the optional list parameters of the content endpoints.
type Query struct {
	Division *string
	FromDate *time.Time
	ToDate   *time.Time
}

// Filter builds the clauses for q against the shared columns.
func (q Query) Filter() *Filter {
	return New().
		Eq(ColumnDivision, q.Division).
		From(ColumnCreatedAt, q.FromDate).
		To(ColumnCreatedAt, q.ToDate)
}
