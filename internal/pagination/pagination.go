// Package pagination turns a page request into a bounded slice plus count metadata.
package pagination

import (
	"context"
	"math"
	"strconv"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/validation"
)

// MaxLimit is the largest page size Paginate serves, whatever the configuration says.
const MaxLimit = 1000

// ErrInvalidLimit is returned for a page size below one.
var ErrInvalidLimit = validation.New("limit", "Limit must be greater than 0") //nolint:gochecknoglobals

// LimitTooLarge is the error for a page size above maxLimit.
func LimitTooLarge(maxLimit int) *validation.Error {
	return validation.New("limit", "Limit must be at most "+strconv.Itoa(maxLimit))
}

// Gateway is the part of a store the engine needs.
type Gateway[T any] interface {
	CountMatching(ctx context.Context, f *filter.Filter) (int64, error)
	Page(ctx context.Context, f *filter.Filter, offset, limit int) ([]T, error)
}

// Result is the list envelope returned to clients.
type Result[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// TotalPages is ceil(total / limit). limit must be positive.
func TotalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}

	l := int64(limit)

	return int((total + l - 1) / l)
}

// Offset of the first row of page. Pages start at 1, lower pages clamp to 0.
// Offsets beyond math.MaxInt saturate, such a page is past the last row.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}

	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

// Paginate fetches one page matching f and the matching total.
// The page and the count are two separate reads.
func Paginate[T any](ctx context.Context, gw Gateway[T], f *filter.Filter, page, limit int) (*Result[T], error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	if limit > MaxLimit {
		return nil, LimitTooLarge(MaxLimit)
	}

	rows, err := gw.Page(ctx, f, Offset(page, limit), limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	total, err := gw.CountMatching(ctx, f)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if rows == nil {
		rows = []T{}
	}

	return &Result[T]{
		Data:       rows,
		Total:      total,
		Page:       page,
		TotalPages: TotalPages(total, limit),
	}, nil
}
