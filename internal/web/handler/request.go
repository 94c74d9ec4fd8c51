package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
	"github.com/metropolitan-website/metropolitan-backend/internal/validation"
)

// accepted layouts of fromDate and toDate, most specific first
var dateLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ListParams are the bound query parameters of a list endpoint.
type ListParams struct {
	Page  int
	Limit int
	filter.Query
}

// ID parses the :id route parameter.
func ID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, validation.New("id", "Id must be a positive number")
	}

	return id, nil
}

// Bind decodes the JSON body into dst and validates it.
func Bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return validation.New("body", "Malformed request body")
	}

	return validation.Struct(dst)
}

// List reads page, limit, division, fromDate and toDate. Missing page and limit
// default to 1 and defaultLimit, empty strings count as missing.
// limit must lie in [1, maxLimit]; a maxLimit outside [1, pagination.MaxLimit]
// falls back to pagination.MaxLimit.
func List(c *fiber.Ctx, defaultLimit, maxLimit int) (ListParams, error) {
	var (
		p   = ListParams{Page: 1, Limit: defaultLimit}
		err error
	)

	if p.Page, err = intQuery(c, "page", p.Page); err != nil {
		return p, err
	}

	if p.Limit, err = intQuery(c, "limit", p.Limit); err != nil {
		return p, err
	}

	if maxLimit < 1 || maxLimit > pagination.MaxLimit {
		maxLimit = pagination.MaxLimit
	}

	switch {
	case p.Limit < 1:
		return p, pagination.ErrInvalidLimit
	case p.Limit > maxLimit:
		return p, pagination.LimitTooLarge(maxLimit)
	}

	if d := strings.TrimSpace(c.Query("division")); d != "" {
		p.Division = &d
	}

	if p.FromDate, err = dateQuery(c, "fromDate", false); err != nil {
		return p, err
	}

	if p.ToDate, err = dateQuery(c, "toDate", true); err != nil {
		return p, err
	}

	return p, nil
}

// Has reports whether the query parameter key was sent with a value.
func Has(c *fiber.Ctx, key string) bool {
	return c.Query(key) != ""
}

func intQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.New(key, strings.ToUpper(key[:1])+key[1:]+" must be a number")
	}

	return v, nil
}

// dateQuery parses a date parameter. A plain date used as upper bound
// covers the whole day.
func dateQuery(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		if layout == time.DateOnly && endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}

		return &t, nil
	}

	return nil, validation.New(key, "Invalid date format, expected YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS")
}
