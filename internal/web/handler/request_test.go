package handler_test

import (
	"errors"
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metropolitan-website/metropolitan-backend/internal/pagination"
	"github.com/metropolitan-website/metropolitan-backend/internal/validation"
	"github.com/metropolitan-website/metropolitan-backend/internal/web/handler"
)

// runList binds the query of target and hands the result to check.
func runList(t *testing.T, target string, check func(handler.ListParams, error)) {
	t.Helper()

	app := fiber.New(fiber.Config{Immutable: true})
	app.Get("/list", func(c *fiber.Ctx) error {
		check(handler.List(c, 10, 50))

		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestListDefaults(t *testing.T) {
	runList(t, "/list", func(p handler.ListParams, err error) {
		require.NoError(t, err)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Nil(t, p.Division)
		assert.Nil(t, p.FromDate)
		assert.Nil(t, p.ToDate)
	})

	runList(t, "/list?division=&page=&limit=", func(p handler.ListParams, err error) {
		require.NoError(t, err)
		assert.Nil(t, p.Division, "empty division is absent")
		assert.Equal(t, 10, p.Limit)
	})
}

func TestListValues(t *testing.T) {
	runList(t, "/list?page=3&limit=5&division=Fire%20Detection%20%26%20Protection&fromDate=2024-01-02T10:30:00&toDate=2024-02-01",
		func(p handler.ListParams, err error) {
			require.NoError(t, err)
			assert.Equal(t, 3, p.Page)
			assert.Equal(t, 5, p.Limit)
			require.NotNil(t, p.Division)
			assert.Equal(t, "Fire Detection & Protection", *p.Division)
			require.NotNil(t, p.FromDate)
			assert.True(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC).Equal(*p.FromDate))
			require.NotNil(t, p.ToDate)
			assert.True(t, time.Date(2024, 2, 1, 23, 59, 59, 999999999, time.UTC).Equal(*p.ToDate))
		})

	runList(t, "/list?fromDate=2024-01-02", func(p handler.ListParams, err error) {
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Equal(*p.FromDate), "lower bound starts the day")
	})

	runList(t, "/list?toDate=2024-01-02T08:00:00%2B02:00", func(p handler.ListParams, err error) {
		require.NoError(t, err)
		assert.True(t, time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC).Equal(*p.ToDate))
	})
}

func TestListErrors(t *testing.T) {
	tests := map[string]string{
		"/list?page=abc":                  "page",
		"/list?limit=ten":                 "limit",
		"/list?fromDate=yesterday":        "fromDate",
		"/list?toDate=01/02/2024":         "toDate",
		"/list?limit=0":                   "limit",
		"/list?limit=-5":                  "limit",
		"/list?limit=51":                  "limit",
		"/list?limit=100000000":           "limit",
		"/list?page=99999999999999999999": "page",
	}

	for target, field := range tests {
		runList(t, target, func(_ handler.ListParams, err error) {
			var verr *validation.Error
			require.True(t, errors.As(err, &verr), target)
			assert.Equal(t, field, verr.Field)
		})
	}
}

func TestListLimitBounds(t *testing.T) {
	runList(t, "/list?limit=50&page=9223372036854775807", func(p handler.ListParams, err error) {
		require.NoError(t, err)
		assert.Equal(t, 50, p.Limit)
		assert.Equal(t, math.MaxInt, p.Page)
	})

	runList(t, "/list?limit=51", func(_ handler.ListParams, err error) {
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Limit must be at most 50", verr.Message)
	})
}

func TestListMaxLimitFallback(t *testing.T) {
	for _, maxLimit := range []int{0, -1, pagination.MaxLimit + 1} {
		app := fiber.New()
		app.Get("/list", func(c *fiber.Ctx) error {
			_, err := handler.List(c, 10, maxLimit)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(err)
			}

			return c.SendStatus(fiber.StatusNoContent)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/list?limit=1000", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/list?limit=1001", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		id, err := handler.ID(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(err)
		}

		return c.JSON(fiber.Map{"id": id})
	})

	for target, status := range map[string]int{"/7": 200, "/0": 400, "/-1": 400, "/x": 400} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, status, resp.StatusCode, target)
	}
}
