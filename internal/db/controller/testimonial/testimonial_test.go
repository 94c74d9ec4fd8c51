package testimonial_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/controller/testimonial"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/dbtest"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
)

func seed(t *testing.T, s *testimonial.Service) {
	t.Helper()

	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []models.Testimonial{
		{Content: "a", Author: "A", Role: "r", Division: models.DivisionSolar, CreatedAt: at},
		{Content: "b", Author: "B", Role: "r", Division: models.DivisionELV, CreatedAt: at.Add(time.Hour)},
		{Content: "c", Author: "C", Role: "r", Division: models.DivisionSolar, CreatedAt: at.Add(2 * time.Hour)},
	}

	for i := range rows {
		_, err := s.Create(context.Background(), &rows[i])
		require.NoError(t, err)
	}
}

func contents(rows []models.Testimonial) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Content)
	}

	return out
}

func TestListByDivision(t *testing.T) {
	ctx := context.Background()
	s := testimonial.New(dbtest.New(t))
	seed(t, s)

	solar := models.DivisionSolar

	rows, err := s.ListByDivision(ctx, &solar)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, contents(rows))

	rows, err = s.ListByDivision(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, contents(rows))

	unknown := "Plumbing"

	rows, err = s.ListByDivision(ctx, &unknown)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListWithFilters(t *testing.T) {
	ctx := context.Background()
	s := testimonial.New(dbtest.New(t))
	seed(t, s)

	solar := models.DivisionSolar

	res, err := s.ListWithFilters(ctx, filter.Query{Division: &solar}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, contents(res.Data))
	assert.Equal(t, int64(2), res.Total)
	assert.Equal(t, 2, res.TotalPages)

	res, err = s.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
}

func TestUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := testimonial.New(dbtest.New(t))
	seed(t, s)

	updated, err := s.Update(ctx, 1, &models.Testimonial{Content: "new", Author: "N", Role: "CTO", Division: models.DivisionELV})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), updated.ID)

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Content)
	assert.Equal(t, "CTO", got.Role)

	_, err = s.Update(ctx, 99, &models.Testimonial{Content: "x"})
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Delete(ctx, 1))
	require.ErrorIs(t, s.Delete(ctx, 1), store.ErrNotFound)
}
