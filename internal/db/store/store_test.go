package store_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/dbtest"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/filter"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/store"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return base.AddDate(0, 0, n)
}

func seedTestimonials(t *testing.T, s *store.Store[models.Testimonial]) {
	t.Helper()

	divisions := []string{models.DivisionSolar, models.DivisionGenerator, models.DivisionSolar}

	for i, division := range divisions {
		rec := &models.Testimonial{
			Content:   fmt.Sprintf("quote %d", i),
			Author:    "author",
			Role:      "CEO",
			Division:  division,
			CreatedAt: day(i),
		}
		require.NoError(t, s.Insert(context.Background(), rec))
	}
}

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.CaseStudy](dbtest.New(t))

	in := models.CaseStudy{
		Title:          "Mall chillers",
		Description:    "Replacement of four chillers",
		Image:          "/img/mall.jpg",
		Division:       models.DivisionCentralAC,
		Client:         "City Mall",
		Location:       "Dhaka",
		CompletionDate: "2023",
	}

	rec := in
	require.NoError(t, s.Insert(ctx, &rec))
	require.NotZero(t, rec.ID)
	require.False(t, rec.CreatedAt.IsZero())

	got, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)

	in.ID = got.ID
	in.CreatedAt = got.CreatedAt
	assert.Equal(t, in, *got)

	ok, err := s.ExistsByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ExistsByID(ctx, rec.ID+100)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindMissing(t *testing.T) {
	s := store.New[models.News](dbtest.New(t))

	_, err := s.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.FindBy(context.Background(), "title", "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.Inquiry](dbtest.New(t))

	rec := &models.Inquiry{Name: "A", Email: "a@example.com", Message: "hello"}
	require.NoError(t, s.Insert(ctx, rec))

	require.NoError(t, s.DeleteByID(ctx, rec.ID))
	assert.ErrorIs(t, s.DeleteByID(ctx, rec.ID), store.ErrNotFound)
}

func TestSaveKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.Testimonial](dbtest.New(t))

	rec := &models.Testimonial{Content: "c", Author: "a", Role: "r", Division: "d", CreatedAt: day(0)}
	require.NoError(t, s.Insert(ctx, rec))

	rec.Content = "changed"
	rec.CreatedAt = day(10)
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Content)
	assert.True(t, day(0).Equal(got.CreatedAt), "created_at must not change, got %s", got.CreatedAt)
}

func TestUpdateColumnMissing(t *testing.T) {
	s := store.New[models.AdminUser](dbtest.New(t))

	err := s.UpdateColumn(context.Background(), 9, "last_login", time.Now())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPageOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.Testimonial](dbtest.New(t))
	seedTestimonials(t, s)

	rows, err := s.Page(ctx, nil, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "quote 2", rows[0].Content)
	assert.Equal(t, "quote 0", rows[2].Content)

	solar := models.DivisionSolar
	f := filter.Query{Division: &solar}.Filter()

	n, err := s.CountMatching(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows, err = s.Page(ctx, f, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "quote 0", rows[0].Content)

	total, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestPageLargeBounds(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.Testimonial](dbtest.New(t))
	seedTestimonials(t, s)

	// the page size only bounds the query, nothing is reserved up front
	rows, err := s.Page(ctx, nil, 0, math.MaxInt32)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	rows, err = s.Page(ctx, nil, math.MaxInt, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDateRange(t *testing.T) {
	ctx := context.Background()
	s := store.New[models.Testimonial](dbtest.New(t))
	seedTestimonials(t, s)

	from, to := day(1), day(2)

	tests := []struct {
		name  string
		query filter.Query
		want  []string
	}{
		{name: "no bounds", query: filter.Query{}, want: []string{"quote 2", "quote 1", "quote 0"}},
		{name: "lower bound inclusive", query: filter.Query{FromDate: &from}, want: []string{"quote 2", "quote 1"}},
		{name: "upper bound inclusive", query: filter.Query{ToDate: &from}, want: []string{"quote 1", "quote 0"}},
		{name: "both bounds", query: filter.Query{FromDate: &from, ToDate: &to}, want: []string{"quote 2", "quote 1"}},
		{name: "empty range", query: filter.Query{FromDate: &to, ToDate: &from}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.All(ctx, tt.query.Filter())
			require.NoError(t, err)

			got := make([]string, 0, len(rows))
			for _, r := range rows {
				got = append(got, r.Content)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNilStore(t *testing.T) {
	var s *store.Store[models.News]

	_, err := s.Count(context.Background())
	assert.ErrorIs(t, err, store.ErrDBNil)
}
