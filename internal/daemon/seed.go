package daemon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/metropolitan-website/metropolitan-backend/internal/db/controller/casestudy"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/controller/news"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/controller/testimonial"
	"github.com/metropolitan-website/metropolitan-backend/internal/db/models"
)

const (
	seedCaseStudies = 18
	seedNews        = 10
)

var seedImages = []string{ //nolint:gochecknoglobals
	"https://images.unsplash.com/photo-1558444479-c8498174f680?auto=format&fit=crop&q=80&w=2070",
	"https://images.unsplash.com/photo-1516733968668-dbdce39c46ef?auto=format&fit=crop&q=80&w=2070",
	"https://images.unsplash.com/photo-1581094288338-2314dddb7ec4?auto=format&fit=crop&q=80&w=2070",
	"https://images.unsplash.com/photo-1544724569-5f546fd6f2b5?auto=format&fit=crop&q=80&w=2070",
	"https://images.unsplash.com/photo-1509391366360-fe5bb6585828?auto=format&fit=crop&q=80&w=2070",
	"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=2070",
}

var seedQuotes = []models.Testimonial{ //nolint:gochecknoglobals
	{Author: "John Smith", Role: "Project Manager", Content: "Exceptional quality and reliability."},
	{Author: "Sarah Jane", Role: "Facility Director", Content: "Professional team and great support."},
}

// Seed fills an empty database with demo content for every division.
// It does nothing when a case study already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	caseStudies := casestudy.New(db)

	existing, err := caseStudies.List(ctx, 1, 1)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if existing.Total > 0 {
		log.Info().Int64("case_studies", existing.Total).Msg("database already seeded, skipping")

		return nil
	}

	log.Info().Msg("seeding database ...")

	divisions := models.Divisions()

	for i := range seedCaseStudies {
		division := divisions[i%len(divisions)]

		_, err = caseStudies.Create(ctx, &models.CaseStudy{
			Title: fmt.Sprintf("%s Project %d: Modern Solution", division, i+1),
			Description: "A groundbreaking project delivering state-of-the-art infrastructure and sustainable design. " +
				"This project exemplifies our commitment to excellence and innovation in the metropolitan landscape.",
			Image:          seedImages[i%len(seedImages)],
			Division:       division,
			Client:         fmt.Sprintf("Client %d Corp", i+1),
			Location:       "Metropolitan Area",
			CompletionDate: "2024",
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	articles := news.New(db)

	for i := range seedNews {
		_, err = articles.Create(ctx, &models.News{
			Title: fmt.Sprintf("Metropolitan News: Expansion into %s Sector", divisions[i%len(divisions)]),
			Content: "<p>We are expanding our operations to provide even better services " +
				"in the metropolitan region.</p>",
			Summary: "We are thrilled to announce a significant achievement in our ongoing efforts " +
				"to redefine urban living.",
			Image: seedImages[i%len(seedImages)],
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	testimonials := testimonial.New(db)

	for _, division := range divisions {
		for _, q := range seedQuotes {
			q.Division = division

			if _, err = testimonials.Create(ctx, &q); err != nil {
				return err //nolint:wrapcheck
			}
		}
	}

	log.Info().Msg("database seeded successfully")

	return nil
}
