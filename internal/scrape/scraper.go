package scrape

import (
	"context"

	"jobsweep/internal/domain"
)

// Scraper is one job-board source. Scrape returns at most want postings for
// the given search term; how a source honors the term (server-side query,
// client-side cap) is up to the source.
type Scraper interface {
	Name() string
	Scrape(ctx context.Context, term string, want int) ([]domain.JobPosting, error)
}
