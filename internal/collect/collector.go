package collect

import (
	"context"
	"errors"
	"log"
	"time"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
	"jobsweep/internal/scrape"
)

// ErrAllPairsFailed is returned when every (term, source) call errored and
// the run produced nothing to filter.
var ErrAllPairsFailed = errors.New("all source calls failed")

// PairError records one failed (term, source) call.
type PairError struct {
	Term   string
	Source string
	Err    error
}

type RunReport struct {
	Pairs    int // (term, source) calls attempted
	Fetched  int // postings returned by sources
	Kept     int // postings that passed all filters
	Failures []PairError
}

// Collector drives one run: for every search term, ask every registered
// source for postings, filter them, and accumulate normalized records in
// arrival order. Sources run strictly one at a time.
type Collector struct {
	cfg config.Config
	reg *scrape.Registry

	// now is swappable for tests
	now func() time.Time
}

func New(cfg config.Config, reg *scrape.Registry) *Collector {
	return &Collector{cfg: cfg, reg: reg, now: time.Now}
}

// Run iterates terms in configured order and sources in registry order. A
// failing pair is logged and skipped; Run only errors when every pair
// failed.
func (c *Collector) Run(ctx context.Context) ([]domain.Record, RunReport, error) {
	var records []domain.Record
	var report RunReport
	today := c.now()

	for _, term := range c.cfg.Search.Terms {
		for _, src := range c.reg.Scrapers() {
			report.Pairs++
			log.Printf("[collect] scraping term=%q source=%s", term, src.Name())

			postings, err := src.Scrape(ctx, term, c.cfg.Search.ResultsWanted)
			if err != nil {
				log.Printf("[collect:%s] fetch error term=%q: %v", src.Name(), term, err)
				report.Failures = append(report.Failures, PairError{Term: term, Source: src.Name(), Err: err})
				continue
			}
			report.Fetched += len(postings)

			kept := 0
			for _, p := range postings {
				keep, why := ShouldKeep(c.cfg, today, p)
				if !keep {
					log.Printf("[collect:%s] skipped (%s) title=%q state=%q",
						src.Name(), why, p.Title, NormalizedState(p))
					continue
				}
				records = append(records, NormalizeRecord(c.cfg, p, src.Name()))
				kept++
			}
			report.Kept += kept
			log.Printf("[collect:%s] term=%q fetched=%d kept=%d", src.Name(), term, len(postings), kept)
		}
	}

	if report.Pairs > 0 && len(report.Failures) == report.Pairs {
		return nil, report, ErrAllPairsFailed
	}
	return records, report, nil
}
