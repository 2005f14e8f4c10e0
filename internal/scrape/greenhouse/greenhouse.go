package greenhouse

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

type Config struct {
	Companies []Company // list of boards
}

type Company struct {
	Slug string // boards.greenhouse.io/<slug>
	Name string // display name
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "greenhouse" }

// Scrape walks the configured boards in order and stops once want postings
// are collected. Greenhouse boards have no server-side search; the term only
// bounds the walk, keyword matching happens downstream.
func (s *Scraper) Scrape(ctx context.Context, term string, want int) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	var lastErr error
	for _, co := range s.cfg.Companies {
		if len(out) >= want {
			break
		}
		jobs, err := s.fetchCompany(ctx, co, want-len(out))
		if err != nil {
			// one board being down should not kill the source
			lastErr = err
			continue
		}
		out = append(out, jobs...)
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (s *Scraper) fetchCompany(ctx context.Context, co Company, want int) ([]domain.JobPosting, error) {
	boardURL := fmt.Sprintf("https://boards.greenhouse.io/%s", co.Slug)

	doc, err := s.getDoc(ctx, boardURL)
	if err != nil {
		return nil, fmt.Errorf("greenhouse board %s: %w", co.Slug, err)
	}

	seen := map[string]bool{}
	var jobs []domain.JobPosting

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if len(jobs) >= want {
			return
		}
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		abs := href
		if strings.HasPrefix(href, "/") {
			abs = "https://boards.greenhouse.io" + href
		}
		low := strings.ToLower(abs)
		if !strings.Contains(low, "boards.greenhouse.io") || !strings.Contains(low, "/jobs/") {
			return
		}

		jobID := extractJobID(abs)
		if jobID == "" {
			return
		}

		id := fmt.Sprintf("greenhouse:%s:%s", co.Slug, jobID)
		if seen[id] {
			return
		}
		seen[id] = true

		title := util.CleanText(a.Text())
		if title == "" || util.LooksLikeJunkTitle(title) {
			// the detail page has the true title; some boards wrap titles weird
			title = ""
		}

		jobs = append(jobs, domain.JobPosting{
			ID:          id,
			Title:       title,
			CompanyName: co.Name,
			URL:         abs,
		})
	})

	// Hydrate details (title/location/desc) by fetching each job page.
	for i := range jobs {
		_ = s.hydrateJob(ctx, &jobs[i])
		// ignore hydrate errors; keep minimal entry
	}

	return jobs, nil
}

func (s *Scraper) hydrateJob(ctx context.Context, j *domain.JobPosting) error {
	doc, err := s.getDoc(ctx, j.URL)
	if err != nil {
		return err
	}

	if j.Title == "" {
		if t := util.CleanText(doc.Find("h1").First().Text()); t != "" {
			j.Title = t
		}
	}

	loc := util.CleanText(doc.Find(".location").First().Text())
	if loc != "" {
		city, state, country := util.SplitLocation(loc)
		j.Location = &domain.Location{City: city, State: state, Country: country}
	}

	if sel := doc.Find("#content").First(); sel.Length() > 0 {
		j.Description = util.CleanText(sel.Text())
	}

	// boards rarely expose a posted date; treat the fetch time as one so the
	// recency window sees fresh listings
	if j.DatePosted == nil {
		t := time.Now()
		j.DatePosted = &t
	}

	j.IsRemote = util.LooksRemote(loc, j.Title, j.Description)
	return nil
}

func (s *Scraper) getDoc(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobsweep/1.0 (+local)")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return goquery.NewDocumentFromReader(res.Body)
}

func extractJobID(u string) string {
	// crude but effective: split on /jobs/ and take next chunk of digits
	parts := strings.Split(u, "/jobs/")
	if len(parts) < 2 {
		return ""
	}
	tail := parts[1]
	id := ""
	for _, r := range tail {
		if r >= '0' && r <= '9' {
			id += string(r)
		} else {
			break
		}
	}
	return id
}
