package lever

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

type Config struct {
	Companies []Company
}

type Company struct {
	Slug string // api.lever.co/v0/postings/<slug>
	Name string
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

func (s *Scraper) Name() string { return "lever" }

type leverPosting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"` // ms epoch
	Categories struct {
		Location   string `json:"location"`
		Team       string `json:"team"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
	Description string `json:"description"` // html
}

// Scrape pulls the v0 postings feed for each configured company in order,
// capped at want. Lever has no search parameter; the term is honored by the
// downstream keyword filter.
func (s *Scraper) Scrape(ctx context.Context, term string, want int) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	var lastErr error
	for _, co := range s.cfg.Companies {
		if len(out) >= want {
			break
		}
		jobs, err := s.fetchCompany(ctx, co, want-len(out))
		if err != nil {
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
	apiURL := fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json&limit=%d", co.Slug, want)

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobsweep/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get postings: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("lever postings status %d", res.StatusCode)
	}

	var postings []leverPosting
	if err := json.NewDecoder(res.Body).Decode(&postings); err != nil {
		return nil, fmt.Errorf("lever decode postings: %w", err)
	}

	out := make([]domain.JobPosting, 0, len(postings))
	for _, p := range postings {
		if len(out) >= want {
			break
		}
		j := domain.JobPosting{
			ID:          "lever:" + co.Slug + ":" + p.ID,
			Title:       util.CleanText(p.Text),
			CompanyName: co.Name,
			URL:         p.HostedURL,
			Description: htmlToText(p.Description),
		}
		if p.CreatedAt > 0 {
			t := time.UnixMilli(p.CreatedAt)
			j.DatePosted = &t
		}
		if loc := util.NormalizeLocation(p.Categories.Location); loc != "" {
			city, state, country := util.SplitLocation(loc)
			j.Location = &domain.Location{City: city, State: state, Country: country}
		}
		if jt := mapCommitment(p.Categories.Commitment); jt != "" {
			j.JobType = &jt
		}
		j.IsRemote = util.LooksRemote(p.Categories.Location, j.Title)
		out = append(out, j)
	}
	return out, nil
}

func mapCommitment(c string) domain.JobType {
	switch strings.ToLower(util.CleanText(c)) {
	case "full-time", "full time":
		return domain.JobTypeFullTime
	case "part-time", "part time":
		return domain.JobTypePartTime
	case "contract", "contractor":
		return domain.JobTypeContract
	case "internship", "intern":
		return domain.JobTypeInternship
	default:
		return ""
	}
}

func htmlToText(h string) string {
	if h == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(h))
	if err != nil {
		return util.CleanText(h)
	}
	return util.CleanText(doc.Text())
}
