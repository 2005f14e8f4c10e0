package smartrecruiters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

type Config struct {
	Companies []Company
}

type Company struct {
	// Slug is the SmartRecruiters company identifier used in URLs, e.g.
	// https://jobs.smartrecruiters.com/<slug>
	Slug string
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
		hc:      &http.Client{Timeout: 25 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "smartrecruiters" }

// Response schema (public API) is typically:
// { "content": [...], "totalFound": N, "offset": O, "limit": L }
// but we defensively parse only what we need.
type postingsResponse struct {
	Content    []posting `json:"content"`
	TotalFound int       `json:"totalFound"`
}

type posting struct {
	ID           string    `json:"id"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	ReleasedDate time.Time `json:"releasedDate"`
	Location     struct {
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
	} `json:"location"`
	Industry struct {
		Label string `json:"label"`
	} `json:"industry"`
	TypeOfEmployment struct {
		Label string `json:"label"`
	} `json:"typeOfEmployment"`
	ExperienceLevel struct {
		Label string `json:"label"`
	} `json:"experienceLevel"`
}

// Scrape queries the public postings API for each configured company with
// the search term, capped at want overall. SmartRecruiters does server-side
// term matching via the q parameter.
func (s *Scraper) Scrape(ctx context.Context, term string, want int) ([]domain.JobPosting, error) {
	var out []domain.JobPosting
	var lastErr error
	for _, co := range s.cfg.Companies {
		if len(out) >= want {
			break
		}
		jobs, err := s.fetchCompany(ctx, co, term, want-len(out))
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

func (s *Scraper) fetchCompany(ctx context.Context, co Company, term string, want int) ([]domain.JobPosting, error) {
	limit := want
	if limit > 100 {
		limit = 100
	}
	q := url.Values{}
	q.Set("q", term)
	q.Set("limit", fmt.Sprint(limit))
	apiURL := fmt.Sprintf("https://api.smartrecruiters.com/v1/companies/%s/postings?%s",
		url.PathEscape(co.Slug), q.Encode())

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
		return nil, fmt.Errorf("smartrecruiters get postings: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("smartrecruiters postings status %d", res.StatusCode)
	}

	var pr postingsResponse
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("smartrecruiters decode postings: %w", err)
	}

	out := make([]domain.JobPosting, 0, len(pr.Content))
	for _, p := range pr.Content {
		if len(out) >= want {
			break
		}
		j := domain.JobPosting{
			ID:              "smartrecruiters:" + co.Slug + ":" + p.ID,
			Title:           util.CleanText(p.Name),
			CompanyName:     co.Name,
			Industry:        util.CleanText(p.Industry.Label),
			ExperienceLevel: util.CleanText(p.ExperienceLevel.Label),
			URL:             fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", co.Slug, p.ID),
			IsRemote:        p.Location.Remote,
		}
		if !p.ReleasedDate.IsZero() {
			t := p.ReleasedDate
			j.DatePosted = &t
		}
		if p.Location.City != "" || p.Location.Region != "" || p.Location.Country != "" {
			j.Location = &domain.Location{
				City:    util.CleanText(p.Location.City),
				State:   util.CleanText(p.Location.Region),
				Country: strings.ToUpper(util.CleanText(p.Location.Country)),
			}
		}
		if jt := mapEmployment(p.TypeOfEmployment.Label); jt != "" {
			j.JobType = &jt
		}
		if !j.IsRemote {
			j.IsRemote = util.LooksRemote(p.Location.City, p.Location.Region, j.Title)
		}
		out = append(out, j)
	}
	return out, nil
}

func mapEmployment(label string) domain.JobType {
	switch strings.ToLower(util.CleanText(label)) {
	case "full-time", "full time", "permanent":
		return domain.JobTypeFullTime
	case "part-time", "part time":
		return domain.JobTypePartTime
	case "contract", "contractor", "fixed term":
		return domain.JobTypeContract
	case "internship", "intern":
		return domain.JobTypeInternship
	case "temporary":
		return domain.JobTypeTemporary
	default:
		return ""
	}
}
