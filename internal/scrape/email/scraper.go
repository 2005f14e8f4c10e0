package email

import (
	"context"
	"fmt"
	"log"
	"time"

	"jobsweep/internal/domain"
	"jobsweep/internal/scrape/util"
)

type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Mailbox    string
	SubjectAny []string // accept a mail only if the subject contains one of these
	SinceDays  int      // mailbox search window; 0 means 7 days
}

// Scraper turns LinkedIn job-alert emails in an IMAP mailbox into postings.
type Scraper struct {
	cfg Config
}

func New(cfg Config) *Scraper {
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.SinceDays <= 0 {
		cfg.SinceDays = 7
	}
	return &Scraper{cfg: cfg}
}

func (s *Scraper) Name() string { return "email" }

func (s *Scraper) Scrape(ctx context.Context, term string, want int) ([]domain.JobPosting, error) {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	c, err := dialAndLogin(ctx, addr, s.cfg.Username, s.cfg.Password)
	if err != nil {
		return nil, err
	}
	defer logoutAndClose(c)

	if err := selectMailbox(c, s.cfg.Mailbox); err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.SinceDays)
	msgs, err := fetchSince(ctx, c, cutoff, 50)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []domain.JobPosting

	for _, m := range msgs {
		if len(out) >= want {
			break
		}
		if !subjectMatchesAny(m.Subject, s.cfg.SubjectAny) {
			continue
		}

		body := htmlBody(m.RawMessage)
		if body == "" {
			continue
		}
		jobs, err := ParseAlertHTML(body)
		if err != nil {
			log.Printf("[email] parse alert uid=%d err=%v", m.UID, err)
			continue
		}

		for _, aj := range jobs {
			if len(out) >= want {
				break
			}
			id := aj.SourceID
			if id == "" {
				id = "linkedin:" + aj.URL
			}
			if seen[id] {
				continue
			}
			seen[id] = true

			j := domain.JobPosting{
				ID:          id,
				Title:       aj.Title,
				CompanyName: aj.Company,
				URL:         aj.URL,
				IsRemote:    util.LooksRemote(aj.Location, aj.Title),
			}
			if aj.Location != "" {
				city, state, country := util.SplitLocation(aj.Location)
				j.Location = &domain.Location{City: city, State: state, Country: country}
			}
			if !m.Date.IsZero() {
				// alerts arrive close to posting time; the mail date is the
				// best posted-at signal these emails carry
				t := m.Date
				j.DatePosted = &t
			}
			out = append(out, j)
		}
	}

	return out, nil
}
