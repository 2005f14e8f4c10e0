package collect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

func testConfig() config.Config {
	var cfg config.Config
	cfg.Search.Terms = []string{"CRM Manager"}
	cfg.Search.MaxDaysOld = 2
	cfg.Search.TargetState = "NY"
	return cfg
}

func datePtr(t time.Time) *time.Time { return &t }

func TestShouldKeep(t *testing.T) {
	today := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		cfg        func() config.Config
		posting    domain.JobPosting
		keep       bool
		wantReason string
	}{
		{
			name: "match in target state",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "NY"},
				DatePosted: datePtr(today),
			},
			keep: true,
		},
		{
			name: "title without any search term",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "Chef",
				Location:   &domain.Location{State: "NY"},
				DatePosted: datePtr(today),
			},
			keep:       false,
			wantReason: "no_keyword_match",
		},
		{
			name: "keyword filter disabled keeps unrelated title",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Filters.SkipTitleMatch = true
				return cfg
			},
			posting: domain.JobPosting{
				Title:      "Chef",
				Location:   &domain.Location{State: "NY"},
				DatePosted: datePtr(today),
			},
			keep: true,
		},
		{
			name: "remote overrides region mismatch",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "CA"},
				IsRemote:   true,
				DatePosted: datePtr(today),
			},
			keep: true,
		},
		{
			name: "wrong state and not remote",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "CA"},
				DatePosted: datePtr(today),
			},
			keep:       false,
			wantReason: "location",
		},
		{
			name: "state is normalized before comparing",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "  ny "},
				DatePosted: datePtr(today),
			},
			keep: true,
		},
		{
			name: "no posting date is rejected",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:    "CRM Manager",
				Location: &domain.Location{State: "NY"},
			},
			keep:       false,
			wantReason: "no_date",
		},
		{
			name: "no posting date kept when configured",
			cfg: func() config.Config {
				cfg := testConfig()
				cfg.Filters.KeepUndated = true
				return cfg
			},
			posting: domain.JobPosting{
				Title:    "CRM Manager",
				Location: &domain.Location{State: "NY"},
			},
			keep: true,
		},
		{
			name: "five days old with two day window",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "NY"},
				DatePosted: datePtr(today.AddDate(0, 0, -5)),
			},
			keep:       false,
			wantReason: "too_old",
		},
		{
			name: "exactly at the window edge",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				Location:   &domain.Location{State: "NY"},
				DatePosted: datePtr(today.AddDate(0, 0, -2)),
			},
			keep: true,
		},
		{
			name: "no location and not remote",
			cfg:  testConfig,
			posting: domain.JobPosting{
				Title:      "CRM Manager",
				DatePosted: datePtr(today),
			},
			keep:       false,
			wantReason: "location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, reason := ShouldKeep(tt.cfg(), today, tt.posting)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestDaysOldUsesCalendarDays(t *testing.T) {
	// late evening today vs early morning yesterday is still 1 day
	today := time.Date(2026, 8, 26, 23, 50, 0, 0, time.UTC)
	posted := time.Date(2026, 8, 25, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, 1, daysOld(today, posted))
}

func TestTitleMatchIsCaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, titleMatchesAny("Senior crm manager (Hybrid)", []string{"CRM Manager"}))
	assert.False(t, titleMatchesAny("Chef", []string{"CRM Manager"}))
	assert.False(t, titleMatchesAny("Anything", []string{"  ", ""}))
}
