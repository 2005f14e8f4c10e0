package collect

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

func TestNormalizeRecordPlaceholders(t *testing.T) {
	cfg := testConfig()
	cfg.Filters.DescriptionMode = config.DescriptionTruncate

	p := domain.JobPosting{
		ID:    "lever:acme:123",
		Title: "CRM Manager",
		URL:   "https://example.com/jobs/123",
	}

	rec := NormalizeRecord(cfg, p, "lever")

	assert.Equal(t, domain.PlaceholderUnknown, rec[domain.FieldCompany])
	assert.Equal(t, domain.PlaceholderUnknown, rec[domain.FieldCity])
	assert.Equal(t, domain.PlaceholderUnknown, rec[domain.FieldState])
	assert.Equal(t, domain.PlaceholderUnknown, rec[domain.FieldCountry])
	assert.Equal(t, domain.PlaceholderNotProvided, rec[domain.FieldIndustry])
	assert.Equal(t, domain.PlaceholderNotProvided, rec[domain.FieldExperience])
	assert.Equal(t, domain.PlaceholderNotProvided, rec[domain.FieldJobType])
	assert.Equal(t, domain.PlaceholderNotProvided, rec[domain.FieldDatePosted])
	assert.Equal(t, domain.PlaceholderNoDesc, rec[domain.FieldDescription])
	assert.Equal(t, "", rec[domain.FieldCurrency])
	assert.Equal(t, "", rec[domain.FieldSalaryMin])
	assert.Equal(t, "false", rec[domain.FieldIsRemote])
	assert.Equal(t, "lever", rec[domain.FieldSource])

	// no identity configured, no identity column
	_, ok := rec[domain.FieldUserEmail]
	assert.False(t, ok)
}

func TestNormalizeRecordPopulated(t *testing.T) {
	cfg := testConfig()
	cfg.Search.UserEmail = "jane@doe.com"

	jt := domain.JobTypeFullTime
	posted := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	p := domain.JobPosting{
		ID:              "sr:acme:9",
		Title:           "CRM Manager",
		CompanyName:     "Acme",
		Industry:        "Software",
		ExperienceLevel: "Mid",
		JobType:         &jt,
		IsRemote:        true,
		Compensation:    &domain.Compensation{Currency: "USD", MinAmount: 90000, MaxAmount: 120000},
		DatePosted:      &posted,
		Location:        &domain.Location{City: "New York", State: " ny ", Country: "US"},
		Description:     "Own the CRM roadmap.",
		URL:             "https://example.com/9",
	}

	rec := NormalizeRecord(cfg, p, "smartrecruiters")

	assert.Equal(t, "NY", rec[domain.FieldState])
	assert.Equal(t, "FULL_TIME", rec[domain.FieldJobType])
	assert.Equal(t, "USD", rec[domain.FieldCurrency])
	assert.Equal(t, "90000", rec[domain.FieldSalaryMin])
	assert.Equal(t, "120000", rec[domain.FieldSalaryMax])
	assert.Equal(t, "2026-08-25", rec[domain.FieldDatePosted])
	assert.Equal(t, "true", rec[domain.FieldIsRemote])
	assert.Equal(t, "jane@doe.com", rec[domain.FieldUserEmail])
}

func TestNormalizeDescriptionModes(t *testing.T) {
	long := strings.Repeat("a", 600)

	cfg := testConfig()
	cfg.Filters.DescriptionMode = config.DescriptionTruncate
	rec := NormalizeRecord(cfg, domain.JobPosting{Description: long}, "lever")
	assert.Len(t, rec[domain.FieldDescription], 500)

	cfg.Filters.DescriptionMode = config.DescriptionStrip
	rec = NormalizeRecord(cfg, domain.JobPosting{Description: "fast, friendly, remote"}, "lever")
	assert.Equal(t, "fast friendly remote", rec[domain.FieldDescription])
	assert.NotContains(t, rec[domain.FieldDescription], ",")
}

func TestRecordHasEveryDeclaredField(t *testing.T) {
	cfg := testConfig()
	cfg.Search.UserEmail = "jane@doe.com"

	rec := NormalizeRecord(cfg, domain.JobPosting{}, "greenhouse")
	for _, f := range domain.RecordFields(true) {
		_, ok := rec[f]
		assert.True(t, ok, "missing field %q", f)
	}
}
