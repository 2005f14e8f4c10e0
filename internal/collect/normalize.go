package collect

import (
	"strconv"
	"strings"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

const descriptionLimit = 500

// recordDelimiter is the character the flat export scheme joins records
// with; strip mode removes it from descriptions so values can't split rows.
const recordDelimiter = ","

// NormalizeRecord flattens an accepted posting into the export field map,
// substituting placeholders for everything the source didn't provide.
func NormalizeRecord(cfg config.Config, p domain.JobPosting, source string) domain.Record {
	city, country := domain.PlaceholderUnknown, domain.PlaceholderUnknown
	if p.Location != nil {
		if c := strings.TrimSpace(p.Location.City); c != "" {
			city = c
		}
		if c := strings.TrimSpace(p.Location.Country); c != "" {
			country = c
		}
	}

	rec := domain.Record{
		domain.FieldJobID:       p.ID,
		domain.FieldTitle:       p.Title,
		domain.FieldCompany:     orPlaceholder(p.CompanyName, domain.PlaceholderUnknown),
		domain.FieldIndustry:    orPlaceholder(p.Industry, domain.PlaceholderNotProvided),
		domain.FieldExperience:  orPlaceholder(p.ExperienceLevel, domain.PlaceholderNotProvided),
		domain.FieldJobType:     domain.PlaceholderNotProvided,
		domain.FieldIsRemote:    strconv.FormatBool(p.IsRemote),
		domain.FieldCurrency:    "",
		domain.FieldSalaryMin:   "",
		domain.FieldSalaryMax:   "",
		domain.FieldDatePosted:  domain.PlaceholderNotProvided,
		domain.FieldCity:        city,
		domain.FieldState:       NormalizedState(p),
		domain.FieldCountry:     country,
		domain.FieldURL:         p.URL,
		domain.FieldDescription: normalizeDescription(cfg, p.Description),
		domain.FieldSource:      source,
	}

	if p.JobType != nil {
		rec[domain.FieldJobType] = string(*p.JobType)
	}
	if p.Compensation != nil {
		rec[domain.FieldCurrency] = p.Compensation.Currency
		rec[domain.FieldSalaryMin] = formatAmount(p.Compensation.MinAmount)
		rec[domain.FieldSalaryMax] = formatAmount(p.Compensation.MaxAmount)
	}
	if p.DatePosted != nil {
		rec[domain.FieldDatePosted] = p.DatePosted.Format("2006-01-02")
	}
	if cfg.Search.UserEmail != "" {
		rec[domain.FieldUserEmail] = cfg.Search.UserEmail
	}

	return rec
}

func normalizeDescription(cfg config.Config, desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return domain.PlaceholderNoDesc
	}
	switch cfg.Filters.DescriptionMode {
	case config.DescriptionStrip:
		return strings.ReplaceAll(desc, recordDelimiter, "")
	default:
		r := []rune(desc)
		if len(r) > descriptionLimit {
			return string(r[:descriptionLimit])
		}
		return desc
	}
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
