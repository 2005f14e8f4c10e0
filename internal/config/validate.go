package config

import (
	"errors"
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes list fields, then checks the config.
// Errors are fatal for a run; warnings are advisory.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Search.Terms = trimList(out.Search.Terms)
	out.Search.TargetState = strings.ToUpper(strings.TrimSpace(out.Search.TargetState))
	out.Sources.Email.SearchSubjectAny = trimList(out.Sources.Email.SearchSubjectAny)

	if len(out.Search.Terms) == 0 {
		res.addErr("search.terms must have at least one term")
	}
	if out.Search.ResultsWanted <= 0 {
		res.addErr("search.results_wanted must be > 0")
	}
	if out.Search.MaxDaysOld < 0 {
		res.addErr("search.max_days_old must be >= 0")
	}
	if out.Search.TargetState == "" {
		res.addErr("search.target_state is required")
	}

	switch out.Filters.DescriptionMode {
	case DescriptionTruncate, DescriptionStrip:
	default:
		res.addErr("filters.description_mode must be %q or %q", DescriptionTruncate, DescriptionStrip)
	}

	switch out.Export.Scheme {
	case SchemeCSV, SchemeFlat, SchemeXLSX:
	default:
		res.addErr("export.scheme must be one of csv, flat, xlsx")
	}
	if strings.TrimSpace(out.Export.OutputDir) == "" {
		res.addErr("export.output_dir is required")
	}

	if !out.Sources.Greenhouse.Enabled && !out.Sources.Lever.Enabled &&
		!out.Sources.SmartRecruiters.Enabled && !out.Sources.Email.Enabled {
		res.addErr("no sources enabled: enable greenhouse, lever, smartrecruiters, or email")
	}

	checkCompanies := func(name string, s BoardSource) {
		if !s.Enabled {
			return
		}
		if len(s.Companies) == 0 {
			res.addWarn("sources.%s is enabled but has no companies; it will return nothing", name)
		}
		for i, c := range s.Companies {
			if strings.TrimSpace(c.Slug) == "" {
				res.addErr("sources.%s.companies[%d].slug is required", name, i)
			}
		}
	}
	checkCompanies("greenhouse", out.Sources.Greenhouse)
	checkCompanies("lever", out.Sources.Lever)
	checkCompanies("smartrecruiters", out.Sources.SmartRecruiters)

	if out.Sources.Email.Enabled {
		if strings.TrimSpace(out.Sources.Email.IMAPHost) == "" {
			res.addErr("sources.email.imap_host is required when email is enabled")
		}
		if strings.TrimSpace(out.Sources.Email.Username) == "" {
			res.addErr("sources.email.username is required when email is enabled")
		}
		if len(out.Sources.Email.SearchSubjectAny) == 0 {
			res.addWarn("sources.email.search_subject_any is empty; email scraping may find nothing")
		}
	}

	if out.Search.UserEmail == "" {
		res.addWarn("search.user_email is empty; export filename will use the default identity")
	}

	return out, res
}

// Validate is the fatal-only form used at run startup.
func Validate(cfg Config) (Config, error) {
	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		return out, errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
	}
	return out, nil
}
