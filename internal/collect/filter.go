package collect

import (
	"strings"
	"time"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

// ShouldKeep runs the filter chain against one posting. All filters must
// pass; the returned reason names the first filter that rejected.
func ShouldKeep(cfg config.Config, today time.Time, p domain.JobPosting) (keep bool, reason string) {
	// 1) Title must mention at least one search term (unless disabled)
	if !cfg.Filters.SkipTitleMatch && !titleMatchesAny(p.Title, cfg.Search.Terms) {
		return false, "no_keyword_match"
	}

	// 2) Recency window
	if p.DatePosted == nil {
		if !cfg.Filters.KeepUndated {
			return false, "no_date"
		}
	} else if daysOld(today, *p.DatePosted) > cfg.Search.MaxDaysOld {
		return false, "too_old"
	}

	// 3) Target region, with remote always accepted
	if !passesLocation(cfg.Search.TargetState, p) {
		return false, "location"
	}

	return true, ""
}

func titleMatchesAny(title string, terms []string) bool {
	low := strings.ToLower(title)
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" && strings.Contains(low, t) {
			return true
		}
	}
	return false
}

func passesLocation(targetState string, p domain.JobPosting) bool {
	if p.IsRemote {
		return true
	}
	return NormalizedState(p) == targetState
}

// NormalizedState returns the upper-cased, trimmed state field, or the
// placeholder when the posting carries no location.
func NormalizedState(p domain.JobPosting) string {
	if p.Location == nil {
		return domain.PlaceholderUnknown
	}
	s := strings.ToUpper(strings.TrimSpace(p.Location.State))
	if s == "" {
		return domain.PlaceholderUnknown
	}
	return s
}

// daysOld is calendar-day arithmetic: a posting from yesterday is 1 day old
// no matter the wall-clock times involved.
func daysOld(today, posted time.Time) int {
	return int(midnight(today).Sub(midnight(posted)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
