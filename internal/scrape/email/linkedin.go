package email

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobsweep/internal/scrape/util"
)

// AlertJob is one job card parsed out of a LinkedIn job-alert email.
type AlertJob struct {
	Title    string
	Company  string
	Location string
	URL      string
	SourceID string // parsed from /jobs/view/<id>
}

var reJobID = regexp.MustCompile(`/jobs/view/(\d+)`)

// ParseAlertHTML merges multiple anchors pointing to the same job id, so the
// logo anchor (empty text) doesn't shadow the card anchor that carries the
// title.
func ParseAlertHTML(html string) ([]AlertJob, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	byID := map[string]*AlertJob{} // key: linkedin:<jobid> or url fallback
	var order []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}

		lh := strings.ToLower(href)
		if !(strings.Contains(lh, "/jobs/view/") || strings.Contains(lh, "/comm/jobs/view/")) {
			return
		}
		if !strings.Contains(lh, "linkedin.com") {
			return
		}

		jobURL := unwrapRedirect(href)
		if jobURL == "" {
			return
		}

		sourceID := linkedinSourceID(jobURL)
		key := sourceID
		if key == "" {
			key = jobURL
		}

		j, ok := byID[key]
		if !ok {
			j = &AlertJob{URL: jobURL, SourceID: sourceID}
			byID[key] = j
			order = append(order, key)
		}

		titleCand := stripAlertJunk(util.CleanText(a.Text()))
		if betterTitle(titleCand, j.Title) {
			j.Title = titleCand
		}

		// Company · Location usually sits in a <p> inside the card container.
		card := a.Closest("table")
		if card.Length() == 0 {
			card = a.Closest("tr")
		}
		if card.Length() == 0 {
			card = a.Parent()
		}
		card.Find("p").Each(func(_ int, p *goquery.Selection) {
			t := util.CleanText(p.Text())
			if t == "" {
				return
			}
			if j.Company == "" && j.Location == "" && strings.Contains(t, " · ") {
				parts := strings.SplitN(t, " · ", 2)
				j.Company = strings.TrimSpace(parts[0])
				j.Location = strings.TrimSpace(parts[1])
			}
			t2 := stripAlertJunk(t)
			if betterTitle(t2, j.Title) && !strings.Contains(t2, " · ") {
				j.Title = t2
			}
		})
	})

	// Emit only valid jobs (must have URL + Title), in first-seen order.
	out := make([]AlertJob, 0, len(byID))
	for _, key := range order {
		j := byID[key]
		if strings.TrimSpace(j.URL) == "" || strings.TrimSpace(j.Title) == "" {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func linkedinSourceID(jobURL string) string {
	if m := reJobID.FindStringSubmatch(jobURL); len(m) == 2 {
		return "linkedin:" + m[1]
	}
	return ""
}

func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	// tracking wrapper with url= param
	if raw := u.Query().Get("url"); raw != "" {
		if uu, err := url.Parse(raw); err == nil && uu.Host != "" {
			return uu.String()
		}
	}

	if u.Host != "" {
		return u.String()
	}
	return href
}

func stripAlertJunk(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// common LinkedIn email junk that gets appended
	bads := []string{
		"Actively recruiting",
		"Easy Apply",
		"Promoted",
	}
	for _, b := range bads {
		s = strings.TrimSpace(strings.ReplaceAll(s, b, ""))
	}
	low := strings.ToLower(s)
	if strings.Contains(low, "alumni") ||
		strings.Contains(low, "connections") ||
		strings.Contains(low, "applicants") {
		return ""
	}
	return strings.Join(strings.Fields(s), " ")
}

func betterTitle(candidate, current string) bool {
	c := strings.TrimSpace(candidate)
	if c == "" {
		return false
	}
	return len(c) > len(strings.TrimSpace(current))
}
