package lever

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsweep/internal/domain"
)

func TestMapCommitment(t *testing.T) {
	tests := []struct {
		in   string
		want domain.JobType
	}{
		{"Full-time", domain.JobTypeFullTime},
		{"full time", domain.JobTypeFullTime},
		{"Part-time", domain.JobTypePartTime},
		{"Contract", domain.JobTypeContract},
		{"Internship", domain.JobTypeInternship},
		{"Freelance", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapCommitment(tt.in), "input %q", tt.in)
	}
}

func TestHTMLToText(t *testing.T) {
	got := htmlToText("<div><p>Build   CRM</p>\n<ul><li>integrations</li></ul></div>")
	assert.Equal(t, "Build CRM integrations", got)
	assert.Empty(t, htmlToText(""))
}

func TestScrapeMapsPostings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": "ab12",
				"text": "CRM Manager",
				"hostedUrl": "https://jobs.lever.co/zenco/ab12",
				"createdAt": 1756166400000,
				"categories": {"location": "New York, NY", "commitment": "Full-time"},
				"description": "<p>Own the CRM stack.</p>"
			},
			{
				"id": "cd34",
				"text": "Support Lead",
				"hostedUrl": "https://jobs.lever.co/zenco/cd34",
				"categories": {"location": "Remote"}
			}
		]`))
	}))
	defer srv.Close()

	// redirect api.lever.co at the test server
	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	s := New(Config{Companies: []Company{{Slug: "zenco", Name: "Zenco"}}}, nil)
	s.hc = &http.Client{Transport: rewriteHost{host: base.Host}}

	jobs, err := s.Scrape(context.Background(), "CRM Manager", 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, "lever:zenco:ab12", first.ID)
	assert.Equal(t, "CRM Manager", first.Title)
	assert.Equal(t, "Zenco", first.CompanyName)
	assert.Equal(t, "Own the CRM stack.", first.Description)
	require.NotNil(t, first.DatePosted)
	assert.Equal(t, time.UnixMilli(1756166400000).UTC(), first.DatePosted.UTC())
	require.NotNil(t, first.Location)
	assert.Equal(t, "NY", first.Location.State)
	require.NotNil(t, first.JobType)
	assert.Equal(t, domain.JobTypeFullTime, *first.JobType)
	assert.False(t, first.IsRemote)

	second := jobs[1]
	assert.Nil(t, second.DatePosted)
	assert.True(t, second.IsRemote)
}

type rewriteHost struct {
	host string
	next http.RoundTripper
}

func (rt rewriteHost) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = rt.host
	next := rt.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req)
}
