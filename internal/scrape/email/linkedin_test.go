package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alertFixture = `
<html><body>
<table>
  <tr>
    <td><a href="https://www.linkedin.com/comm/jobs/view/111222333/?trackingId=abc"><img src="logo.png"/></a></td>
    <td>
      <a href="https://www.linkedin.com/comm/jobs/view/111222333/?trackingId=abc">Senior CRM Manager</a>
      <p>Acme Corp · New York, NY</p>
      <p>Actively recruiting</p>
    </td>
  </tr>
</table>
<table>
  <tr>
    <td>
      <a href="https://www.linkedin.com/jobs/view/444555666/">Automation Engineer</a>
      <p>Zenco · Remote</p>
    </td>
  </tr>
</table>
<a href="https://www.linkedin.com/jobs/search/">See all jobs</a>
<a href="https://example.com/jobs/view/999">Not LinkedIn</a>
</body></html>`

func TestParseAlertHTML(t *testing.T) {
	jobs, err := ParseAlertHTML(alertFixture)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	first := jobs[0]
	assert.Equal(t, "linkedin:111222333", first.SourceID)
	assert.Equal(t, "Senior CRM Manager", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "New York, NY", first.Location)
	assert.Contains(t, first.URL, "/jobs/view/111222333")

	second := jobs[1]
	assert.Equal(t, "linkedin:444555666", second.SourceID)
	assert.Equal(t, "Automation Engineer", second.Title)
	assert.Equal(t, "Zenco", second.Company)
	assert.Equal(t, "Remote", second.Location)
}

func TestParseAlertHTMLMergesAnchorsByJobID(t *testing.T) {
	jobs, err := ParseAlertHTML(alertFixture)
	require.NoError(t, err)

	ids := map[string]int{}
	for _, j := range jobs {
		ids[j.SourceID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "job %s emitted more than once", id)
	}
}

func TestParseAlertHTMLDropsTitleless(t *testing.T) {
	jobs, err := ParseAlertHTML(`
<a href="https://www.linkedin.com/jobs/view/777/"><img src="logo.png"/></a>`)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestStripAlertJunk(t *testing.T) {
	assert.Equal(t, "CRM Manager", stripAlertJunk("CRM Manager Easy Apply"))
	assert.Equal(t, "CRM Manager", stripAlertJunk("  CRM   Manager  Promoted "))
	assert.Empty(t, stripAlertJunk("12 connections work here"))
	assert.Empty(t, stripAlertJunk("Actively recruiting"))
}

func TestUnwrapRedirect(t *testing.T) {
	assert.Equal(t,
		"https://www.linkedin.com/jobs/view/123/",
		unwrapRedirect("https://tracker.example/redirect?url=https%3A%2F%2Fwww.linkedin.com%2Fjobs%2Fview%2F123%2F"))
	assert.Equal(t,
		"https://www.linkedin.com/jobs/view/123/",
		unwrapRedirect("https://www.linkedin.com/jobs/view/123/"))
}
