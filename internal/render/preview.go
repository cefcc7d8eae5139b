package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultPreviewLimit is how many records are shown in the jobs container
const DefaultPreviewLimit = 10

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// previewSanitizer only lets through the div/class markup of job fragments
func previewSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div")
		policy.AllowAttrs("class").OnElements("div")
		fragmentPolicy = policy
	})
	return fragmentPolicy
}

// previewRecords returns the first limit records, or all of them if fewer
func previewRecords(records []models.JobRecord, limit int) []models.JobRecord {
	if limit < 0 {
		limit = 0
	}
	if len(records) < limit {
		return records
	}
	return records[:limit]
}

func locationClass(job models.JobRecord) string {
	if job.IsRemote {
		return "remote"
	}
	return "onsite"
}

// renderFragment formats one job record as a preview fragment
func renderFragment(job models.JobRecord) string {
	fragment := fmt.Sprintf(`
        <div class="job-item %s">
            <div class="job-title">%s</div>
            <div class="job-company">%s</div>
            <div class="job-location">%s • %s</div>
        </div>
        `,
		locationClass(job),
		html.EscapeString(job.Title),
		html.EscapeString(job.Company),
		html.EscapeString(job.Location),
		html.EscapeString(job.SalaryRange),
	)
	return previewSanitizer().Sanitize(fragment)
}

// renderPreview concatenates the fragments for the first limit records
func renderPreview(records []models.JobRecord, limit int) (string, int) {
	shown := previewRecords(records, limit)
	var b strings.Builder
	for _, job := range shown {
		b.WriteString(renderFragment(job))
	}
	return b.String(), len(shown)
}
