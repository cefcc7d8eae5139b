package render

import (
	"os"
	"time"

	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/pterm/pterm"
)

// Renderer rewrites the placeholder regions of a dashboard document
type Renderer struct {
	Path         string
	PreviewLimit int
	Now          func() time.Time
	Logger       *pterm.Logger
}

// NewRenderer creates a renderer for the document at path with default settings
func NewRenderer(path string) *Renderer {
	if path == "" {
		path = DefaultDocument
	}
	return &Renderer{
		Path:         path,
		PreviewLimit: DefaultPreviewLimit,
		Now:          time.Now,
	}
}

// Render computes the batch statistics and writes them, the preview list and
// the current timestamp into the document.
func (r *Renderer) Render(records []models.JobRecord) (models.Summary, error) {
	// Check before locking so a missing document doesn't leave a lock file behind
	if _, err := os.Stat(r.Path); err != nil {
		return models.Summary{}, &DocumentError{Op: "read", Path: r.Path, Cause: err}
	}

	lock, err := lockDocument(r.Path)
	if err != nil {
		return models.Summary{}, err
	}
	defer func() {
		if err := unlockDocument(lock, r.Path); err != nil {
			r.debug("failed to release document lock", "path", r.Path, "error", err)
		}
	}()

	doc, err := readDocument(r.Path)
	if err != nil {
		return models.Summary{}, err
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	updated, summary := r.apply(doc, records, now())
	r.debug("document rewritten",
		"path", r.Path,
		"counters", summary.CountersReplaced,
		"container", summary.ContainerReplaced,
		"timestamp", summary.TimestampReplaced,
	)

	if err := writeDocument(r.Path, updated); err != nil {
		return models.Summary{}, err
	}
	return summary, nil
}

// apply performs every substitution on the in-memory document
func (r *Renderer) apply(doc string, records []models.JobRecord, now time.Time) (string, models.Summary) {
	stats := models.ComputeStats(records)
	preview, shown := renderPreview(records, r.PreviewLimit)

	summary := models.Summary{
		Stats:        stats,
		PreviewCount: shown,
		UpdatedAt:    now.Format(TimestampLayout),
	}

	counters := []struct {
		id    string
		value int
	}{
		{TotalJobsID, stats.TotalJobs},
		{USJobsID, stats.USJobs},
		{RemoteJobsID, stats.RemoteJobs},
		{LastUpdatedID, stats.TotalJobs},
	}
	for _, c := range counters {
		var n int
		doc, n = replaceCounter(doc, c.id, c.value)
		summary.CountersReplaced += n
	}

	doc, summary.ContainerReplaced = replaceInner(doc, ContainerID, preview)
	doc, summary.TimestampReplaced = replaceTimestamp(doc, summary.UpdatedAt)

	return doc, summary
}

func (r *Renderer) debug(msg string, args ...any) {
	if r.Logger == nil {
		return
	}
	r.Logger.Debug(msg, r.Logger.Args(args...))
}
