package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Snapshot is what a rendered dashboard currently shows
type Snapshot struct {
	TotalJobs   int
	USJobs      int
	RemoteJobs  int
	LastUpdated int
	// PreviewCount is the number of .job-item fragments in the jobs container
	PreviewCount int
	UpdatedAt    string
}

// Inspect reads the counters, preview fragments and timestamp back out of a
// dashboard document.
func Inspect(doc string) (Snapshot, error) {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse document: %w", err)
	}

	var snap Snapshot
	counters := []struct {
		id  string
		dst *int
	}{
		{TotalJobsID, &snap.TotalJobs},
		{USJobsID, &snap.USJobs},
		{RemoteJobsID, &snap.RemoteJobs},
		{LastUpdatedID, &snap.LastUpdated},
	}
	for _, c := range counters {
		sel := page.Find("#" + c.id).First()
		if sel.Length() == 0 {
			return Snapshot{}, fmt.Errorf("counter #%s not found", c.id)
		}
		value, err := strconv.Atoi(strings.TrimSpace(sel.Text()))
		if err != nil {
			return Snapshot{}, fmt.Errorf("counter #%s is not a number: %w", c.id, err)
		}
		*c.dst = value
	}

	container := page.Find("#" + ContainerID).First()
	if container.Length() == 0 {
		return Snapshot{}, fmt.Errorf("container #%s not found", ContainerID)
	}
	snap.PreviewCount = container.Find(".job-item").Length()
	snap.UpdatedAt = strings.TrimSpace(page.Find("#" + TimestampID).First().Text())

	return snap, nil
}

// InspectFile reads a dashboard document from disk and inspects it
func InspectFile(path string) (Snapshot, error) {
	doc, err := readDocument(path)
	if err != nil {
		return Snapshot{}, err
	}
	return Inspect(doc)
}
