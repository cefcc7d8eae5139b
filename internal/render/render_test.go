package render

import (
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fr4nk3nst1ner/jobdash/internal/generator"
	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>Job Dashboard</title></head>
<body>
    <div class="stats">
        <div class="stat"><span class="value" id="total-jobs">0</span> Total Jobs</div>
        <div class="stat"><span class="value" id="us-jobs">0</span> US Jobs</div>
        <div class="stat"><span class="value" id="remote-jobs">0</span> Remote Jobs</div>
        <div class="stat"><span class="value" id="last-updated">0</span> Jobs Updated</div>
    </div>
    <p class="note">Showing 10 of 100 listings, 0 filters applied</p>
    <div id="jobs-container">
        <p class="empty">No jobs loaded yet</p>
    </div>
    <footer>Last updated: <span id="update-time">Never</span></footer>
</body>
</html>
`

var stampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func writeDashboard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func batch(n int, seed int64) []models.JobRecord {
	return generator.Generate(generator.Options{
		Count:      n,
		OnsiteBias: generator.DefaultOnsiteBias,
		Rand:       rand.New(rand.NewSource(seed)),
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRender_ReplacesAllRegions(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	jobs := batch(25, 1)
	stats := models.ComputeStats(jobs)

	r := NewRenderer(path)
	r.Now = func() time.Time { return time.Date(2026, 3, 15, 9, 5, 7, 0, time.Local) }

	summary, err := r.Render(jobs)
	require.NoError(t, err)
	assert.Equal(t, stats, summary.Stats)
	assert.Equal(t, 10, summary.PreviewCount)
	assert.Equal(t, 4, summary.CountersReplaced)
	assert.True(t, summary.ContainerReplaced)
	assert.True(t, summary.TimestampReplaced)
	assert.Equal(t, "2026-03-15 09:05:07", summary.UpdatedAt)

	snap, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, stats.TotalJobs, snap.TotalJobs)
	assert.Equal(t, stats.USJobs, snap.USJobs)
	assert.Equal(t, stats.RemoteJobs, snap.RemoteJobs)
	assert.Equal(t, stats.TotalJobs, snap.LastUpdated)
	assert.Equal(t, 10, snap.PreviewCount)
	assert.Equal(t, "2026-03-15 09:05:07", snap.UpdatedAt)
}

func TestRender_LeavesOtherZerosAlone(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	_, err := NewRenderer(path).Render(batch(25, 2))
	require.NoError(t, err)

	out := readFile(t, path)
	assert.Contains(t, out, "Showing 10 of 100 listings, 0 filters applied")
	assert.NotContains(t, out, `id="total-jobs">0<`)
}

func TestRender_PreservesBytesOutsideRegions(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	_, err := NewRenderer(path).Render(batch(25, 3))
	require.NoError(t, err)

	out := readFile(t, path)
	headEnd := strings.Index(dashboardHTML, `<div class="stat">`)
	assert.True(t, strings.HasPrefix(out, dashboardHTML[:headEnd]))
	footerTail := "</span></footer>\n</body>\n</html>\n"
	assert.True(t, strings.HasSuffix(out, footerTail))
	assert.NotContains(t, out, "No jobs loaded yet")
}

func TestRender_TimestampFormat(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	summary, err := NewRenderer(path).Render(batch(5, 4))
	require.NoError(t, err)
	assert.Regexp(t, stampPattern, summary.UpdatedAt)

	snap, err := InspectFile(path)
	require.NoError(t, err)
	assert.Regexp(t, stampPattern, snap.UpdatedAt)
}

func TestRender_PreviewCountForSmallBatch(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11} {
		path := writeDashboard(t, dashboardHTML)
		summary, err := NewRenderer(path).Render(batch(n, int64(n)))
		require.NoError(t, err)

		want := n
		if want > 10 {
			want = 10
		}
		assert.Equal(t, want, summary.PreviewCount)

		snap, err := InspectFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, snap.PreviewCount, "batch of %d", n)
	}
}

func TestRender_TwiceUsesSecondBatch(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	r := NewRenderer(path)

	_, err := r.Render(batch(25, 10))
	require.NoError(t, err)

	second := batch(12, 20)
	summary, err := r.Render(second)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.CountersReplaced)
	assert.True(t, summary.ContainerReplaced)
	assert.True(t, summary.TimestampReplaced)

	stats := models.ComputeStats(second)
	snap, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, stats.TotalJobs, snap.TotalJobs)
	assert.Equal(t, stats.USJobs, snap.USJobs)
	assert.Equal(t, stats.RemoteJobs, snap.RemoteJobs)
	assert.Equal(t, 10, snap.PreviewCount)

	page, err := goquery.NewDocumentFromReader(strings.NewReader(readFile(t, path)))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Find("#jobs-container").Length())
	assert.Equal(t, 1, page.Find("footer").Length())
	assert.Equal(t, second[0].Title, strings.TrimSpace(page.Find("#jobs-container .job-title").First().Text()))
}

func TestRender_ConcurrentRunsSerialize(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)

	sizes := []int{3, 8, 12, 25, 40, 6}
	batches := make([][]models.JobRecord, len(sizes))
	for i, n := range sizes {
		batches[i] = batch(n, int64(100+i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(batches))
	for _, jobs := range batches {
		wg.Add(1)
		go func(jobs []models.JobRecord) {
			defer wg.Done()
			_, err := NewRenderer(path).Render(jobs)
			errs <- err
		}(jobs)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snap, err := InspectFile(path)
	require.NoError(t, err)

	got := models.Stats{TotalJobs: snap.TotalJobs, USJobs: snap.USJobs, RemoteJobs: snap.RemoteJobs}
	var candidates []models.Stats
	for _, jobs := range batches {
		candidates = append(candidates, models.ComputeStats(jobs))
	}
	assert.Contains(t, candidates, got)
	assert.Equal(t, snap.TotalJobs, snap.LastUpdated)

	wantPreview := snap.TotalJobs
	if wantPreview > DefaultPreviewLimit {
		wantPreview = DefaultPreviewLimit
	}
	assert.Equal(t, wantPreview, snap.PreviewCount)

	page, err := goquery.NewDocumentFromReader(strings.NewReader(readFile(t, path)))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Find("#jobs-container").Length())
	assert.Equal(t, 1, page.Find("#update-time").Length())
	assert.Equal(t, 1, page.Find("footer").Length())
}

func TestRender_ReleasesLock(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	_, err := NewRenderer(path).Render(batch(5, 1))
	require.NoError(t, err)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	require.NoError(t, err)
	assert.True(t, locked)
	require.NoError(t, lock.Unlock())
}

func TestUnlockDocument(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	lock, err := lockDocument(path)
	require.NoError(t, err)
	assert.True(t, lock.Locked())

	require.NoError(t, unlockDocument(lock, path))
	assert.False(t, lock.Locked())
	// Releasing an already released lock is a no-op
	require.NoError(t, unlockDocument(lock, path))
}

func TestRender_MissingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	_, err := NewRenderer(path).Render(batch(3, 1))
	require.Error(t, err)

	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, "read", docErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to read document")

	_, statErr := os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(statErr))
}

func TestRender_DocumentWithoutPlaceholders(t *testing.T) {
	content := "<html><body><p>nothing to see</p></body></html>"
	path := writeDashboard(t, content)

	summary, err := NewRenderer(path).Render(batch(5, 1))
	require.NoError(t, err)
	assert.Zero(t, summary.CountersReplaced)
	assert.False(t, summary.ContainerReplaced)
	assert.False(t, summary.TimestampReplaced)
	assert.Equal(t, content, readFile(t, path))
}

func TestRender_KeepsFileMode(t *testing.T) {
	path := writeDashboard(t, dashboardHTML)
	require.NoError(t, os.Chmod(path, 0600))

	_, err := NewRenderer(path).Render(batch(5, 1))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer("")
	assert.Equal(t, DefaultDocument, r.Path)
	assert.Equal(t, DefaultPreviewLimit, r.PreviewLimit)
}
