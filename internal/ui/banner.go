package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/fr4nk3nst1ner/jobdash/internal/utils"
	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗ ██████╗  █████╗ ███████╗██╗  ██╗
     ██║██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝██║  ██║
     ██║██║   ██║██████╔╝██║  ██║███████║███████╗███████║
██   ██║██║   ██║██╔══██╗██║  ██║██╔══██║╚════██║██╔══██║
╚█████╔╝╚██████╔╝██████╔╝██████╔╝██║  ██║███████║██║  ██║
 ╚════╝  ╚═════╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝
 @fr4nk3nst1ner
`

// ColorizeText fades each line of text between two random colors
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	randomRGB := func() pterm.RGB {
		return pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	}
	from, to := randomRGB(), randomRGB()

	lines := strings.Split(text, "\n")
	steps := float32(len(lines) - 1)
	if steps < 1 {
		steps = 1
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = from.Fade(0, steps, float32(i), to).Sprint(line)
	}
	return strings.Join(lines, "\n")
}

// PrintBanner displays the application banner
func PrintBanner(silence bool) {
	if !silence {
		fmt.Println(ColorizeText(bannerText))
	}
}

// ColorizeSalary colors a salary range by its midpoint
func ColorizeSalary(salary string) string {
	midpoint := utils.ExtractNumericValue(salary)
	if midpoint == 0 {
		return pterm.Red("Not Available")
	}

	switch {
	case midpoint >= 250000:
		return pterm.Green(salary)
	case midpoint >= 200000:
		return pterm.LightGreen(salary)
	case midpoint >= 150000:
		return pterm.Yellow(salary)
	default:
		return pterm.Red(salary)
	}
}

// NewProgressBar starts a generation progress bar on w, or returns nil when silenced
func NewProgressBar(total int, w io.Writer, silence bool) *pb.ProgressBar {
	if silence || total == 0 {
		return nil
	}
	return pb.New(total).SetWriter(w).Start()
}

// PrintSummary prints the status lines for a completed render
func PrintSummary(summary models.Summary, path string) {
	pterm.Success.Println("HTML file updated successfully!")
	pterm.Info.Printfln("Total jobs: %s", humanize.Comma(int64(summary.TotalJobs)))
	pterm.Info.Printfln("US jobs: %s", humanize.Comma(int64(summary.USJobs)))
	pterm.Info.Printfln("Remote jobs: %s", humanize.Comma(int64(summary.RemoteJobs)))
	pterm.Info.Printfln("Last updated: %s", summary.UpdatedAt)

	if summary.CountersReplaced == 0 {
		pterm.Warning.Printfln("No counter placeholders found in %s", path)
	}
	if !summary.ContainerReplaced {
		pterm.Warning.Printfln("No #jobs-container element found in %s", path)
	}
	if !summary.TimestampReplaced {
		pterm.Warning.Printfln("No #update-time span found in %s", path)
	}
}

// PrintPreview lists the records shown on the dashboard with colorized salaries
func PrintPreview(records []models.JobRecord, limit int, now time.Time) {
	if limit > len(records) {
		limit = len(records)
	}
	if limit < 0 {
		limit = 0
	}
	for _, job := range records[:limit] {
		posted := job.PostedDate
		if t, err := time.ParseInLocation("2006-01-02", job.PostedDate, now.Location()); err == nil {
			posted = humanize.RelTime(t, now, "ago", "from now")
		}
		fmt.Println(previewLine(job, posted))
	}
}

// previewLine formats one job for the console, with the salary midpoint
func previewLine(job models.JobRecord, posted string) string {
	midpoint := "n/a"
	if value := utils.ExtractNumericValue(job.SalaryRange); value > 0 {
		midpoint = utils.FormatSalary(value)
	}
	return fmt.Sprintf("  #%-3d %-26s %-16s %-18s %s (mid %s, posted %s)",
		job.ID, job.Title, job.Company, job.Location, ColorizeSalary(job.SalaryRange), midpoint, posted)
}
