// Package generator builds batches of synthetic job listings for the dashboard.
package generator

import (
	"math/rand"
	"time"

	"github.com/fr4nk3nst1ner/jobdash/internal/models"
	"github.com/fr4nk3nst1ner/jobdash/internal/utils"
)

const (
	// DefaultCount is the number of records generated per run
	DefaultCount = 25
	// DefaultOnsiteBias is the chance an onsite listing is forced to a city location
	DefaultOnsiteBias = 0.8
	maxPostedAgeDays  = 30
)

var companies = []string{
	"TechCorp", "InnovateSoft", "DataFlow", "CloudTech", "DevWorks",
	"CodeCraft", "ByteLogic", "FutureSystems", "SmartSolutions", "DigitalDynamics",
}

var jobTitles = []string{
	"Software Engineer", "Data Scientist", "DevOps Engineer", "Frontend Developer",
	"Backend Developer", "Full Stack Developer", "Machine Learning Engineer",
	"Product Manager", "UX Designer", "QA Engineer", "System Administrator",
	"Cloud Architect", "Security Engineer", "Mobile Developer", "Data Engineer",
}

var locations = []string{
	"New York, NY", "San Francisco, CA", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Denver, CO", "Chicago, IL", "Los Angeles, CA",
	models.RemoteLocation, "Washington, DC", "Atlanta, GA", "Portland, OR",
}

// onsiteLocations is the location vocabulary without the remote entry
var onsiteLocations = func() []string {
	var out []string
	for _, loc := range locations {
		if loc != models.RemoteLocation {
			out = append(out, loc)
		}
	}
	return out
}()

// Options controls batch generation. Rand and Now default to a time-seeded
// source and time.Now when nil.
type Options struct {
	Count      int
	OnsiteBias float64
	Rand       *rand.Rand
	Now        func() time.Time
	// OnRecord is called after each record is built
	OnRecord func(models.JobRecord)
}

// Generate produces an ordered batch of job records with ids 1..Count
func Generate(opts Options) []models.JobRecord {
	count := opts.Count
	if count < 0 {
		count = 0
	}
	random := opts.Rand
	if random == nil {
		random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	today := now()

	jobs := make([]models.JobRecord, 0, count)
	for i := 0; i < count; i++ {
		job := newRecord(i+1, random, today, opts.OnsiteBias)
		jobs = append(jobs, job)
		if opts.OnRecord != nil {
			opts.OnRecord(job)
		}
	}
	return jobs
}

func newRecord(id int, random *rand.Rand, today time.Time, onsiteBias float64) models.JobRecord {
	isRemote := random.Intn(2) == 0

	location := models.RemoteLocation
	if !isRemote {
		location = pick(random, locations)
		// Bias onsite listings toward US cities
		if random.Float64() < onsiteBias {
			location = pick(random, onsiteLocations)
		}
	}

	low := utils.SalaryLowMin + random.Intn(utils.SalaryLowMax-utils.SalaryLowMin)
	high := utils.SalaryHighMin + random.Intn(utils.SalaryHighMax-utils.SalaryHighMin)
	posted := today.AddDate(0, 0, -random.Intn(maxPostedAgeDays+1))

	return models.JobRecord{
		ID:          id,
		Title:       pick(random, jobTitles),
		Company:     pick(random, companies),
		Location:    location,
		SalaryRange: utils.FormatSalaryRange(low, high),
		PostedDate:  posted.Format("2006-01-02"),
		// Derived from the final location so "Remote" and IsRemote always agree
		IsRemote:  location == models.RemoteLocation,
		IsUSBased: utils.IsUSBased(location),
	}
}

func pick(random *rand.Rand, values []string) string {
	return values[random.Intn(len(values))]
}
