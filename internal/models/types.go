package models

import (
	"fmt"

	"github.com/fr4nk3nst1ner/jobdash/internal/utils"
	"github.com/go-playground/validator/v10"
)

// RemoteLocation is the location string used for remote listings
const RemoteLocation = "Remote"

// JobRecord represents a single synthetic job listing
type JobRecord struct {
	ID          int    `json:"id" validate:"gt=0"`
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	SalaryRange string `json:"salary_range" validate:"required"`
	PostedDate  string `json:"posted_date" validate:"required,datetime=2006-01-02"`
	IsRemote    bool   `json:"is_remote"`
	IsUSBased   bool   `json:"is_us_based"`
}

// Stats holds the aggregate counts rendered into the dashboard
type Stats struct {
	TotalJobs  int `json:"total_jobs"`
	USJobs     int `json:"us_jobs"`
	RemoteJobs int `json:"remote_jobs"`
}

// ComputeStats counts total, US-based and remote records
func ComputeStats(records []JobRecord) Stats {
	stats := Stats{TotalJobs: len(records)}
	for _, r := range records {
		if r.IsUSBased {
			stats.USJobs++
		}
		if r.IsRemote {
			stats.RemoteJobs++
		}
	}
	return stats
}

// ValidateBatch checks every record's fields, that ids run 1..N in order and
// that salary bounds fall inside the generator's ranges.
func ValidateBatch(records []JobRecord) error {
	validate := validator.New()
	for i, r := range records {
		if err := validate.Struct(r); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		if r.ID != i+1 {
			return fmt.Errorf("record %d: expected id %d, got %d", i+1, i+1, r.ID)
		}
		low, high, err := utils.ParseSalaryRange(r.SalaryRange)
		if err != nil {
			return fmt.Errorf("record %d: %w", r.ID, err)
		}
		if low < utils.SalaryLowMin || low >= utils.SalaryLowMax {
			return fmt.Errorf("record %d: salary low bound %dk out of range", r.ID, low)
		}
		if high < utils.SalaryHighMin || high >= utils.SalaryHighMax {
			return fmt.Errorf("record %d: salary high bound %dk out of range", r.ID, high)
		}
		if r.IsRemote && r.IsUSBased {
			return fmt.Errorf("record %d: remote listing marked as US-based", r.ID)
		}
	}
	return nil
}

// Summary describes the outcome of a render run
type Summary struct {
	Stats
	PreviewCount int
	UpdatedAt    string

	// Which document regions were found and rewritten
	CountersReplaced  int
	ContainerReplaced bool
	TimestampReplaced bool
}
