package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Salary bounds in thousands of dollars; lower bound inclusive, upper exclusive
const (
	SalaryLowMin  = 80
	SalaryLowMax  = 200
	SalaryHighMin = 200
	SalaryHighMax = 350
)

// US state abbreviations that mark a location as US-based
var USStates = []string{"NY", "CA", "TX", "WA", "MA", "CO", "IL", "DC", "GA", "OR"}

var salaryRangePattern = regexp.MustCompile(`^\$(\d+)k - \$(\d+)k$`)

// FormatSalaryRange renders bounds given in thousands as "$<low>k - $<high>k"
func FormatSalaryRange(low, high int) string {
	return fmt.Sprintf("$%dk - $%dk", low, high)
}

// ParseSalaryRange extracts the low and high bounds (in thousands) from a range string
func ParseSalaryRange(salary string) (int, int, error) {
	m := salaryRangePattern.FindStringSubmatch(strings.TrimSpace(salary))
	if m == nil {
		return 0, 0, fmt.Errorf("invalid salary range %q", salary)
	}
	low, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid salary low bound %q: %w", m[1], err)
	}
	high, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid salary high bound %q: %w", m[2], err)
	}
	return low, high, nil
}

// ExtractNumericValue returns the midpoint of a salary range in dollars, or 0 if it can't be parsed
func ExtractNumericValue(salary string) int {
	low, high, err := ParseSalaryRange(salary)
	if err != nil {
		return 0
	}
	return (low + high) * 1000 / 2
}

// FormatSalary formats a dollar amount with comma separators
func FormatSalary(value int) string {
	return fmt.Sprintf("$%s", humanize.Comma(int64(value)))
}

// IsUSBased reports whether a location is a non-remote US city
func IsUSBased(location string) bool {
	if location == "Remote" {
		return false
	}
	for _, state := range USStates {
		if strings.Contains(location, state) {
			return true
		}
	}
	return false
}
