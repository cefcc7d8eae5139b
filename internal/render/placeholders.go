package render

import (
	"fmt"
	"regexp"
	"strconv"
)

// Element ids of the counter placeholders, in the order they appear on the dashboard
const (
	TotalJobsID   = "total-jobs"
	USJobsID      = "us-jobs"
	RemoteJobsID  = "remote-jobs"
	LastUpdatedID = "last-updated"

	ContainerID = "jobs-container"
	TimestampID = "update-time"

	// TimestampLayout formats the "last updated" span
	TimestampLayout = "2006-01-02 15:04:05"
	neverUpdated    = "Never"
)

// counterPattern matches `id="<id>">N<` where N is the initial 0 or a count
// left by a previous run.
func counterPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(`id="` + regexp.QuoteMeta(id) + `">\d+<`)
}

var timestampPattern = regexp.MustCompile(
	`<span id="` + TimestampID + `">(?:` + neverUpdated + `|\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})</span>`,
)

// replaceCounter sets every occurrence of the counter with the given id to
// value and reports how many were replaced.
func replaceCounter(doc, id string, value int) (string, int) {
	re := counterPattern(id)
	matches := len(re.FindAllStringIndex(doc, -1))
	if matches == 0 {
		return doc, 0
	}
	replacement := fmt.Sprintf(`id="%s">%s<`, id, strconv.Itoa(value))
	return re.ReplaceAllLiteralString(doc, replacement), matches
}

// replaceTimestamp writes stamp into the update-time span
func replaceTimestamp(doc, stamp string) (string, bool) {
	if !timestampPattern.MatchString(doc) {
		return doc, false
	}
	replacement := fmt.Sprintf(`<span id="%s">%s</span>`, TimestampID, stamp)
	return timestampPattern.ReplaceAllLiteralString(doc, replacement), true
}
