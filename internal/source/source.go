// Package source contains one adapter per job-board integration. Each adapter
// issues a single outbound query for a skill term, maps the board's native
// response into the unified JobPosting model, and keeps only postings that
// are relevant to the skill and recent enough.
package source

import (
	"strings"
	"time"

	"skillscout/internal/model"
)

// timeNow is the clock used for recency checks. Overridable in tests.
var timeNow = time.Now

// relevant reports whether the skill term appears (case-insensitive
// substring) in the posting title or in the source's secondary text field
// (tags, category, description).
func relevant(skill, title, secondary string) bool {
	needle := strings.ToLower(skill)
	return strings.Contains(strings.ToLower(title), needle) ||
		strings.Contains(strings.ToLower(secondary), needle)
}

// recent reports whether postedAt falls within the recency window of the
// current time. The comparison is inclusive: a posting aged exactly the
// window is kept. A nil timestamp is never recent.
func recent(postedAt *time.Time, window time.Duration) bool {
	if postedAt == nil {
		return false
	}
	return timeNow().Sub(*postedAt) <= window
}

// keep applies the shared relevance and recency filter for one posting.
func keep(p model.JobPosting, skill, secondary string, window time.Duration) bool {
	return relevant(skill, p.Title, secondary) && recent(p.PostedAt, window)
}

// dateLayouts are the timestamp formats seen across the integrated boards.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// parseDate parses a source-provided date string. Returns nil when the value
// is missing or matches none of the known layouts; such postings are treated
// as not recent rather than erroring.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
