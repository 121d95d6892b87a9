package model

import (
	"context"
	"time"
)

// Defaults applied when a source omits an optional field.
const (
	DefaultTitle    = "Untitled role"
	DefaultCompany  = "Unknown"
	DefaultLocation = "Remote"
)

// JobPosting is the unified representation of a job listing from any source.
// The URL is the posting's identity: two postings with the same URL are the
// same real-world job even if other fields differ.
type JobPosting struct {
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	URL      string     `json:"url"`
	PostedAt *time.Time `json:"date"` // nullable (not all sources provide this)
	Skill    string     `json:"skill"`
	Source   string     `json:"-"` // source name, for logs and storage
}

// Normalize fills in defaults for fields the source left empty.
func (p JobPosting) Normalize() JobPosting {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.Company == "" {
		p.Company = DefaultCompany
	}
	if p.Location == "" {
		p.Location = DefaultLocation
	}
	return p
}

// Fetcher issues one outbound query for a skill term and maps the source's
// native response into JobPostings. Implementations apply their own relevance
// and recency filtering before returning.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, skill string) ([]JobPosting, error)
}

// ScanRun records one pipeline run over a document.
type ScanRun struct {
	ID        string
	Skills    []string
	JobCount  int
	CreatedAt time.Time
}

// RunStore persists scan runs and their postings.
type RunStore interface {
	SaveRun(run ScanRun, postings []JobPosting) error
	ListRuns(limit int) ([]ScanRun, error)
	RunPostings(runID string) ([]JobPosting, error)
	Close() error
}

// Notifier delivers the outcome of a scan.
type Notifier interface {
	Notify(run ScanRun, postings []JobPosting) error
}
