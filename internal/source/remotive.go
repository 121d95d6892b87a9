package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skillscout/internal/model"
)

const (
	remotiveBaseURL   = "https://remotive.com/api/remote-jobs"
	remotivePageLimit = 50
)

// remotiveJob represents a single job in the Remotive API response.
type remotiveJob struct {
	ID                        int64    `json:"id"`
	URL                       string   `json:"url"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	Category                  string   `json:"category"`
	Tags                      []string `json:"tags"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	PublicationDate           string   `json:"publication_date"`
}

// remotiveResponse is the top-level Remotive jobs API response.
type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// RemotiveAdapter queries the Remotive remote-jobs API, which supports a
// native search parameter.
type RemotiveAdapter struct {
	baseURL string
	window  time.Duration
	client  *http.Client
}

// NewRemotiveAdapter creates an adapter for the Remotive board.
func NewRemotiveAdapter(client *http.Client, window time.Duration) *RemotiveAdapter {
	return &RemotiveAdapter{
		baseURL: remotiveBaseURL,
		window:  window,
		client:  client,
	}
}

func (a *RemotiveAdapter) Name() string { return "remotive" }

// Fetch issues one search query for the skill and normalizes the matching,
// recent postings into the unified model.
func (a *RemotiveAdapter) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	endpoint := fmt.Sprintf("%s?search=%s&limit=%d", a.baseURL, url.QueryEscape(skill), remotivePageLimit)

	var resp remotiveResponse
	if err := getJSON(ctx, a.client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("remotive fetch for %q: %w", skill, err)
	}

	postings := make([]model.JobPosting, 0, len(resp.Jobs))
	for _, rj := range resp.Jobs {
		p := model.JobPosting{
			Title:    rj.Title,
			Company:  rj.CompanyName,
			Location: rj.CandidateRequiredLocation,
			URL:      rj.URL,
			PostedAt: parseDate(rj.PublicationDate),
			Skill:    skill,
			Source:   a.Name(),
		}.Normalize()

		secondary := rj.Category + " " + strings.Join(rj.Tags, " ")
		if keep(p, skill, secondary, a.window) {
			postings = append(postings, p)
		}
	}

	return postings, nil
}
