package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skillscout/internal/model"
)

const arbeitnowBaseURL = "https://www.arbeitnow.com/api/job-board-api"

// arbeitnowJob represents a single job in the Arbeitnow API response.
type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	Location    string   `json:"location"`
	CreatedAt   int64    `json:"created_at"` // unix seconds
}

// arbeitnowResponse is the top-level Arbeitnow job board API response.
type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

// ArbeitnowAdapter fetches the full Arbeitnow listing and filters locally:
// the board API has no search parameter.
type ArbeitnowAdapter struct {
	baseURL string
	window  time.Duration
	client  *http.Client
}

// NewArbeitnowAdapter creates an adapter for the Arbeitnow board.
func NewArbeitnowAdapter(client *http.Client, window time.Duration) *ArbeitnowAdapter {
	return &ArbeitnowAdapter{
		baseURL: arbeitnowBaseURL,
		window:  window,
		client:  client,
	}
}

func (a *ArbeitnowAdapter) Name() string { return "arbeitnow" }

// Fetch retrieves the current listing page and keeps postings whose title or
// tags mention the skill and which fall inside the recency window.
func (a *ArbeitnowAdapter) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	var resp arbeitnowResponse
	if err := getJSON(ctx, a.client, a.baseURL, &resp); err != nil {
		return nil, fmt.Errorf("arbeitnow fetch for %q: %w", skill, err)
	}

	postings := make([]model.JobPosting, 0, len(resp.Data))
	for _, aj := range resp.Data {
		var postedAt *time.Time
		if aj.CreatedAt > 0 {
			t := time.Unix(aj.CreatedAt, 0)
			postedAt = &t
		}

		p := model.JobPosting{
			Title:    aj.Title,
			Company:  aj.CompanyName,
			Location: aj.Location,
			URL:      aj.URL,
			PostedAt: postedAt,
			Skill:    skill,
			Source:   a.Name(),
		}.Normalize()

		secondary := strings.Join(aj.Tags, " ") + " " + aj.Description
		if keep(p, skill, secondary, a.window) {
			postings = append(postings, p)
		}
	}

	return postings, nil
}
