package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"skillscout/internal/model"
)

const (
	hnBaseURL     = "https://hn.algolia.com/api/v1"
	hnHitsPerPage = 50
)

// hnHit represents a single job story in the Algolia search response.
type hnHit struct {
	ObjectID  string `json:"objectID"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	StoryText string `json:"story_text"`
	CreatedAt string `json:"created_at"`
}

// hnResponse is the top-level Algolia search response.
type hnResponse struct {
	Hits []hnHit `json:"hits"`
}

// HackerNewsAdapter searches Hacker News job stories through the Algolia API.
type HackerNewsAdapter struct {
	baseURL string
	window  time.Duration
	client  *http.Client
}

// NewHackerNewsAdapter creates an adapter for Hacker News job postings.
func NewHackerNewsAdapter(client *http.Client, window time.Duration) *HackerNewsAdapter {
	return &HackerNewsAdapter{
		baseURL: hnBaseURL,
		window:  window,
		client:  client,
	}
}

func (a *HackerNewsAdapter) Name() string { return "hackernews" }

// Fetch searches recent job stories for the skill. HN job stories carry no
// company or location fields, so those fall back to the model defaults.
func (a *HackerNewsAdapter) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	endpoint := fmt.Sprintf("%s/search_by_date?query=%s&tags=job&hitsPerPage=%d",
		a.baseURL, url.QueryEscape(skill), hnHitsPerPage)

	var resp hnResponse
	if err := getJSON(ctx, a.client, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("hackernews fetch for %q: %w", skill, err)
	}

	postings := make([]model.JobPosting, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		postingURL := hit.URL
		if postingURL == "" {
			postingURL = "https://news.ycombinator.com/item?id=" + hit.ObjectID
		}

		p := model.JobPosting{
			Title:    hit.Title,
			URL:      postingURL,
			PostedAt: parseDate(hit.CreatedAt),
			Skill:    skill,
			Source:   a.Name(),
		}.Normalize()

		if keep(p, skill, hit.StoryText, a.window) {
			postings = append(postings, p)
		}
	}

	return postings, nil
}
