package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"skillscout/internal/model"
)

const wwrBaseURL = "https://weworkremotely.com"

// WeWorkRemotelyAdapter scrapes the We Work Remotely search results page.
// The site has no public JSON API, so listings are parsed out of the HTML.
type WeWorkRemotelyAdapter struct {
	baseURL string
	window  time.Duration
	client  *http.Client
}

// NewWeWorkRemotelyAdapter creates an adapter for the We Work Remotely board.
func NewWeWorkRemotelyAdapter(client *http.Client, window time.Duration) *WeWorkRemotelyAdapter {
	return &WeWorkRemotelyAdapter{
		baseURL: wwrBaseURL,
		window:  window,
		client:  client,
	}
}

func (a *WeWorkRemotelyAdapter) Name() string { return "weworkremotely" }

// Fetch runs one search for the skill and parses the listing items. Items
// without a parseable <time datetime> attribute are treated as not recent.
func (a *WeWorkRemotelyAdapter) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	endpoint := fmt.Sprintf("%s/remote-jobs/search?term=%s", a.baseURL, url.QueryEscape(skill))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch for %q: %w", skill, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch for %q: %w", skill, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("weworkremotely fetch for %q: unexpected status %d", skill, resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("weworkremotely fetch for %q: %w", skill, err)
	}

	var postings []model.JobPosting
	doc.Find("section.jobs li").Each(func(_ int, sel *goquery.Selection) {
		link := sel.Find(`a[href^="/remote-jobs/"]`).First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		var postedAt *time.Time
		if datetime, ok := sel.Find("time").Attr("datetime"); ok {
			postedAt = parseDate(datetime)
		}

		p := model.JobPosting{
			Title:    cleanText(sel.Find("span.title").Text()),
			Company:  cleanText(sel.Find("span.company").First().Text()),
			Location: cleanText(sel.Find("span.region").Text()),
			URL:      a.baseURL + href,
			PostedAt: postedAt,
			Skill:    skill,
			Source:   a.Name(),
		}.Normalize()

		// The whole listing item text doubles as the secondary match field:
		// WWR folds category and tags into it.
		if keep(p, skill, sel.Text(), a.window) {
			postings = append(postings, p)
		}
	})

	return postings, nil
}

// cleanText collapses the whitespace goquery leaves behind around nested tags.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
