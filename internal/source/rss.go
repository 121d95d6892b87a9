package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"skillscout/internal/model"
)

// RSSAdapter reads configured RSS/Atom job feeds. Feeds have no search
// parameter, so the skill filter is applied locally per item.
type RSSAdapter struct {
	feeds  []string
	window time.Duration
	parser *gofeed.Parser
}

// NewRSSAdapter creates an adapter over one or more job feed URLs.
func NewRSSAdapter(feeds []string, client *http.Client, window time.Duration) *RSSAdapter {
	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = userAgent
	return &RSSAdapter{
		feeds:  feeds,
		window: window,
		parser: parser,
	}
}

func (a *RSSAdapter) Name() string { return "rss" }

// Fetch parses every configured feed and keeps items mentioning the skill.
// Feeds are read sequentially: concurrency lives in the aggregation engine,
// one level up.
func (a *RSSAdapter) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	var postings []model.JobPosting
	for _, feedURL := range a.feeds {
		feed, err := a.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return nil, fmt.Errorf("rss fetch %s for %q: %w", feedURL, skill, err)
		}

		for _, item := range feed.Items {
			p := model.JobPosting{
				Title:    item.Title,
				Company:  itemAuthor(item),
				URL:      item.Link,
				PostedAt: itemPublishedTime(item),
				Skill:    skill,
				Source:   a.Name(),
			}.Normalize()

			secondary := item.Description + " " + strings.Join(item.Categories, " ")
			if keep(p, skill, secondary, a.window) {
				postings = append(postings, p)
			}
		}
	}

	return postings, nil
}

func itemAuthor(item *gofeed.Item) string {
	if item.Author != nil {
		return item.Author.Name
	}
	return ""
}

func itemPublishedTime(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	return item.UpdatedParsed
}
