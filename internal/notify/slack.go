package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"skillscout/internal/model"
)

// Ensure SlackNotifier implements model.Notifier.
var _ model.Notifier = (*SlackNotifier)(nil)

// slackMaxJobs caps how many postings one webhook message lists.
const slackMaxJobs = 10

// SlackNotifier posts a scan summary to a Slack channel via Incoming Webhooks.
type SlackNotifier struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSlackNotifier returns a notifier that posts scan results to Slack.
func NewSlackNotifier(webhookURL string, httpClient *http.Client, logger *slog.Logger) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Notify sends one summary message per scan. The top postings are listed
// inline; the rest are summarized by count.
func (s *SlackNotifier) Notify(run model.ScanRun, postings []model.JobPosting) error {
	payload := buildPayload(run, postings)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	resp, err := s.httpClient.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned %d", resp.StatusCode)
	}

	s.logger.Info("slack notification sent", "run", run.ID, "jobs", len(postings))
	return nil
}

// Block Kit payload types.

type slackPayload struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func buildPayload(run model.ScanRun, postings []model.JobPosting) slackPayload {
	header := fmt.Sprintf("🔎 %d matching jobs for %s", len(postings), strings.Join(run.Skills, ", "))

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{Type: "plain_text", Text: header},
		},
	}

	shown := postings
	if len(shown) > slackMaxJobs {
		shown = shown[:slackMaxJobs]
	}
	for _, p := range shown {
		line := fmt.Sprintf("<%s|%s> — %s · %s · _%s_", p.URL, p.Title, p.Company, p.Location, p.Skill)
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: line},
		})
	}

	if rest := len(postings) - len(shown); rest > 0 {
		blocks = append(blocks, slackBlock{
			Type: "section",
			Text: &slackText{Type: "mrkdwn", Text: fmt.Sprintf("…and %d more", rest)},
		})
	}

	return slackPayload{Blocks: blocks}
}
