package notify

import (
	"log/slog"

	"skillscout/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes scan results to the given logger as structured messages.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that logs the scan outcome via slog.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the run summary and each posting. Returns nil (stdout logging
// does not fail).
func (n *LogNotifier) Notify(run model.ScanRun, postings []model.JobPosting) error {
	n.logger.Info("scan results",
		"run", run.ID,
		"skills", run.Skills,
		"jobs", len(postings),
	)
	for _, p := range postings {
		args := []any{"company", p.Company, "title", p.Title, "location", p.Location, "skill", p.Skill, "url", p.URL}
		if p.PostedAt != nil {
			args = append(args, "posted_at", *p.PostedAt)
		}
		n.logger.Info("job match", args...)
	}
	return nil
}
