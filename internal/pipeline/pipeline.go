// Package pipeline owns the full scan cycle for one document: skill
// matching, source aggregation, dedup, ranking, and persistence.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"skillscout/internal/aggregate"
	"skillscout/internal/match"
	"skillscout/internal/model"
)

// Result is the outcome of one scan. An empty Jobs list is a valid result,
// not an error.
type Result struct {
	RunID  string             `json:"run_id"`
	Skills []string           `json:"skills"`
	Jobs   []model.JobPosting `json:"jobs"`

	// Failures counts (skill, source) calls that failed and were excluded.
	Failures int `json:"-"`
}

// Pipeline wires the matcher, the aggregation engine, and the run store.
type Pipeline struct {
	matcher *match.SkillMatcher
	engine  *aggregate.Engine
	store   model.RunStore
	logger  *slog.Logger
}

// New creates a pipeline wired with all its dependencies.
func New(matcher *match.SkillMatcher, engine *aggregate.Engine, store model.RunStore, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		matcher: matcher,
		engine:  engine,
		store:   store,
		logger:  logger,
	}
}

// Run scans the document text and returns the deduplicated, recency-ranked
// postings for every matched skill. Per-source failures are logged and
// excluded; only errors outside that isolation boundary (e.g. persisting the
// run) are returned.
func (p *Pipeline) Run(ctx context.Context, text string) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	skills := p.matcher.Match(text)
	result := &Result{
		RunID:  runID,
		Skills: skills,
		Jobs:   []model.JobPosting{},
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}

	if len(skills) > 0 {
		working, failures := p.engine.Aggregate(ctx, skills)
		result.Jobs = aggregate.Rank(aggregate.Dedupe(working))
		result.Failures = len(failures)
	}

	run := model.ScanRun{
		ID:        runID,
		Skills:    result.Skills,
		JobCount:  len(result.Jobs),
		CreatedAt: time.Now().UTC(),
	}
	if err := p.store.SaveRun(run, result.Jobs); err != nil {
		return nil, fmt.Errorf("scan %s: saving run: %w", runID, err)
	}

	p.logger.Info("scan complete",
		"run", runID,
		"skills", len(result.Skills),
		"jobs", len(result.Jobs),
		"failed_calls", result.Failures,
		"took", time.Since(start).Round(time.Millisecond).String(),
	)

	return result, nil
}
