// Package aggregate fans skill queries out across all job-board sources,
// collects the results behind a settle-all barrier, and post-processes the
// working list (dedup by URL, rank by recency).
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"skillscout/internal/model"
)

// FetchError records one failed (skill, source) call. Failures are kept for
// diagnostics only; they never abort the aggregation.
type FetchError struct {
	Source string
	Skill  string
	Err    error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Source, e.Skill, e.Err)
}

func (e FetchError) Unwrap() error { return e.Err }

// Options tune the fan-out. Zero values mean no per-call timeout and
// unbounded concurrency.
type Options struct {
	Timeout       time.Duration // budget for a single (skill, source) call
	MaxConcurrent int           // cap on in-flight calls
}

// Engine runs one fetch per (skill, source) pair and waits for all of them
// to settle. A failing source degrades completeness but never cancels its
// siblings.
type Engine struct {
	fetchers []model.Fetcher
	opts     Options
	logger   *slog.Logger
}

// NewEngine creates an engine over the given fetchers.
func NewEngine(fetchers []model.Fetcher, opts Options, logger *slog.Logger) *Engine {
	return &Engine{
		fetchers: fetchers,
		opts:     opts,
		logger:   logger,
	}
}

// Aggregate issues |skills| x |fetchers| concurrent calls and concatenates
// the successful results. Each outcome lands in a slot indexed by submission
// order, so the returned working list is always ordered skill-major,
// source-minor regardless of completion order; downstream last-wins dedup is
// therefore deterministic.
func (e *Engine) Aggregate(ctx context.Context, skills []string) ([]model.JobPosting, []FetchError) {
	n := len(skills) * len(e.fetchers)
	results := make([][]model.JobPosting, n)
	errs := make([]error, n)

	var g errgroup.Group
	if e.opts.MaxConcurrent > 0 {
		g.SetLimit(e.opts.MaxConcurrent)
	}

	for si, skill := range skills {
		for fi, fetcher := range e.fetchers {
			skill, fetcher := skill, fetcher
			idx := si*len(e.fetchers) + fi
			g.Go(func() error {
				fctx := ctx
				if e.opts.Timeout > 0 {
					var cancel context.CancelFunc
					fctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
					defer cancel()
				}

				postings, err := fetcher.Fetch(fctx, skill)
				if err != nil {
					errs[idx] = err
					return nil // best-effort: a failed call must not cancel siblings
				}
				results[idx] = postings
				return nil
			})
		}
	}

	_ = g.Wait()

	var working []model.JobPosting
	var failures []FetchError
	for si, skill := range skills {
		for fi, fetcher := range e.fetchers {
			idx := si*len(e.fetchers) + fi
			if err := errs[idx]; err != nil {
				fe := FetchError{Source: fetcher.Name(), Skill: skill, Err: err}
				failures = append(failures, fe)
				e.logger.Warn("source query failed",
					"source", fe.Source,
					"skill", fe.Skill,
					"error", err,
				)
				continue
			}
			working = append(working, results[idx]...)
		}
	}

	return working, failures
}
