package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"

	"skillscout/internal/model"
)

// SourceLimiter rate-limits outbound requests per job-board source. All
// fetchers in a run share one instance, so concurrent queries for different
// skills against the same board are spaced out.
type SourceLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewSourceLimiter creates a limiter allowing reqPerSec requests with the
// given burst per source.
func NewSourceLimiter(reqPerSec float64, burst int) *SourceLimiter {
	if burst < 1 {
		burst = 1
	}
	return &SourceLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (l *SourceLimiter) limiterFor(source string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.m[source]; ok {
		return lim
	}
	lim := rate.NewLimiter(l.r, l.b)
	l.m[source] = lim
	return lim
}

// Wait blocks until the source's limiter admits a request or ctx is done.
func (l *SourceLimiter) Wait(ctx context.Context, source string) error {
	if err := l.limiterFor(source).Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait for %s: %w", source, err)
	}
	return nil
}

// LimitedFetcher is a decorator that waits on the shared source limiter
// before delegating to the wrapped Fetcher.
type LimitedFetcher struct {
	inner   model.Fetcher
	limiter *SourceLimiter
}

// NewLimitedFetcher wraps a Fetcher with source-level rate limiting.
func NewLimitedFetcher(inner model.Fetcher, limiter *SourceLimiter) *LimitedFetcher {
	return &LimitedFetcher{inner: inner, limiter: limiter}
}

func (f *LimitedFetcher) Name() string { return f.inner.Name() }

// Fetch waits for the limiter to admit the request, then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, skill string) ([]model.JobPosting, error) {
	if err := f.limiter.Wait(ctx, f.inner.Name()); err != nil {
		return nil, err
	}
	return f.inner.Fetch(ctx, skill)
}
