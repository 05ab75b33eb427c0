// Package retry wraps a Fetcher with bounded exponential backoff for
// transient network failures. Access, not-found, validation, and rate-limit
// failures are never retried; retrying those either cannot help or makes
// the rate limiting worse.
package retry

import (
	"context"
	"log/slog"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// DefaultDelays returns the backoff delays between attempts: 1s, 2s, 4s.
func DefaultDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Backoff returns n exponentially growing delays starting at 1s.
func Backoff(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	for i := 0; i < n; i++ {
		delays = append(delays, time.Second<<i)
	}
	return delays
}

// Ensure Fetcher implements polis.Fetcher at compile time.
var _ polis.Fetcher = (*Fetcher)(nil)

// Fetcher retries the wrapped fetcher on transient failures. With N delays
// configured it makes at most N+1 attempts.
type Fetcher struct {
	next   polis.Fetcher
	delays []time.Duration
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithDelays sets the backoff delays between attempts. Defaults to
// DefaultDelays.
func WithDelays(delays []time.Duration) Option {
	return func(f *Fetcher) { f.delays = delays }
}

// WithLogger enables per-retry logging.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = logger }
}

// NewFetcher wraps next with retry behavior.
func NewFetcher(next polis.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:   next,
		delays: DefaultDelays(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch delegates to the wrapped fetcher, retrying transient failures with
// backoff until the attempts are exhausted or the context is cancelled.
func (f *Fetcher) Fetch(ctx context.Context, url string) (polis.RawDocument, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		doc, err := f.next.Fetch(ctx, url)
		if err == nil {
			return doc, nil
		}
		lastErr = err

		if !retryable(err) || attempt == len(f.delays) {
			break
		}

		f.logger.Warn("fetch failed, retrying",
			"url", url,
			"attempt", attempt+1,
			"delay", f.delays[attempt],
			"err", err,
		)
		select {
		case <-time.After(f.delays[attempt]):
		case <-ctx.Done():
			return polis.RawDocument{}, lastErr
		}
	}
	return polis.RawDocument{}, lastErr
}

// retryable reports whether another attempt could plausibly succeed.
func retryable(err error) bool {
	return polis.ErrorCode(err) == polis.ENETWORK
}
