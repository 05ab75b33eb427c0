// Package pipeline drives a single extraction run through its state
// machine: validate, rate-limit, fetch, cascade, normalize. Run returns a
// record pair for every input and never propagates an error or panic;
// total failures surface as a failed record with a captured message.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/cascade"
	"github.com/kennycode-git/polis-metadata-tool/derive"
	"github.com/kennycode-git/polis-metadata-tool/normalize"
	"golang.org/x/time/rate"
)

// State names the stages of one extraction run.
type State string

// Run states, in order. The terminal outcome is carried by the record
// pair's extraction status, not a state.
const (
	StatePending     State = "pending"
	StateValidated   State = "validated"
	StateRateLimited State = "rate_limited"
	StateFetching    State = "fetching"
	StateCascaded    State = "cascaded"
	StateNormalized  State = "normalized"
)

// DefaultBackoff is the pause taken after a rate-limit response before the
// run fails. There is no automatic retry.
const DefaultBackoff = 5 * time.Second

// Pipeline orchestrates extraction runs. Zero-value fields fall back to
// sensible defaults; only Registry is required.
type Pipeline struct {
	// Registry resolves a URL to its platform extractor.
	Registry polis.ExtractorRegistry

	// Cascade merges strategy results. Defaults to a bare runner.
	Cascade *cascade.Runner

	// Normalizer projects the merged bag into the record pair. Defaults
	// to a bare normalizer.
	Normalizer *normalize.Normalizer

	// Limiter paces runs: a politeness delay before the first external
	// call. Nil disables pacing.
	Limiter *rate.Limiter

	// Backoff is the pause after a rate-limit response. Defaults to
	// DefaultBackoff.
	Backoff time.Duration

	// Logger receives per-run progress events. Defaults to a discard
	// logger.
	Logger *slog.Logger
}

// Run extracts the record pair for one URL. It never returns an error and
// never panics: every failure mode terminates in a failed record pair with
// a human-readable message.
func (p *Pipeline) Run(ctx context.Context, url string) (post polis.PostRecord, op polis.OPRecord) {
	logger := p.logger().With("run_id", uuid.NewString(), "url", url)
	normalizer := p.normalizer()

	platform := polis.PlatformUnknown
	defer func() {
		if r := recover(); r != nil {
			logger.Error("run panicked", "panic", r)
			post, op = normalizer.FailedRecords(platform, url, fmt.Sprintf("internal fault: %v", r))
		}
	}()

	logger.Debug("run started", "state", StatePending)

	extractor, err := p.Registry.Resolve(url)
	if err != nil {
		return p.failed(logger, normalizer, platform, url, err)
	}
	platform = extractor.Platform()
	logger = logger.With("platform", platform)

	if !extractor.ValidateURL(url) {
		err := polis.Errorf(polis.EINVALID, "%q is not a valid %s post URL", url, platform)
		return p.failed(logger, normalizer, platform, url, err)
	}
	logger.Debug("url validated", "state", StateValidated)

	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return p.failed(logger, normalizer, platform, url, err)
		}
	}
	logger.Debug("politeness delay applied", "state", StateRateLimited)

	logger.Debug("fetching document variants", "state", StateFetching)
	docs, err := extractor.Fetch(ctx, url)
	if err != nil {
		if polis.ErrorCode(err) == polis.ERATELIMIT {
			// Back off so the next run is not rate limited too. This run
			// still fails; there is no automatic retry.
			logger.Warn("rate limited, backing off", "backoff", p.backoff())
			sleep(ctx, p.backoff())
		}
		return p.failed(logger, normalizer, platform, url, err)
	}

	bag := p.cascade().Run(docs, extractor.Strategies(), extractor.TargetIdentifier(url))
	logger.Debug("cascade complete", "state", StateCascaded, "fields", len(bag), "variants", len(docs))
	if len(bag) == 0 {
		err := polis.Errorf(polis.EPARSE, "no strategy produced any usable field from %d document variant(s)", len(docs))
		return p.failed(logger, normalizer, platform, url, err)
	}

	post, op = normalizer.Records(bag, platform, url, derive.PostID(), opID(bag))
	logger.Debug("records assembled", "state", StateNormalized, "status", post.Status)
	return post, op
}

// failed logs the terminal error and builds the failed record pair.
func (p *Pipeline) failed(logger *slog.Logger, n *normalize.Normalizer, platform polis.Platform, url string, err error) (polis.PostRecord, polis.OPRecord) {
	logger.Warn("run failed", "code", polis.ErrorCode(err), "err", err)
	return n.FailedRecords(platform, url, polis.ErrorMessage(err))
}

// opID derives the OP identifier from the author identity when one was
// extracted, so repeated extractions of the same author yield the same id.
func opID(bag polis.FieldBag) string {
	author, _ := bag.String(polis.FieldAuthor)
	return derive.OPID(author)
}

func (p *Pipeline) cascade() *cascade.Runner {
	if p.Cascade != nil {
		return p.Cascade
	}
	return &cascade.Runner{}
}

func (p *Pipeline) normalizer() *normalize.Normalizer {
	if p.Normalizer != nil {
		return p.Normalizer
	}
	return &normalize.Normalizer{}
}

func (p *Pipeline) backoff() time.Duration {
	if p.Backoff > 0 {
		return p.Backoff
	}
	return DefaultBackoff
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func sleep(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
