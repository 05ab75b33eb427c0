package slog

import (
	"context"
	"log/slog"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// Ensure LoggingExtractor implements polis.Extractor.
var _ polis.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging on the operations that
// touch the network.
type LoggingExtractor struct {
	next   polis.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next polis.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Platform delegates to the wrapped extractor.
func (e *LoggingExtractor) Platform() polis.Platform {
	return e.next.Platform()
}

// ValidateURL delegates to the wrapped extractor.
func (e *LoggingExtractor) ValidateURL(url string) bool {
	return e.next.ValidateURL(url)
}

// Fetch delegates to the wrapped extractor and logs the acquisition.
func (e *LoggingExtractor) Fetch(ctx context.Context, url string) (docs []polis.RawDocument, err error) {
	defer func(begin time.Time) {
		e.logger.Info("document acquisition",
			"platform", e.next.Platform(),
			"url", url,
			"variants", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Fetch(ctx, url)
}

// Strategies delegates to the wrapped extractor.
func (e *LoggingExtractor) Strategies() []polis.Strategy {
	return e.next.Strategies()
}

// TargetIdentifier delegates to the wrapped extractor.
func (e *LoggingExtractor) TargetIdentifier(url string) string {
	return e.next.TargetIdentifier(url)
}
