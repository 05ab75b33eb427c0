package slog

import (
	"log/slog"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// Ensure LoggingRegistry implements polis.ExtractorRegistry.
var _ polis.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// platform resolution.
type LoggingRegistry struct {
	next   polis.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next polis.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Resolve resolves the extractor for url and logs the detected platform.
func (r *LoggingRegistry) Resolve(url string) (polis.Extractor, error) {
	extractor, err := r.next.Resolve(url)
	platform := "(unknown)"
	if extractor != nil {
		platform = string(extractor.Platform())
	}
	r.logger.Debug("platform resolution",
		"url", url,
		"platform", platform,
		"err", err,
	)
	return extractor, err
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(platform polis.Platform) polis.Extractor {
	return r.next.Get(platform)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []polis.Platform {
	return r.next.List()
}
