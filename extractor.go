package polis

import (
	"context"

	"github.com/cespare/xxhash/v2"
)

// RawDocument is an opaque fetched payload (HTML text, JSON blob, or API
// response) plus a label identifying its acquisition variant.
type RawDocument struct {
	// Variant labels how the document was acquired, e.g. "desktop",
	// "mobile", "api", "profile".
	Variant string

	// URL is the address the document was fetched from.
	URL string

	// Body is the raw payload text.
	Body string
}

// Checksum returns a stable content hash of the document body, used for
// variant deduplication and debug logging.
func (d RawDocument) Checksum() uint64 {
	return xxhash.Sum64String(d.Body)
}

// Strategy is a unit of per-site knowledge that attempts to produce a
// partial field set from one raw document. A strategy that does not apply
// to the document returns an empty bag and a nil error; errors are reserved
// for unexpected faults and never abort a cascade.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Parse attempts to extract fields from the document.
	Parse(doc RawDocument) (FieldBag, error)
}

// TargetedStrategy is a Strategy that can disambiguate among multiple
// co-mingled data blocks in one document by proximity to a known content
// identifier. The cascade engine prefers ParseNear when a target identifier
// is available.
type TargetedStrategy interface {
	Strategy

	// ParseNear extracts fields from the data block nearest to targetID.
	ParseNear(doc RawDocument, targetID string) (FieldBag, error)
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc struct {
	StrategyName string
	Fn           func(doc RawDocument) (FieldBag, error)
}

// Name returns the strategy name.
func (s StrategyFunc) Name() string { return s.StrategyName }

// Parse invokes the wrapped function.
func (s StrategyFunc) Parse(doc RawDocument) (FieldBag, error) { return s.Fn(doc) }

// Fetcher retrieves one raw document. Implementations hide the acquisition
// mechanism (plain HTTP, official API, external subprocess).
type Fetcher interface {
	// Fetch retrieves the document at url. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (RawDocument, error)
}

// Extractor is the capability set every platform source implements.
// Dispatch over the closed platform set happens via a registry lookup, not
// type switches.
type Extractor interface {
	// Platform returns the platform tag this extractor serves.
	Platform() Platform

	// ValidateURL reports whether url matches this platform's post URL
	// shapes.
	ValidateURL(url string) bool

	// Fetch retrieves one or more raw document variants for url, in
	// cascade priority order. Failing variants are skipped; Fetch errors
	// only when no variant could be acquired.
	Fetch(ctx context.Context, url string) ([]RawDocument, error)

	// Strategies returns the parsing strategies for this platform in
	// priority order.
	Strategies() []Strategy

	// TargetIdentifier returns the content identifier embedded in url,
	// used to disambiguate co-mingled metric blocks. Empty when the
	// platform has no such identifier.
	TargetIdentifier(url string) string
}

// ExtractorRegistry resolves an extractor for a URL.
type ExtractorRegistry interface {
	// Resolve returns the extractor responsible for url. Returns
	// EUNSUPPORTED if no registered platform matches.
	Resolve(url string) (Extractor, error)

	// Get returns the extractor for a specific platform, or nil.
	Get(platform Platform) Extractor

	// List returns all registered platforms.
	List() []Platform
}
