package mock

import (
	"context"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

var _ polis.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of polis.Extractor.
type Extractor struct {
	PlatformFn         func() polis.Platform
	ValidateURLFn      func(url string) bool
	FetchFn            func(ctx context.Context, url string) ([]polis.RawDocument, error)
	StrategiesFn       func() []polis.Strategy
	TargetIdentifierFn func(url string) string
}

func (e *Extractor) Platform() polis.Platform {
	return e.PlatformFn()
}

func (e *Extractor) ValidateURL(url string) bool {
	return e.ValidateURLFn(url)
}

func (e *Extractor) Fetch(ctx context.Context, url string) ([]polis.RawDocument, error) {
	return e.FetchFn(ctx, url)
}

func (e *Extractor) Strategies() []polis.Strategy {
	return e.StrategiesFn()
}

func (e *Extractor) TargetIdentifier(url string) string {
	if e.TargetIdentifierFn == nil {
		return ""
	}
	return e.TargetIdentifierFn(url)
}

var _ polis.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of polis.ExtractorRegistry.
type ExtractorRegistry struct {
	ResolveFn func(url string) (polis.Extractor, error)
	GetFn     func(platform polis.Platform) polis.Extractor
	ListFn    func() []polis.Platform
}

func (r *ExtractorRegistry) Resolve(url string) (polis.Extractor, error) {
	return r.ResolveFn(url)
}

func (r *ExtractorRegistry) Get(platform polis.Platform) polis.Extractor {
	return r.GetFn(platform)
}

func (r *ExtractorRegistry) List() []polis.Platform {
	return r.ListFn()
}
