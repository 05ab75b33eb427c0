package platform

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
)

var _ polis.ExtractorRegistry = (*Registry)(nil)

// Registry maps platforms to their extractors and resolves a URL to the
// extractor responsible for it.
type Registry struct {
	extractors map[polis.Platform]polis.Extractor
}

// NewRegistry creates a Registry holding the given extractors.
func NewRegistry(extractors ...polis.Extractor) *Registry {
	r := &Registry{
		extractors: make(map[polis.Platform]polis.Extractor, len(extractors)),
	}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor, replacing any previous one for its platform.
func (r *Registry) Register(e polis.Extractor) {
	r.extractors[e.Platform()] = e
}

// Resolve returns the extractor responsible for url.
func (r *Registry) Resolve(rawurl string) (polis.Extractor, error) {
	platform := Detect(rawurl)
	if platform == polis.PlatformUnknown {
		return nil, polis.Errorf(polis.EUNSUPPORTED, "no supported platform matches %q", rawurl)
	}
	e, ok := r.extractors[platform]
	if !ok {
		return nil, polis.Errorf(polis.EUNSUPPORTED, "platform %s is not registered", platform)
	}
	return e, nil
}

// Get returns the extractor for a specific platform, or nil.
func (r *Registry) Get(platform polis.Platform) polis.Extractor {
	return r.extractors[platform]
}

// List returns all registered platforms.
func (r *Registry) List() []polis.Platform {
	platforms := make([]polis.Platform, 0, len(r.extractors))
	for p := range r.extractors {
		platforms = append(platforms, p)
	}
	return platforms
}
