package mock

import (
	"context"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

var _ polis.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of polis.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (polis.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (polis.RawDocument, error) {
	return f.FetchFn(ctx, url)
}

var _ polis.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of polis.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(html string) (*polis.Article, error)
}

func (e *ArticleExtractor) Extract(html string) (*polis.Article, error) {
	return e.ExtractFn(html)
}
