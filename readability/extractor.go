package readability

import (
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	polis "github.com/kennycode-git/polis-metadata-tool"
)

var _ polis.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to pull readable article content out of
// news and blog pages. Used as the fallback when trafilatura yields
// nothing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article content.
func (e *Extractor) Extract(rawHTML string) (*polis.Article, error) {
	if rawHTML == "" {
		return nil, polis.Errorf(polis.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	out := &polis.Article{
		Title:  article.Title,
		Author: article.Byline,
		Text:   strings.TrimSpace(article.TextContent),
	}
	if article.PublishedTime != nil {
		out.Published = article.PublishedTime.Format(time.RFC3339)
	}
	return out, nil
}
