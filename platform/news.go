package platform

import (
	"context"
	"net/url"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisgoquery "github.com/kennycode-git/polis-metadata-tool/goquery"
)

// VariantNewsHTML labels the single page rendition news extraction uses.
const VariantNewsHTML = "html"

var _ polis.Extractor = (*News)(nil)

// News extracts article metadata from news and blog pages. It has no
// platform API: readable content comes from article extraction libraries
// applied in cascade order, with meta tags filling the gaps.
type News struct {
	fetcher  polis.Fetcher
	articles []polis.ArticleExtractor
}

// NewNews creates the extractor. Article extractors are tried in order;
// the first to produce text wins each field.
func NewNews(fetcher polis.Fetcher, articles ...polis.ArticleExtractor) *News {
	return &News{fetcher: fetcher, articles: articles}
}

// Platform returns the platform tag.
func (n *News) Platform() polis.Platform { return polis.PlatformNews }

// ValidateURL reports whether url is an absolute web address. Domain
// routing already happened in the registry; any fetchable page qualifies.
func (n *News) ValidateURL(rawurl string) bool {
	u, err := url.Parse(NormalizeURL(rawurl))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Hostname() != ""
}

// TargetIdentifier returns empty: article pages carry a single story.
func (n *News) TargetIdentifier(string) string { return "" }

// Fetch retrieves the page.
func (n *News) Fetch(ctx context.Context, rawurl string) ([]polis.RawDocument, error) {
	doc, err := n.fetcher.Fetch(ctx, NormalizeURL(rawurl))
	if err != nil {
		return nil, err
	}
	return []polis.RawDocument{doc}, nil
}

// Strategies returns the parsing strategies in priority order.
func (n *News) Strategies() []polis.Strategy {
	strategies := make([]polis.Strategy, 0, len(n.articles)+1)
	for _, a := range n.articles {
		strategies = append(strategies, &articleStrategy{extractor: a})
	}
	return append(strategies, polisgoquery.NewOpenGraph())
}

var _ polis.Strategy = (*articleStrategy)(nil)

// articleStrategy adapts an ArticleExtractor to the strategy contract.
type articleStrategy struct {
	extractor polis.ArticleExtractor
}

// Name identifies the strategy in logs.
func (s *articleStrategy) Name() string { return "article" }

// Parse extracts readable article fields from the page.
func (s *articleStrategy) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantNewsHTML {
		return polis.FieldBag{}, nil
	}

	article, err := s.extractor.Extract(doc.Body)
	if err != nil {
		return nil, err
	}

	bag := polis.FieldBag{}
	if article.Title != "" {
		bag.Set(polis.FieldTitle, article.Title)
	}
	if article.Author != "" {
		bag.Set(polis.FieldAuthor, article.Author)
	}
	if article.Text != "" {
		bag.Set(polis.FieldContent, article.Text)
	}
	if article.Published != "" {
		bag.Set(polis.FieldPublishDate, article.Published)
	}
	return bag, nil
}
