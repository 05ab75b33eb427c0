package trafilatura

import (
	"strings"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ polis.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull readable article content and
// metadata out of news and blog pages.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	text := result.ContentText
	if text == "" && result.ContentNode != nil {
		text = nodeText(result.ContentNode)
	}

	article := &polis.Article{
		Title:  result.Metadata.Title,
		Author: result.Metadata.Author,
		Text:   text,
	}
	if !result.Metadata.Date.IsZero() {
		article.Published = result.Metadata.Date.Format(time.RFC3339)
	}
	return article, nil
}

// nodeText flattens a parsed content tree into plain text.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
