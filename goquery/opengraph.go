package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/tidwall/gjson"
)

// minContentLength filters out stub descriptions ("Log in", "Facebook")
// that meta tags carry on walled pages.
const minContentLength = 10

var _ polis.Strategy = (*OpenGraph)(nil)

// OpenGraph extracts the fields most HTML pages expose through Open Graph
// and related meta tags: title, description, publish date, and JSON-LD
// author attribution. It applies to any HTML document variant.
type OpenGraph struct{}

// NewOpenGraph creates the strategy.
func NewOpenGraph() *OpenGraph {
	return &OpenGraph{}
}

// Name identifies the strategy in logs.
func (s *OpenGraph) Name() string { return "opengraph" }

// Parse extracts meta-tag fields from the document.
func (s *OpenGraph) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	d := newDocument(doc.Body)
	if d == nil {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	if title := metaProperty(d, "og:title"); title != "" {
		bag.Set(polis.FieldTitle, title)
	}
	if content := description(d); content != "" {
		bag.Set(polis.FieldContent, content)
	}
	if date := publishDate(d); date != "" {
		bag.Set(polis.FieldPublishDate, date)
	}
	if author := jsonLDAuthor(d); author != "" {
		bag.Set(polis.FieldAuthor, author)
	}
	if ogType := metaProperty(d, "og:type"); strings.Contains(strings.ToLower(ogType), "video") {
		bag.Set(polis.FieldIsVideo, true)
	}
	return bag, nil
}

// description tries the Open Graph, Twitter, and plain description tags in
// order, skipping stubs shorter than minContentLength.
func description(d *goquery.Document) string {
	for _, content := range []string{
		metaProperty(d, "og:description"),
		metaName(d, "twitter:description"),
		metaName(d, "description"),
	} {
		if len(content) > minContentLength {
			return content
		}
	}
	return ""
}

// publishDate tries the article meta tags, then JSON-LD structured data.
func publishDate(d *goquery.Document) string {
	if date := metaProperty(d, "article:published_time"); date != "" {
		return date
	}
	if date := metaProperty(d, "og:updated_time"); date != "" {
		return date
	}
	return jsonLDField(d, "datePublished", "dateCreated")
}

// jsonLDAuthor returns the author name from the first JSON-LD block that
// carries one.
func jsonLDAuthor(d *goquery.Document) string {
	var author string
	eachJSONLD(d, func(blob string) bool {
		author = gjson.Get(blob, "author.name").String()
		return author == ""
	})
	return author
}

// jsonLDField returns the first of the named fields found in any JSON-LD
// block, in document order.
func jsonLDField(d *goquery.Document, fields ...string) string {
	var value string
	eachJSONLD(d, func(blob string) bool {
		for _, field := range fields {
			if v := gjson.Get(blob, field).String(); v != "" {
				value = v
				return false
			}
		}
		return true
	})
	return value
}

// eachJSONLD invokes fn with every valid JSON-LD script blob until fn
// returns false.
func eachJSONLD(d *goquery.Document, fn func(blob string) bool) {
	d.Find(`script[type='application/ld+json']`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		blob := sel.Text()
		if !gjson.Valid(blob) {
			return true
		}
		return fn(blob)
	})
}
