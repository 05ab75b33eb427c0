// Package goquery provides HTML-document parsing strategies built on CSS
// selector queries over meta tags, structured data, and embedded script
// blobs. Strategies contribute nothing when a document carries none of the
// markers they look for.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// newDocument parses body into a queryable document. Returns nil when the
// body cannot be parsed at all, which callers treat as "no contribution".
func newDocument(body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	return doc
}

// metaProperty returns the content of the first <meta property=...> tag.
func metaProperty(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property='` + property + `']`).Attr("content")
	return strings.TrimSpace(content)
}

// metaName returns the content of the first <meta name=...> tag.
func metaName(doc *goquery.Document, name string) string {
	content, _ := doc.Find(`meta[name='` + name + `']`).Attr("content")
	return strings.TrimSpace(content)
}
