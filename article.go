package polis

// Article holds the readable content extracted from an HTML page, with
// boilerplate (nav, footer, ads) removed.
type Article struct {
	Title     string
	Author    string
	Text      string
	Published string
}

// ArticleExtractor extracts readable article content from raw HTML.
// Used by the news platform; implementations wrap content-extraction
// libraries and are tried in cascade order.
type ArticleExtractor interface {
	Extract(html string) (*Article, error)
}
