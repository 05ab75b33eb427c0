package trafilatura_test

import (
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ polis.ArticleExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, polis.EINVALID, polis.ErrorCode(err))
	})

	t.Run("extracts the article title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Markets Rally - Example News</title>
<meta property="og:title" content="Markets Rally After Announcement">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Markets Rally After Announcement</h1>
<p>Stocks climbed sharply on Tuesday after the central bank announcement.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		article, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, article.Title)
	})

	t.Run("extracts the body and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/world">World</a></nav>
<article>
<h1>Markets Rally</h1>
<p>Stocks climbed sharply on Tuesday after the central bank announcement surprised analysts.</p>
<p>Trading volume reached a six-month high across all major exchanges.</p>
</article>
<aside>Most read stories</aside>
<footer>Copyright 2024 Example News</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		article, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, article.Text, "climbed sharply on Tuesday")
		assert.NotContains(t, article.Text, "Copyright 2024 Example News")
	})

	t.Run("extracts author and date metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Markets Rally</title>
<meta name="author" content="Jane Reporter">
<meta property="article:published_time" content="2024-05-08T10:00:00Z">
</head>
<body>
<article>
<p>Stocks climbed sharply on Tuesday after the central bank announcement surprised analysts.</p>
<p>Trading volume reached a six-month high across all major exchanges.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		article, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, article.Author, "Jane Reporter")
		assert.Contains(t, article.Published, "2024-05-08")
	})
}
