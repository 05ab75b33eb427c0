package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisgoquery "github.com/kennycode-git/polis-metadata-tool/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacebookTitle_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses the metrics-style og:title", func(t *testing.T) {
		t.Parallel()

		body := `<html><head>
			<meta property="og:title" content="1.2M views, 3.4K reactions | Cooking with fire | Chef Dana"/>
		</head></html>`

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "desktop", Body: body})
		require.NoError(t, err)

		views, _ := bag.Int(polis.FieldViews)
		likes, _ := bag.Int(polis.FieldLikes)
		title, _ := bag.String(polis.FieldTitle)
		author, _ := bag.String(polis.FieldAuthor)

		assert.Equal(t, 1200000, views)
		assert.Equal(t, 3400, likes)
		assert.Equal(t, "Cooking with fire", title)
		assert.Equal(t, "Chef Dana", author)
	})

	t.Run("prefers the GraphQL owner over og:title", func(t *testing.T) {
		t.Parallel()

		body := `<html><head>
			<meta property="og:title" content="Some Page - Community"/>
		</head><body><script>
			{"video_owner":{"__typename":"Page","id":"99","name":"Chef Dana Official"}}
		</script></body></html>`

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "desktop", Body: body})
		require.NoError(t, err)

		author, _ := bag.String(polis.FieldAuthor)
		assert.Equal(t, "Chef Dana Official", author)
	})

	t.Run("splits the plain og:title for the author", func(t *testing.T) {
		t.Parallel()

		body := `<html><head><meta property="og:title" content="Chef Dana - cooking again tonight"/></head></html>`

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "mobile", Body: body})
		require.NoError(t, err)

		author, _ := bag.String(polis.FieldAuthor)
		assert.Equal(t, "Chef Dana", author)
		assert.False(t, bag.Has(polis.FieldTitle))
	})

	t.Run("converts GraphQL timestamps", func(t *testing.T) {
		t.Parallel()

		body := `<html><body><script>{"publish_time": 1715155200}</script></body></html>`

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "desktop", Body: body})
		require.NoError(t, err)

		date, ok := bag.String(polis.FieldPublishDate)
		require.True(t, ok)
		assert.Contains(t, date, "2024-05-08")
	})

	t.Run("falls back to the URL path segment", func(t *testing.T) {
		t.Parallel()

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{
			Variant: "desktop",
			URL:     "https://www.facebook.com/chefdana/videos/123/",
			Body:    "<html></html>",
		})
		require.NoError(t, err)

		author, _ := bag.String(polis.FieldAuthor)
		assert.Equal(t, "chefdana", author)
	})

	t.Run("ignores reserved path segments", func(t *testing.T) {
		t.Parallel()

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{
			Variant: "desktop",
			URL:     "https://www.facebook.com/watch/?v=123",
			Body:    "<html></html>",
		})
		require.NoError(t, err)

		assert.False(t, bag.Has(polis.FieldAuthor))
	})

	t.Run("does not apply to other variants", func(t *testing.T) {
		t.Parallel()

		body := `<html><head><meta property="og:title" content="A - B"/></head></html>`

		strategy := polisgoquery.NewFacebookTitle()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "api", Body: body})
		require.NoError(t, err)

		assert.Empty(t, bag)
	})
}

func TestFacebookMetrics_ParseNear(t *testing.T) {
	t.Parallel()

	t.Run("attributes the block nearest the target id", func(t *testing.T) {
		t.Parallel()

		// Two videos on one page, each with its own feedback blob.
		body := fmt.Sprintf(
			`{"video":{"id":"111"},"feedback":{"total_comment_count":3,"likers":{"count":10}}}%s{"video":{"id":"222"},"feedback":{"total_comment_count":7,"likers":{"count":20}}}`,
			strings.Repeat(" ", 20000),
		)

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.ParseNear(polis.RawDocument{Variant: "desktop", Body: body}, "222")
		require.NoError(t, err)

		likes, _ := bag.Int(polis.FieldLikes)
		comments, _ := bag.Int(polis.FieldComments)

		assert.Equal(t, 20, likes)
		assert.Equal(t, 7, comments)
	})

	t.Run("finds counts buried deep inside the feedback block", func(t *testing.T) {
		t.Parallel()

		// Hundreds of sibling keys precede the comment count.
		filler := strings.Repeat(`"k":0,`, 150)
		body := fmt.Sprintf(
			`{"video":{"id":"333"},"feedback":{%s"total_comment_count":9,"likers":{"count":4}}}`,
			filler,
		)

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.ParseNear(polis.RawDocument{Variant: "desktop", Body: body}, "333")
		require.NoError(t, err)

		comments, _ := bag.Int(polis.FieldComments)
		assert.Equal(t, 9, comments)
	})

	t.Run("opaque identifiers go straight to global patterns", func(t *testing.T) {
		t.Parallel()

		body := `{"likers":{"count":42},"total_comment_count":5,"share_count":{"count":2}}`

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.ParseNear(polis.RawDocument{Variant: "desktop", Body: body}, "pfbid02abc")
		require.NoError(t, err)

		likes, _ := bag.Int(polis.FieldLikes)
		comments, _ := bag.Int(polis.FieldComments)
		shares, _ := bag.Int(polis.FieldShares)

		assert.Equal(t, 42, likes)
		assert.Equal(t, 5, comments)
		assert.Equal(t, 2, shares)
	})

	t.Run("parses compact i18n counts", func(t *testing.T) {
		t.Parallel()

		body := `{"i18n_reaction_count":"1.4K","i18n_share_count":"2K"}`

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "mbasic", Body: body})
		require.NoError(t, err)

		likes, _ := bag.Int(polis.FieldLikes)
		shares, _ := bag.Int(polis.FieldShares)

		assert.Equal(t, 1400, likes)
		assert.Equal(t, 2000, shares)
	})

	t.Run("falls back to og:description counts", func(t *testing.T) {
		t.Parallel()

		body := `<html><head>
			<meta property="og:description" content="Dana Cooks. 2.1K likes, 340 comments, 12 shares. Tonight we grill."/>
		</head></html>`

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "desktop", Body: body})
		require.NoError(t, err)

		likes, _ := bag.Int(polis.FieldLikes)
		comments, _ := bag.Int(polis.FieldComments)
		shares, _ := bag.Int(polis.FieldShares)

		assert.Equal(t, 2100, likes)
		assert.Equal(t, 340, comments)
		assert.Equal(t, 12, shares)
	})

	t.Run("pages without metrics contribute nothing", func(t *testing.T) {
		t.Parallel()

		strategy := polisgoquery.NewFacebookMetrics()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "desktop", Body: "<html></html>"})
		require.NoError(t, err)

		assert.Empty(t, bag)
	})
}
