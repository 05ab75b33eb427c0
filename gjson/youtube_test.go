package gjson_test

import (
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisgjson "github.com/kennycode-git/polis-metadata-tool/gjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const youtubeVideo = `{
  "items": [{
    "snippet": {
      "title": "Understanding Goroutines",
      "description": "Deep dive into the scheduler. #golang #concurrency",
      "channelTitle": "Go Time",
      "channelId": "UCabc123",
      "publishedAt": "2024-05-08T12:00:00Z",
      "tags": ["go programming", "golang"]
    },
    "statistics": {
      "viewCount": "120500",
      "likeCount": "4100",
      "commentCount": "312"
    }
  }]
}`

const youtubeChannel = `{
  "items": [{
    "snippet": {
      "title": "Go Time",
      "description": "Weekly Go talks."
    },
    "statistics": {
      "subscriberCount": "98000",
      "videoCount": "412"
    }
  }]
}`

func TestYouTubeVideo_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts snippet and statistics", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeVideo()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "video", Body: youtubeVideo})
		require.NoError(t, err)

		title, _ := bag.String(polis.FieldTitle)
		author, _ := bag.String(polis.FieldAuthor)
		views, _ := bag.Int(polis.FieldViews)
		likes, _ := bag.Int(polis.FieldLikes)
		comments, _ := bag.Int(polis.FieldComments)

		assert.Equal(t, "Understanding Goroutines", title)
		assert.Equal(t, "Go Time", author)
		assert.Equal(t, 120500, views)
		assert.Equal(t, 4100, likes)
		assert.Equal(t, 312, comments)
	})

	t.Run("merges tags with description hashtags", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeVideo()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "video", Body: youtubeVideo})
		require.NoError(t, err)

		tags, ok := bag.Strings(polis.FieldHashtags)
		require.True(t, ok)
		assert.Equal(t, []string{"#goprogramming", "#golang", "#concurrency"}, tags)
	})

	t.Run("empty item list contributes nothing", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeVideo()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "video", Body: `{"items": []}`})
		require.NoError(t, err)

		assert.Empty(t, bag)
	})

	t.Run("does not apply to channel documents", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeVideo()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "channel", Body: youtubeVideo})
		require.NoError(t, err)

		assert.Empty(t, bag)
	})
}

func TestYouTubeChannel_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts the channel resource", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeChannel()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "channel", Body: youtubeChannel})
		require.NoError(t, err)

		author, _ := bag.String(polis.FieldAuthor)
		bio, _ := bag.String(polis.FieldAuthorBio)
		followers, _ := bag.Int(polis.FieldAuthorFollowers)
		posts, _ := bag.Int(polis.FieldAuthorPostCount)

		assert.Equal(t, "Go Time", author)
		assert.Equal(t, "Weekly Go talks.", bio)
		assert.Equal(t, 98000, followers)
		assert.Equal(t, 412, posts)
	})

	t.Run("leaves following unknown", func(t *testing.T) {
		t.Parallel()

		strategy := polisgjson.NewYouTubeChannel()
		bag, err := strategy.Parse(polis.RawDocument{Variant: "channel", Body: youtubeChannel})
		require.NoError(t, err)

		_, ok := bag.Int(polis.FieldAuthorFollowing)
		assert.False(t, ok)
	})
}
