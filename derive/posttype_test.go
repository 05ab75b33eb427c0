package derive_test

import (
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/derive"
	"github.com/stretchr/testify/assert"
)

func TestDetectPostType(t *testing.T) {
	t.Parallel()

	t.Run("video platforms are always video", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, polis.PostTypeVideo, derive.DetectPostType(polis.PlatformTikTok, derive.TypeHints{}))
		assert.Equal(t, polis.PostTypeVideo, derive.DetectPostType(polis.PlatformYouTube, derive.TypeHints{HasText: true}))
	})

	t.Run("long-form platforms are always article", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, polis.PostTypeArticle, derive.DetectPostType(polis.PlatformNews, derive.TypeHints{}))
	})

	t.Run("explicit video flag wins on hint platforms", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformReddit, derive.TypeHints{IsVideo: true, HasText: true})

		assert.Equal(t, polis.PostTypeVideo, got)
	})

	t.Run("image hint yields image", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformReddit, derive.TypeHints{PostHint: "image"})

		assert.Equal(t, polis.PostTypeImage, got)
	})

	t.Run("media without text yields image", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformReddit, derive.TypeHints{HasMedia: true})

		assert.Equal(t, polis.PostTypeImage, got)
	})

	t.Run("body text yields text", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformReddit, derive.TypeHints{HasText: true})

		assert.Equal(t, polis.PostTypeText, got)
	})

	t.Run("link is the residual default", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformReddit, derive.TypeHints{})

		assert.Equal(t, polis.PostTypeLink, got)
	})

	t.Run("platforms without reliable hints are unknown", func(t *testing.T) {
		t.Parallel()

		got := derive.DetectPostType(polis.PlatformFacebook, derive.TypeHints{HasText: true})

		assert.Equal(t, polis.PostTypeUnknown, got)
	})
}
