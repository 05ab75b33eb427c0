package platform_test

import (
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/mock"
	"github.com/kennycode-git/polis-metadata-tool/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubExtractor(p polis.Platform) *mock.Extractor {
	return &mock.Extractor{
		PlatformFn: func() polis.Platform { return p },
	}
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("routes a url to its platform's extractor", func(t *testing.T) {
		t.Parallel()

		reddit := stubExtractor(polis.PlatformReddit)
		registry := platform.NewRegistry(stubExtractor(polis.PlatformTikTok), reddit)

		got, err := registry.Resolve("https://www.reddit.com/r/golang/comments/abc/title/")
		require.NoError(t, err)
		assert.Same(t, reddit, got)
	})

	t.Run("unknown platforms are unsupported", func(t *testing.T) {
		t.Parallel()

		registry := platform.NewRegistry(stubExtractor(polis.PlatformTikTok))

		_, err := registry.Resolve("https://example.com/page")
		require.Error(t, err)
		assert.Equal(t, polis.EUNSUPPORTED, polis.ErrorCode(err))
	})

	t.Run("known but unregistered platforms are unsupported", func(t *testing.T) {
		t.Parallel()

		registry := platform.NewRegistry(stubExtractor(polis.PlatformTikTok))

		_, err := registry.Resolve("https://www.reddit.com/r/golang/comments/abc/title/")
		require.Error(t, err)
		assert.Equal(t, polis.EUNSUPPORTED, polis.ErrorCode(err))
	})
}

func TestRegistry_GetAndList(t *testing.T) {
	t.Parallel()

	tiktok := stubExtractor(polis.PlatformTikTok)
	registry := platform.NewRegistry(tiktok, stubExtractor(polis.PlatformNews))

	assert.Same(t, tiktok, registry.Get(polis.PlatformTikTok))
	assert.Nil(t, registry.Get(polis.PlatformYouTube))
	assert.ElementsMatch(t, []polis.Platform{polis.PlatformTikTok, polis.PlatformNews}, registry.List())
}
