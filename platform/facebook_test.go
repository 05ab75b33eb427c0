package platform_test

import (
	"context"
	"testing"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/mock"
	"github.com/kennycode-git/polis-metadata-tool/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacebook_ValidateURL(t *testing.T) {
	t.Parallel()

	fb := platform.NewFacebook(nil, nil, nil)

	assert.True(t, fb.ValidateURL("https://www.facebook.com/user/posts/123"))
	assert.True(t, fb.ValidateURL("https://fb.watch/abc/"))
	assert.True(t, fb.ValidateURL("https://m.facebook.com/story.php?story_fbid=1&id=2"))
	assert.False(t, fb.ValidateURL("https://www.facebook.com/"))
	assert.False(t, fb.ValidateURL("https://example.com/facebook.com/posts/1"))
}

func TestFacebook_TargetIdentifier(t *testing.T) {
	t.Parallel()

	fb := platform.NewFacebook(nil, nil, nil)

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"reel", "https://www.facebook.com/reel/1754948918532947", "1754948918532947"},
		{"video", "https://www.facebook.com/user/videos/1234567890", "1234567890"},
		{"numeric post", "https://www.facebook.com/user/posts/9876543210", "9876543210"},
		{"pfbid post", "https://www.facebook.com/user/posts/pfbid028XrH", "pfbid028XrH"},
		{"share link", "https://www.facebook.com/share/v/1aHwNcSFZK/", "1aHwNcSFZK"},
		{"story fbid", "https://www.facebook.com/story.php?story_fbid=555&id=1", "555"},
		{"no id", "https://www.facebook.com/somepage/about", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fb.TargetIdentifier(tt.url))
		})
	}
}

func TestNormalizeFacebookURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"mobile host rewritten",
			"https://m.facebook.com/user/posts/123",
			"https://www.facebook.com/user/posts/123",
		},
		{
			"tracking params stripped",
			"https://www.facebook.com/user/posts/123?ref=share&mibextid=xyz",
			"https://www.facebook.com/user/posts/123",
		},
		{
			"permalink keeps identifying params",
			"https://www.facebook.com/permalink.php?story_fbid=555&id=42&ref=share",
			"https://www.facebook.com/permalink.php?id=42&story_fbid=555",
		},
		{
			"story query preserved",
			"https://mbasic.facebook.com/story.php?story_fbid=555&id=42",
			"https://www.facebook.com/story.php?story_fbid=555&id=42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, platform.NormalizeFacebookURL(tt.in))
		})
	}
}

func TestFacebook_Fetch(t *testing.T) {
	t.Parallel()

	postURL := "https://www.facebook.com/user/posts/123"

	t.Run("fetches all three renditions", func(t *testing.T) {
		t.Parallel()

		fetcherFor := func(variant string) *mock.Fetcher {
			return &mock.Fetcher{FetchFn: func(_ context.Context, url string) (polis.RawDocument, error) {
				return polis.RawDocument{Variant: variant, URL: url, Body: "<html></html>"}, nil
			}}
		}

		fb := platform.NewFacebook(fetcherFor("desktop"), fetcherFor("mobile"), fetcherFor("mbasic"))
		docs, err := fb.Fetch(context.Background(), postURL)

		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, "desktop", docs[0].Variant)
		assert.Equal(t, "mobile", docs[1].Variant)
		assert.Contains(t, docs[1].URL, "m.facebook.com")
		assert.Equal(t, "mbasic", docs[2].Variant)
		assert.Contains(t, docs[2].URL, "mbasic.facebook.com")
	})

	t.Run("cookie wall fails the run with an access error", func(t *testing.T) {
		t.Parallel()

		walled := &mock.Fetcher{FetchFn: func(_ context.Context, url string) (polis.RawDocument, error) {
			return polis.RawDocument{
				Variant: "desktop",
				Body:    "<html>Allow the use of cookies from Facebook on this browser</html>",
			}, nil
		}}

		fb := platform.NewFacebook(walled, walled, walled)
		_, err := fb.Fetch(context.Background(), postURL)

		require.Error(t, err)
		assert.Equal(t, polis.EACCESS, polis.ErrorCode(err))
	})

	t.Run("desktop failure is tolerated when another rendition succeeds", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Fetcher{FetchFn: func(context.Context, string) (polis.RawDocument, error) {
			return polis.RawDocument{}, polis.Errorf(polis.ENETWORK, "timeout")
		}}
		mobile := &mock.Fetcher{FetchFn: func(_ context.Context, url string) (polis.RawDocument, error) {
			return polis.RawDocument{Variant: "mobile", URL: url, Body: "<html></html>"}, nil
		}}

		fb := platform.NewFacebook(failing, mobile, failing)
		docs, err := fb.Fetch(context.Background(), postURL)

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "mobile", docs[0].Variant)
	})

	t.Run("errors when every rendition fails", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Fetcher{FetchFn: func(context.Context, string) (polis.RawDocument, error) {
			return polis.RawDocument{}, polis.Errorf(polis.ENETWORK, "timeout")
		}}

		fb := platform.NewFacebook(failing, failing, failing)
		_, err := fb.Fetch(context.Background(), postURL)

		require.Error(t, err)
		assert.Equal(t, polis.ENETWORK, polis.ErrorCode(err))
	})
}
