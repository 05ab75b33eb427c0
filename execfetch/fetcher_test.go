package execfetch_test

import (
	"context"
	"testing"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/execfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns delegate stdout as a document", func(t *testing.T) {
		t.Parallel()

		fetcher := execfetch.NewFetcher("sh",
			execfetch.WithArgs("-c", `echo '{"views":226,"likes":8}'`),
			execfetch.WithVariant("post"),
		)

		doc, err := fetcher.Fetch(context.Background(), "https://www.tiktok.com/@user/video/1")
		require.NoError(t, err)
		assert.Equal(t, "post", doc.Variant)
		assert.JSONEq(t, `{"views":226,"likes":8}`, doc.Body)
	})

	t.Run("maps a non-zero exit to a delegate error", func(t *testing.T) {
		t.Parallel()

		fetcher := execfetch.NewFetcher("sh",
			execfetch.WithArgs("-c", `echo "scraper blew up" >&2; exit 3`),
		)

		_, err := fetcher.Fetch(context.Background(), "ignored")
		require.Error(t, err)
		assert.Equal(t, polis.EDELEGATE, polis.ErrorCode(err))
		assert.Contains(t, polis.ErrorMessage(err), "scraper blew up")
	})

	t.Run("rejects non-JSON stdout", func(t *testing.T) {
		t.Parallel()

		fetcher := execfetch.NewFetcher("sh",
			execfetch.WithArgs("-c", `echo "plain text"`),
		)

		_, err := fetcher.Fetch(context.Background(), "ignored")
		require.Error(t, err)
		assert.Equal(t, polis.EDELEGATE, polis.ErrorCode(err))
	})

	t.Run("surfaces a delegate-reported error", func(t *testing.T) {
		t.Parallel()

		fetcher := execfetch.NewFetcher("sh",
			execfetch.WithArgs("-c", `echo '{"error":"login required"}'`),
		)

		_, err := fetcher.Fetch(context.Background(), "ignored")
		require.Error(t, err)
		assert.Equal(t, polis.EDELEGATE, polis.ErrorCode(err))
		assert.Contains(t, polis.ErrorMessage(err), "login required")
	})

	t.Run("times out a hung delegate", func(t *testing.T) {
		t.Parallel()

		fetcher := execfetch.NewFetcher("sleep",
			execfetch.WithTimeout(50*time.Millisecond),
		)

		start := time.Now()
		_, err := fetcher.Fetch(context.Background(), "5")
		require.Error(t, err)
		assert.Equal(t, polis.EDELEGATE, polis.ErrorCode(err))
		assert.Less(t, time.Since(start), 2*time.Second)
	})
}
