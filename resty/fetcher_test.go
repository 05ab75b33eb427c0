package resty_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisresty "github.com/kennycode-git/polis-metadata-tool/resty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the body with the variant label", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher(polisresty.WithVariant("api"))

		doc, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "api", doc.Variant)
		assert.Equal(t, `{"ok":true}`, doc.Body)
		assert.Equal(t, server.URL, doc.URL)
	})

	t.Run("sends user agent and cookie blob", func(t *testing.T) {
		t.Parallel()

		var gotAgent, gotCookie string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			gotCookie = r.Header.Get("Cookie")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher(
			polisresty.WithUserAgent("polis-metadata-tool/1.0"),
			polisresty.WithCookieBlob("c_user=1; xs=abc"),
		)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "polis-metadata-tool/1.0", gotAgent)
		assert.Equal(t, "c_user=1; xs=abc", gotCookie)
	})

	t.Run("maps 403 to an access error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, polis.EACCESS, polis.ErrorCode(err))
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, polis.ENOTFOUND, polis.ErrorCode(err))
	})

	t.Run("maps 429 to rate limited", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, polis.ERATELIMIT, polis.ErrorCode(err))
	})

	t.Run("maps timeouts to network errors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher := polisresty.NewFetcher(polisresty.WithTimeout(20 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, polis.ENETWORK, polis.ErrorCode(err))
	})
}

func TestFetcher_Expand(t *testing.T) {
	t.Parallel()

	t.Run("follows redirects to the final url", func(t *testing.T) {
		t.Parallel()

		var target string
		mux := http.NewServeMux()
		mux.HandleFunc("/short", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target, http.StatusMovedPermanently)
		})
		mux.HandleFunc("/r/golang/comments/abc/post/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		server := httptest.NewServer(mux)
		defer server.Close()
		target = server.URL + "/r/golang/comments/abc/post/"

		fetcher := polisresty.NewFetcher()

		final, err := fetcher.Expand(context.Background(), server.URL+"/short")
		require.NoError(t, err)
		assert.Equal(t, target, final)
	})
}
