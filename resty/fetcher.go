// Package resty provides an HTTP-based implementation of polis.Fetcher
// built on the resty client. One client (cookies, headers) is scoped to a
// single extraction run and never shared across concurrent runs.
package resty

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	polis "github.com/kennycode-git/polis-metadata-tool"
)

// DefaultTimeout bounds each HTTP request when no option overrides it.
const DefaultTimeout = 20 * time.Second

// Ensure Fetcher implements polis.Fetcher at compile time.
var _ polis.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw documents over plain HTTP. It does not execute
// JavaScript; JS-rendered platforms go through the delegate fetcher
// instead.
type Fetcher struct {
	client  *resty.Client
	variant string
	timeout time.Duration
	agent   string
	cookies string
	referer string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithVariant labels the documents this fetcher produces, e.g. "desktop"
// or "mobile". Defaults to "desktop".
func WithVariant(label string) Option {
	return func(f *Fetcher) { f.variant = label }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(f *Fetcher) { f.agent = agent }
}

// WithCookieBlob attaches a raw "name=value; name2=value2" cookie string to
// every request. The blob stays opaque; it is forwarded verbatim.
func WithCookieBlob(blob string) Option {
	return func(f *Fetcher) { f.cookies = blob }
}

// WithReferer sets the Referer header.
func WithReferer(url string) Option {
	return func(f *Fetcher) { f.referer = url }
}

// NewFetcher creates an HTTP fetcher with its own client session.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		variant: "desktop",
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := resty.New().
		SetTimeout(f.timeout).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
	if f.agent != "" {
		client.SetHeader("User-Agent", f.agent)
	}
	if f.cookies != "" {
		client.SetHeader("Cookie", f.cookies)
	}
	if f.referer != "" {
		client.SetHeader("Referer", f.referer)
	}
	f.client = client

	return f
}

// Fetch retrieves the document at url. HTTP error classes map onto the
// domain error taxonomy so the pipeline can produce meaningful messages.
func (f *Fetcher) Fetch(ctx context.Context, url string) (polis.RawDocument, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return polis.RawDocument{}, polis.Errorf(polis.ENETWORK, "fetch %s: %v", url, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusForbidden:
		return polis.RawDocument{}, polis.Errorf(polis.EACCESS, "HTTP 403 for %s: access restricted", url)
	case code == http.StatusNotFound:
		return polis.RawDocument{}, polis.Errorf(polis.ENOTFOUND, "HTTP 404 for %s: post may be deleted or private", url)
	case code == http.StatusTooManyRequests:
		return polis.RawDocument{}, polis.Errorf(polis.ERATELIMIT, "HTTP 429 for %s: rate limited", url)
	case code != http.StatusOK:
		return polis.RawDocument{}, polis.Errorf(polis.ENETWORK, "HTTP %d for %s", code, url)
	}

	return polis.RawDocument{
		Variant: f.variant,
		URL:     url,
		Body:    resp.String(),
	}, nil
}

// Expand follows redirects for a short link and returns the final URL.
func (f *Fetcher) Expand(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Head(url)
	if err != nil {
		return "", polis.Errorf(polis.ENETWORK, "expand %s: %v", url, err)
	}
	if final := resp.RawResponse.Request.URL; final != nil {
		return final.String(), nil
	}
	return url, nil
}
