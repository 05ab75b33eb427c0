package platform

import (
	"context"
	"net/url"
	"regexp"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/gjson"
)

var (
	tiktokVideoRe = regexp.MustCompile(`tiktok\.com/@[\w.-]+/video/(\d+)`)
	tiktokShortRe = regexp.MustCompile(`v[mt]\.tiktok\.com/([A-Za-z0-9]+)`)
	tiktokUserRe  = regexp.MustCompile(`tiktok\.com/@([\w.-]+)/video`)
)

var _ polis.Extractor = (*TikTok)(nil)

// TikTok extracts post and author metadata through two delegated scraper
// processes, with the public oEmbed endpoint as a degraded fallback when
// the post delegate is blocked.
type TikTok struct {
	post    polis.Fetcher
	profile polis.Fetcher
	oembed  polis.Fetcher
	delay   time.Duration
}

// NewTikTok creates the extractor. post and profile are delegate fetchers;
// oembed fetches the public oEmbed endpoint over HTTP. delay is the
// politeness pause between the dependent post and profile calls.
func NewTikTok(post, profile, oembed polis.Fetcher, delay time.Duration) *TikTok {
	return &TikTok{post: post, profile: profile, oembed: oembed, delay: delay}
}

// Platform returns the platform tag.
func (t *TikTok) Platform() polis.Platform { return polis.PlatformTikTok }

// ValidateURL reports whether url is a tiktok video or short link.
func (t *TikTok) ValidateURL(url string) bool {
	return tiktokVideoRe.MatchString(url) || tiktokShortRe.MatchString(url)
}

// TargetIdentifier returns the numeric video id for standard links and the
// opaque short-link slug otherwise.
func (t *TikTok) TargetIdentifier(url string) string {
	if m := tiktokVideoRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := tiktokShortRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// Fetch retrieves the post document, then the author profile document after
// the politeness delay. When the post delegate fails, the oEmbed fallback
// still yields caption and author. The profile document is returned before
// the post document: it carries fields no post document supplies, and the
// cascade's early exit must not skip it.
func (t *TikTok) Fetch(ctx context.Context, rawurl string) ([]polis.RawDocument, error) {
	var docs []polis.RawDocument
	post, postErr := t.post.Fetch(ctx, rawurl)

	if username := tiktokUsername(rawurl); username != "" {
		if err := sleep(ctx, t.delay); err != nil {
			return nil, err
		}
		if profile, err := t.profile.Fetch(ctx, username); err == nil {
			docs = append(docs, profile)
		}
	}

	if postErr == nil {
		docs = append(docs, post)
	} else {
		oembedURL := "https://www.tiktok.com/oembed?url=" + url.QueryEscape(rawurl)
		if oembed, err := t.oembed.Fetch(ctx, oembedURL); err == nil {
			docs = append(docs, oembed)
		}
	}

	if len(docs) == 0 {
		return nil, postErr
	}
	return docs, nil
}

// Strategies returns the parsing strategies in priority order.
func (t *TikTok) Strategies() []polis.Strategy {
	return []polis.Strategy{
		gjson.NewTikTokPost(),
		gjson.NewTikTokProfile(),
		gjson.NewTikTokOEmbed(),
	}
}

// tiktokUsername returns the @-handle embedded in a standard video URL.
func tiktokUsername(url string) string {
	if m := tiktokUserRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}

// sleep pauses for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
