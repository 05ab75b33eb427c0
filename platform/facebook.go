package platform

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisgoquery "github.com/kennycode-git/polis-metadata-tool/goquery"
)

// Content identifier patterns across facebook's URL shapes, most specific
// first. Share slugs and pfbid handles are opaque; the targeted search
// opts out of them downstream.
var facebookTargetIDRes = []*regexp.Regexp{
	regexp.MustCompile(`/share/v/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`/share/r/([a-zA-Z0-9]+)`),
	regexp.MustCompile(`/reel/(\d+)`),
	regexp.MustCompile(`/reels/(\d+)`),
	regexp.MustCompile(`/posts/(\d+)`),
	regexp.MustCompile(`/posts/(pfbid[a-zA-Z0-9]+)`),
	regexp.MustCompile(`/videos/(\d+)`),
	regexp.MustCompile(`fbid=(\d+)`),
	regexp.MustCompile(`story_fbid=(pfbid[a-zA-Z0-9]+)`),
	regexp.MustCompile(`story_fbid=(\d+)`),
	regexp.MustCompile(`/(\d+)/?$`),
}

// Interstitial markers on the consent wall served to cookieless clients.
var facebookCookieWallMarkers = []string{
	"Allow the use of cookies from Facebook on this browser",
	"These cookies are required to use Meta Products",
}

var _ polis.Extractor = (*Facebook)(nil)

// Facebook extracts post metadata from the desktop, m., and mbasic page
// renditions. The renditions embed different script blobs, so each is a
// separate cascade variant. A cookie credential is effectively required:
// cookieless requests often hit a consent wall, which surfaces as an
// access error.
type Facebook struct {
	desktop polis.Fetcher
	mobile  polis.Fetcher
	basic   polis.Fetcher
}

// NewFacebook creates the extractor from one fetcher per page rendition.
func NewFacebook(desktop, mobile, basic polis.Fetcher) *Facebook {
	return &Facebook{desktop: desktop, mobile: mobile, basic: basic}
}

// Platform returns the platform tag.
func (f *Facebook) Platform() polis.Platform { return polis.PlatformFacebook }

// ValidateURL reports whether url is a facebook content link.
func (f *Facebook) ValidateURL(rawurl string) bool {
	u, err := url.Parse(strings.ToLower(rawurl))
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if !hostContains(host, "facebook.com") && !hostContains(host, "fb.com") && !hostContains(host, "fb.watch") {
		return false
	}
	return u.Path != "" && u.Path != "/"
}

// TargetIdentifier returns the post or video id embedded in url.
func (f *Facebook) TargetIdentifier(url string) string {
	for _, re := range facebookTargetIDRes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// Fetch retrieves the three page renditions in cascade priority order. A
// consent wall on the desktop rendition fails the run: the other
// renditions serve the same wall, and partial results from it would be
// another post's data.
func (f *Facebook) Fetch(ctx context.Context, rawurl string) ([]polis.RawDocument, error) {
	normalized := NormalizeFacebookURL(rawurl)

	var docs []polis.RawDocument
	var firstErr error

	desktop, err := f.desktop.Fetch(ctx, normalized)
	switch {
	case err != nil:
		firstErr = err
	case facebookCookieWall(desktop.Body):
		return nil, polis.Errorf(polis.EACCESS, "facebook cookie wall detected; provide a valid cookie credential")
	default:
		docs = append(docs, desktop)
	}

	for _, rendition := range []struct {
		host    string
		fetcher polis.Fetcher
	}{
		{"m.facebook.com", f.mobile},
		{"mbasic.facebook.com", f.basic},
	} {
		variantURL := strings.Replace(normalized, "www.facebook.com", rendition.host, 1)
		if variantURL == normalized {
			continue
		}
		if doc, err := rendition.fetcher.Fetch(ctx, variantURL); err == nil && !facebookCookieWall(doc.Body) {
			docs = append(docs, doc)
		}
	}

	if len(docs) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, polis.Errorf(polis.ENETWORK, "no facebook rendition could be fetched for %s", normalized)
	}
	return docs, nil
}

// Strategies returns the parsing strategies in priority order.
func (f *Facebook) Strategies() []polis.Strategy {
	return []polis.Strategy{
		polisgoquery.NewFacebookMetrics(),
		polisgoquery.NewFacebookTitle(),
		polisgoquery.NewOpenGraph(),
	}
}

// NormalizeFacebookURL rewrites mobile hosts to www, forces https, and
// strips tracking query parameters, keeping only the identifying ones on
// permalink, photo, and story routes.
func NormalizeFacebookURL(rawurl string) string {
	u, err := url.Parse(NormalizeURL(rawurl))
	if err != nil {
		return rawurl
	}

	host := strings.Replace(u.Host, "m.facebook.com", "www.facebook.com", 1)
	host = strings.Replace(host, "mbasic.facebook.com", "www.facebook.com", 1)
	u.Scheme = "https"
	u.Host = host
	u.Fragment = ""

	switch u.Path {
	case "/permalink.php":
		q := u.Query()
		kept := url.Values{}
		for _, key := range []string{"story_fbid", "id"} {
			if v := q.Get(key); v != "" {
				kept.Set(key, v)
			}
		}
		if len(kept) > 0 {
			u.RawQuery = kept.Encode()
		}
	case "/photo.php", "/story.php":
		// Query carries the content id.
	default:
		u.RawQuery = ""
	}

	return u.String()
}

func facebookCookieWall(body string) bool {
	for _, marker := range facebookCookieWallMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
