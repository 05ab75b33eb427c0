// Package platform implements the closed set of source extractors and the
// registry that dispatches a URL to the right one. Each extractor bundles
// its fetch variants and parsing strategies behind the polis.Extractor
// capability set.
package platform

import (
	"net/url"
	"strings"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// Known news and blog hosts served by the generic article extractor.
var newsDomains = []string{
	"bbc.com", "bbc.co.uk",
	"cnn.com",
	"theguardian.com",
	"reuters.com",
	"apnews.com",
	"nytimes.com",
	"washingtonpost.com",
	"aljazeera.com",
	"economist.com",
	"medium.com",
	"substack.com",
	"blogger.com",
	"wordpress.com",
	"wix.com",
}

// Detect identifies the platform a URL belongs to by its host.
func Detect(rawurl string) polis.Platform {
	u, err := url.Parse(strings.ToLower(NormalizeURL(rawurl)))
	if err != nil {
		return polis.PlatformUnknown
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")

	switch {
	case hostContains(host, "tiktok.com"):
		return polis.PlatformTikTok
	case hostContains(host, "youtube.com") || hostContains(host, "youtu.be"):
		return polis.PlatformYouTube
	case hostContains(host, "facebook.com") || hostContains(host, "fb.com") || hostContains(host, "fb.watch"):
		return polis.PlatformFacebook
	case hostContains(host, "reddit.com") || hostContains(host, "redd.it"):
		return polis.PlatformReddit
	}

	for _, domain := range newsDomains {
		if hostContains(host, domain) {
			return polis.PlatformNews
		}
	}
	for _, pattern := range []string{".blog", "blog.", "news.", ".news"} {
		if strings.Contains(host, pattern) {
			return polis.PlatformNews
		}
	}

	return polis.PlatformUnknown
}

// NormalizeURL trims whitespace and defaults the scheme to https.
func NormalizeURL(rawurl string) string {
	rawurl = strings.TrimSpace(rawurl)
	if rawurl == "" {
		return rawurl
	}
	if !strings.HasPrefix(rawurl, "http://") && !strings.HasPrefix(rawurl, "https://") {
		rawurl = "https://" + rawurl
	}
	return rawurl
}

// hostContains reports whether host is domain or a subdomain of it.
func hostContains(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
