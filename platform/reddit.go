package platform

import (
	"context"
	"regexp"
	"strings"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/gjson"
)

var (
	redditPostRe  = regexp.MustCompile(`reddit\.com/r/[\w]+/comments/[\w]+`)
	redditShortRe = regexp.MustCompile(`redd\.it/[\w]+`)
)

// URLExpander follows redirects for a short link and returns the final
// URL. The HTTP fetcher implements it.
type URLExpander interface {
	Expand(ctx context.Context, url string) (string, error)
}

var _ polis.Extractor = (*Reddit)(nil)

// Reddit extracts post metadata from the public listing endpoint: any post
// URL serves its full data as JSON when ".json" is appended, no
// authentication needed. Short redd.it links are expanded first.
type Reddit struct {
	api      polis.Fetcher
	expander URLExpander
}

// NewReddit creates the extractor. expander resolves redd.it short links
// and may be nil when short-link support is not needed.
func NewReddit(api polis.Fetcher, expander URLExpander) *Reddit {
	return &Reddit{api: api, expander: expander}
}

// Platform returns the platform tag.
func (r *Reddit) Platform() polis.Platform { return polis.PlatformReddit }

// ValidateURL reports whether url is a reddit post or short link.
func (r *Reddit) ValidateURL(url string) bool {
	return redditPostRe.MatchString(url) || redditShortRe.MatchString(url)
}

// TargetIdentifier returns empty: the listing endpoint serves exactly one
// post, so there is nothing to disambiguate.
func (r *Reddit) TargetIdentifier(string) string { return "" }

// Fetch retrieves the post's JSON listing.
func (r *Reddit) Fetch(ctx context.Context, rawurl string) ([]polis.RawDocument, error) {
	rawurl = NormalizeURL(rawurl)
	if strings.Contains(rawurl, "redd.it") && r.expander != nil {
		expanded, err := r.expander.Expand(ctx, rawurl)
		if err != nil {
			return nil, err
		}
		rawurl = expanded
	}

	doc, err := r.api.Fetch(ctx, redditJSONURL(rawurl))
	if err != nil {
		return nil, err
	}
	return []polis.RawDocument{doc}, nil
}

// Strategies returns the parsing strategies in priority order.
func (r *Reddit) Strategies() []polis.Strategy {
	return []polis.Strategy{
		gjson.NewRedditListing(),
	}
}

// redditJSONURL strips query, fragment, and any existing .json suffix, then
// appends .json.
func redditJSONURL(rawurl string) string {
	if i := strings.IndexAny(rawurl, "?#"); i >= 0 {
		rawurl = rawurl[:i]
	}
	rawurl = strings.TrimSuffix(strings.TrimSuffix(rawurl, "/"), ".json")
	return rawurl + ".json"
}
