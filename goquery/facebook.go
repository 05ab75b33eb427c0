package goquery

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/cascade"
	"github.com/kennycode-git/polis-metadata-tool/derive"
)

// Variant labels for the facebook page renditions fetched per extraction.
const (
	VariantFacebookDesktop = "desktop"
	VariantFacebookMobile  = "mobile"
	VariantFacebookBasic   = "mbasic"
)

func facebookVariant(v string) bool {
	return v == VariantFacebookDesktop || v == VariantFacebookMobile || v == VariantFacebookBasic
}

// GraphQL attribution and timestamp markers embedded in page script blobs.
var (
	fbVideoOwnerRe = regexp.MustCompile(`"video_owner"\s*:\s*\{"__typename":"(?:User|Page)","id":"[^"]+","name":"([^"]+)"\}`)

	fbTimestampRes = []*regexp.Regexp{
		regexp.MustCompile(`"publish_time"\s*:\s*(\d+)`),
		regexp.MustCompile(`"created_time"\s*:\s*(\d+)`),
		regexp.MustCompile(`"creation_time"\s*:\s*(\d+)`),
		regexp.MustCompile(`"timestamp"\s*:\s*(\d+)`),
	}

	fbUsernamePathRe = regexp.MustCompile(`facebook\.com/([^/?]+)/`)
)

// Path segments that look like usernames but are page routes.
var fbReservedPaths = map[string]struct{}{
	"photo.php": {}, "posts": {}, "videos": {}, "watch": {}, "story.php": {},
	"reel": {}, "share": {}, "permalink.php": {},
}

var _ polis.Strategy = (*FacebookTitle)(nil)

// FacebookTitle extracts attribution, title, and publish date from the
// page's og:title tag and embedded GraphQL blobs. Video pages carry a
// metrics-style og:title ("1.2M views, 3K reactions | Title | Owner") which
// also yields view and reaction counts no other tag exposes.
type FacebookTitle struct{}

// NewFacebookTitle creates the strategy.
func NewFacebookTitle() *FacebookTitle {
	return &FacebookTitle{}
}

// Name identifies the strategy in logs.
func (s *FacebookTitle) Name() string { return "facebook_title" }

// Parse extracts attribution fields from the document.
func (s *FacebookTitle) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if !facebookVariant(doc.Variant) {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	if m := fbVideoOwnerRe.FindStringSubmatch(doc.Body); m != nil {
		bag.Set(polis.FieldAuthor, html.UnescapeString(m[1]))
	}

	if d := newDocument(doc.Body); d != nil {
		s.parseTitle(bag, metaProperty(d, "og:title"))
	}

	for _, re := range fbTimestampRes {
		m := re.FindStringSubmatch(doc.Body)
		if m == nil {
			continue
		}
		if ts, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			bag.Set(polis.FieldPublishDate, time.Unix(ts, 0).UTC().Format(time.RFC3339))
		}
		break
	}

	if !bag.Has(polis.FieldAuthor) {
		if username := facebookUsernameFromURL(doc.URL); username != "" {
			bag.Set(polis.FieldAuthor, username)
		}
	}

	return bag, nil
}

var (
	fbOGViewsRe     = regexp.MustCompile(`(?i)([\d.,]+[KMB]?)\s+views`)
	fbOGReactionsRe = regexp.MustCompile(`(?i)([\d.,]+[KMB]?)\s+reactions`)
)

// parseTitle handles both og:title shapes: the pipe-delimited metrics form
// on video pages and the plain "Author - rest" form elsewhere.
func (s *FacebookTitle) parseTitle(bag polis.FieldBag, title string) {
	if title == "" {
		return
	}

	lower := strings.ToLower(title)
	metricsStyle := strings.Contains(lower, "views") ||
		strings.Contains(lower, "reactions") ||
		strings.Contains(lower, "comments")

	if !metricsStyle {
		for _, sep := range []string{" - ", " | ", " posted ", " shared "} {
			if i := strings.Index(title, sep); i > 0 {
				if author := strings.TrimSpace(title[:i]); len(author) < 100 && !bag.Has(polis.FieldAuthor) {
					bag.Set(polis.FieldAuthor, author)
				}
				return
			}
		}
		if len(title) < 100 && !bag.Has(polis.FieldAuthor) {
			bag.Set(polis.FieldAuthor, title)
		}
		return
	}

	var parts []string
	for _, p := range strings.Split(title, "|") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return
	}

	if m := fbOGViewsRe.FindStringSubmatch(parts[0]); m != nil {
		if n, ok := derive.ParseCompactNumber(m[1]); ok {
			bag.SetInt(polis.FieldViews, n)
		}
	}
	if m := fbOGReactionsRe.FindStringSubmatch(parts[0]); m != nil {
		if n, ok := derive.ParseCompactNumber(m[1]); ok {
			bag.SetInt(polis.FieldLikes, n)
		}
	}
	if len(parts) >= 2 {
		bag.Set(polis.FieldTitle, parts[1])
	}
	if len(parts) >= 3 && !bag.Has(polis.FieldAuthor) {
		bag.Set(polis.FieldAuthor, parts[len(parts)-1])
	}
}

func facebookUsernameFromURL(url string) string {
	m := fbUsernamePathRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	if _, reserved := fbReservedPaths[m[1]]; reserved {
		return ""
	}
	return m[1]
}

// Feedback-block patterns searched near the target identifier. Pages embed
// one feedback blob per content item, so proximity to the identifier is
// what attributes the right block.
var (
	fbLikesNearRes = []*regexp.Regexp{
		regexp.MustCompile(`"feedback"\s*:\s*\{[^}]*"(?:likers|unified_reactors)"\s*:\s*\{[^}]*"count"\s*:\s*(\d+)`),
	}
	fbCommentsNearRes = []*regexp.Regexp{
		regexp.MustCompile(`"feedback"\s*:\s*\{[^}]{0,1000}?"total_comment_count"\s*:\s*(\d+)`),
	}
	fbSharesNearRes = []*regexp.Regexp{
		regexp.MustCompile(`"feedback"\s*:\s*\{[^}]{0,1000}?"share_count_reduced"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`"share_count"\s*:\s*\{\s*"count"\s*:\s*(\d+)`),
		regexp.MustCompile(`"i18n_share_count"\s*:\s*"([^"]+)"`),
	}
)

// Untargeted patterns, highest confidence first.
var (
	fbLikesGlobalRes = []*regexp.Regexp{
		regexp.MustCompile(`"likers"\s*:\s*\{"count"\s*:\s*(\d+)\}`),
		regexp.MustCompile(`"unified_reactors"\s*:\s*\{"count"\s*:\s*(\d+)\}`),
		regexp.MustCompile(`"i18n_reaction_count"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`"reaction_count"\s*:\s*(\d+)`),
	}
	fbCommentsGlobalRes = []*regexp.Regexp{
		regexp.MustCompile(`"total_comment_count"\s*:\s*(\d+)`),
		regexp.MustCompile(`"comment_count"\s*:\s*\{\s*"total_count"\s*:\s*(\d+)`),
		regexp.MustCompile(`"comment_count"\s*:\s*(\d+)`),
	}
	fbSharesGlobalRes = []*regexp.Regexp{
		regexp.MustCompile(`"share_count_reduced"\s*:\s*"([^"]+)"`),
		regexp.MustCompile(`"share_count"\s*:\s*\{\s*"count"\s*:\s*(\d+)`),
		regexp.MustCompile(`"i18n_share_count"\s*:\s*"([^"]+)"`),
	}
)

// Last-resort counts from the human-readable og:description text.
var (
	fbDescLikesRe    = regexp.MustCompile(`(?i)(\d[\d,.]*\s*[KMB]?)\s+(?:likes?|reactions?)`)
	fbDescCommentsRe = regexp.MustCompile(`(?i)(\d[\d,.]*\s*[KMB]?)\s+comments?`)
	fbDescSharesRe   = regexp.MustCompile(`(?i)(\d[\d,.]*\s*[KMB]?)\s+shares?\b`)
)

var _ polis.TargetedStrategy = (*FacebookMetrics)(nil)

// FacebookMetrics extracts like, comment, and share counts from the
// feedback JSON blobs embedded in page script tags. A page can embed
// several items' feedback blobs, so extraction is targeted: the window
// around the post's own identifier is searched before any global pattern.
type FacebookMetrics struct{}

// NewFacebookMetrics creates the strategy.
func NewFacebookMetrics() *FacebookMetrics {
	return &FacebookMetrics{}
}

// Name identifies the strategy in logs.
func (s *FacebookMetrics) Name() string { return "facebook_metrics" }

// Parse extracts metrics without a target identifier.
func (s *FacebookMetrics) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	return s.ParseNear(doc, "")
}

// ParseNear extracts metrics from the feedback block nearest to targetID.
func (s *FacebookMetrics) ParseNear(doc polis.RawDocument, targetID string) (polis.FieldBag, error) {
	if !facebookVariant(doc.Variant) {
		return polis.FieldBag{}, nil
	}

	var ogDescription string
	if d := newDocument(doc.Body); d != nil {
		ogDescription = metaProperty(d, "og:description")
	}

	bag := polis.FieldBag{}
	metric := func(field string, near, global []*regexp.Regexp, descRe *regexp.Regexp) {
		if n, ok := findCount(doc.Body, targetID, near, global); ok {
			bag.SetInt(field, n)
			return
		}
		if m := descRe.FindStringSubmatch(ogDescription); m != nil {
			if n, ok := derive.ParseCompactNumber(m[1]); ok {
				bag.SetInt(field, n)
			}
		}
	}

	metric(polis.FieldLikes, fbLikesNearRes, fbLikesGlobalRes, fbDescLikesRe)
	metric(polis.FieldComments, fbCommentsNearRes, fbCommentsGlobalRes, fbDescCommentsRe)
	metric(polis.FieldShares, fbSharesNearRes, fbSharesGlobalRes, fbDescSharesRe)
	return bag, nil
}

// findCount runs the windowed search near targetID first, then the global
// patterns in confidence order.
func findCount(body, targetID string, near, global []*regexp.Regexp) (int, bool) {
	if targetID != "" && !cascade.OpaqueIdentifier(targetID) {
		for _, re := range near {
			if v, ok := cascade.FindNear(body, targetID, re); ok {
				if n, ok := derive.ParseCompactNumber(v); ok {
					return n, true
				}
			}
		}
	}
	for _, re := range global {
		if m := re.FindStringSubmatch(body); m != nil {
			if n, ok := derive.ParseCompactNumber(m[1]); ok {
				return n, true
			}
		}
	}
	return 0, false
}
