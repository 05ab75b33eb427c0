// Package normalize assembles a merged field bag and generated identifiers
// into the fixed Post/OP record pair.
package normalize

import (
	"time"

	"github.com/araddon/dateparse"
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/derive"
)

// MinimumViableFunc decides whether enough fields were obtained for a full
// success, as opposed to a partial one.
type MinimumViableFunc func(bag polis.FieldBag) bool

// DefaultMinimumViable requires a caption plus at least one known
// engagement metric.
func DefaultMinimumViable(bag polis.FieldBag) bool {
	if !bag.Has(polis.FieldContent) && !bag.Has(polis.FieldTitle) {
		return false
	}
	return bag.Has(polis.FieldViews) || bag.Has(polis.FieldLikes) || bag.Has(polis.FieldComments)
}

// Normalizer projects field bags into the record pair schema.
type Normalizer struct {
	// Now supplies the extraction timestamp. Defaults to time.Now.
	Now func() time.Time

	// MinimumViable distinguishes success from partial success. Defaults
	// to DefaultMinimumViable.
	MinimumViable MinimumViableFunc
}

// Records builds the Post/OP pair from a merged bag. Fields absent from the
// bag stay null rather than being coerced to empty string or zero; the
// engagement logic depends on the unknown-vs-zero distinction. The OP id is
// copied into both records to preserve the foreign-key relationship.
func (n *Normalizer) Records(bag polis.FieldBag, platform polis.Platform, url, postID, opID string) (polis.PostRecord, polis.OPRecord) {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	viable := n.MinimumViable
	if viable == nil {
		viable = DefaultMinimumViable
	}

	caption := bag.StringPtr(polis.FieldContent)
	if caption == nil {
		caption = bag.StringPtr(polis.FieldTitle)
	}

	views := bag.IntPtr(polis.FieldViews)
	likes := bag.IntPtr(polis.FieldLikes)
	comments := bag.IntPtr(polis.FieldComments)
	shares := bag.IntPtr(polis.FieldShares)
	rate, _ := derive.EngagementRate(views, likes, comments, shares)

	status := polis.StatusPartial
	if viable(bag) {
		status = polis.StatusSuccess
	}

	author := bag.StringPtr(polis.FieldAuthor)

	post := polis.PostRecord{
		ID:             postID,
		Title:          bag.StringPtr(polis.FieldTitle),
		Caption:        caption,
		Hashtags:       hashtags(bag, caption),
		Type:           derive.DetectPostType(platform, typeHints(bag)),
		PublishDate:    publishDate(bag),
		ExtractedAt:    now(),
		Platform:       platform,
		Views:          views,
		Likes:          likes,
		Shares:         shares,
		Comments:       comments,
		Saves:          bag.IntPtr(polis.FieldSaves),
		Reposts:        bag.IntPtr(polis.FieldReposts),
		EngagementRate: rate,
		URL:            recordURL(bag, url),
		Language:       language(bag),
		OPUsername:     author,
		OPID:           opID,
		Status:         status,
	}

	op := polis.OPRecord{
		Username:  author,
		ID:        opID,
		Bio:       bag.StringPtr(polis.FieldAuthorBio),
		Followers: bag.IntPtr(polis.FieldAuthorFollowers),
		Following: bag.IntPtr(polis.FieldAuthorFollowing),
		PostCount: bag.IntPtr(polis.FieldAuthorPostCount),
		Platform:  platform,
	}

	return post, op
}

// FailedRecords builds the terminal pair for an extraction that produced no
// usable data. All content and engagement fields are null; only identity,
// platform, URL, and the error message are populated.
func (n *Normalizer) FailedRecords(platform polis.Platform, url, message string) (polis.PostRecord, polis.OPRecord) {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}

	opID := derive.OPID("")
	post := polis.PostRecord{
		ID:           derive.PostID(),
		ExtractedAt:  now(),
		Platform:     platform,
		URL:          url,
		OPID:         opID,
		Status:       polis.StatusFailed,
		ErrorMessage: message,
	}
	op := polis.OPRecord{
		ID:       opID,
		Platform: platform,
	}
	return post, op
}

func hashtags(bag polis.FieldBag, caption *string) []string {
	if tags, ok := bag.Strings(polis.FieldHashtags); ok {
		return tags
	}
	if caption != nil {
		return derive.ExtractHashtags(*caption)
	}
	return nil
}

func typeHints(bag polis.FieldBag) derive.TypeHints {
	media, _ := bag.Strings(polis.FieldMediaURLs)
	hint, _ := bag.String(polis.FieldPostHint)
	return derive.TypeHints{
		IsVideo:  bag.Bool(polis.FieldIsVideo),
		PostHint: hint,
		HasMedia: len(media) > 0,
		HasText:  bag.Has(polis.FieldContent),
	}
}

// publishDate normalizes heterogeneous date strings to RFC 3339. Strings
// no parser recognizes are kept verbatim rather than dropped.
func publishDate(bag polis.FieldBag) *string {
	raw, ok := bag.String(polis.FieldPublishDate)
	if !ok || raw == "" {
		return nil
	}
	if ts, err := dateparse.ParseAny(raw); err == nil {
		formatted := ts.Format(time.RFC3339)
		return &formatted
	}
	return &raw
}

func language(bag polis.FieldBag) polis.Language {
	text, _ := bag.String(polis.FieldContent)
	if text == "" {
		text, _ = bag.String(polis.FieldTitle)
	}
	return derive.DetectLanguage(text)
}

func recordURL(bag polis.FieldBag, fallback string) string {
	if u, ok := bag.String(polis.FieldURL); ok && u != "" {
		return u
	}
	return fallback
}
