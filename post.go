package polis

import "time"

// Platform identifies the source a post was extracted from.
type Platform string

// Platform constants. The set is closed; extractor dispatch is a lookup
// table keyed by these values.
const (
	PlatformTikTok   Platform = "tiktok"
	PlatformYouTube  Platform = "youtube"
	PlatformFacebook Platform = "facebook"
	PlatformReddit   Platform = "reddit"
	PlatformNews     Platform = "news"
	PlatformUnknown  Platform = "unknown"
)

// PostType classifies the content of a post.
type PostType string

// PostType constants.
const (
	PostTypeVideo   PostType = "video"
	PostTypeImage   PostType = "image"
	PostTypeText    PostType = "text"
	PostTypeArticle PostType = "article"
	PostTypeLink    PostType = "link"
	PostTypeUnknown PostType = "unknown"
)

// Language is the coarse language classification of a post's text.
type Language string

// Language constants. Empty string means detection failed or no text.
const (
	LanguageEnglish Language = "en"
	LanguageOther   Language = "other"
)

// ExtractionStatus is the terminal state of an extraction run.
type ExtractionStatus string

// ExtractionStatus constants.
const (
	StatusSuccess ExtractionStatus = "success"
	StatusPartial ExtractionStatus = "partial"
	StatusFailed  ExtractionStatus = "failed"
)

// PostRecord is one logical content item produced by an extraction run.
// Nullable metrics are pointers so "unknown" stays distinct from zero; the
// engagement logic depends on that distinction.
type PostRecord struct {
	ID             string           `json:"id"`
	Title          *string          `json:"title"`
	Caption        *string          `json:"caption"`
	Hashtags       []string         `json:"hashtags"`
	Type           PostType         `json:"type"`
	PublishDate    *string          `json:"publishDate"`
	ExtractedAt    time.Time        `json:"extractedAt"`
	Platform       Platform         `json:"platform"`
	Views          *int             `json:"views"`
	Likes          *int             `json:"likes"`
	Shares         *int             `json:"shares"`
	Comments       *int             `json:"comments"`
	Saves          *int             `json:"saves"`
	Reposts        *int             `json:"reposts"`
	EngagementRate *float64         `json:"engagementRate"`
	URL            string           `json:"url"`
	Language       Language         `json:"language"`
	OPUsername     *string          `json:"opUsername"`
	OPID           string           `json:"opId"`
	Status         ExtractionStatus `json:"extractionStatus"`
	ErrorMessage   string           `json:"errorMessage"`
}

// OPRecord is the attributed author/channel of a Post.
type OPRecord struct {
	Username  *string  `json:"username"`
	ID        string   `json:"id"`
	Bio       *string  `json:"bio"`
	Followers *int     `json:"followers"`
	Following *int     `json:"following"`
	PostCount *int     `json:"postCount"`
	Platform  Platform `json:"platform"`
}

// Validate returns an error if the record pair violates its invariants.
func (p *PostRecord) Validate(op *OPRecord) error {
	if p.ID == "" {
		return Errorf(EINVALID, "post ID required")
	}
	if op != nil && p.OPID != op.ID {
		return Errorf(EINVALID, "post OP_ID %q does not match OP record ID %q", p.OPID, op.ID)
	}
	if p.Status == StatusFailed && p.ErrorMessage == "" {
		return Errorf(EINVALID, "failed extraction requires an error message")
	}
	if p.EngagementRate != nil && (p.Views == nil || *p.Views <= 0) {
		return Errorf(EINVALID, "engagement rate requires a positive view count")
	}
	return nil
}
