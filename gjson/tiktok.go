package gjson

import (
	"strings"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/derive"
	"github.com/tidwall/gjson"
)

// Variant labels for the tiktok document kinds: two delegate scraper
// outputs plus the oEmbed HTTP fallback.
const (
	VariantTikTokPost    = "post"
	VariantTikTokProfile = "profile"
	VariantTikTokOEmbed  = "oembed"
)

var _ polis.Strategy = (*TikTokPost)(nil)

// TikTokPost parses the raw JSON emitted by the standalone post scraper.
type TikTokPost struct{}

// NewTikTokPost creates the strategy.
func NewTikTokPost() *TikTokPost {
	return &TikTokPost{}
}

// Name identifies the strategy in logs.
func (s *TikTokPost) Name() string { return "tiktok_post" }

// Parse extracts post fields from the delegate output.
func (s *TikTokPost) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantTikTokPost {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	body := doc.Body
	setString(bag, polis.FieldContent, gjson.Get(body, "content"))
	setString(bag, polis.FieldTitle, gjson.Get(body, "title"))
	setString(bag, polis.FieldAuthor, gjson.Get(body, "author_id"))
	setString(bag, polis.FieldPublishDate, gjson.Get(body, "publish_date"))
	setInt(bag, polis.FieldViews, gjson.Get(body, "views"))
	setInt(bag, polis.FieldLikes, gjson.Get(body, "likes"))
	setInt(bag, polis.FieldComments, gjson.Get(body, "comments"))
	setInt(bag, polis.FieldShares, gjson.Get(body, "shares"))
	setInt(bag, polis.FieldSaves, gjson.Get(body, "saves"))

	if tags := stringList(gjson.Get(body, "hashtags")); len(tags) > 0 {
		bag.Set(polis.FieldHashtags, tags)
	}

	return bag, nil
}

var _ polis.Strategy = (*TikTokProfile)(nil)

// TikTokProfile parses the raw JSON emitted by the standalone profile
// scraper into the OP fields.
type TikTokProfile struct{}

// NewTikTokProfile creates the strategy.
func NewTikTokProfile() *TikTokProfile {
	return &TikTokProfile{}
}

// Name identifies the strategy in logs.
func (s *TikTokProfile) Name() string { return "tiktok_profile" }

// Parse extracts OP fields from the delegate output.
func (s *TikTokProfile) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantTikTokProfile {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	body := doc.Body
	setString(bag, polis.FieldAuthorBio, gjson.Get(body, "bio"))
	setInt(bag, polis.FieldAuthorFollowers, gjson.Get(body, "followers"))
	setInt(bag, polis.FieldAuthorFollowing, gjson.Get(body, "following"))
	setInt(bag, polis.FieldAuthorPostCount, gjson.Get(body, "video_count"))
	return bag, nil
}

var _ polis.Strategy = (*TikTokOEmbed)(nil)

// TikTokOEmbed parses the public oEmbed response. It carries no engagement
// metrics; it exists so a blocked delegate still yields caption and author.
type TikTokOEmbed struct{}

// NewTikTokOEmbed creates the strategy.
func NewTikTokOEmbed() *TikTokOEmbed {
	return &TikTokOEmbed{}
}

// Name identifies the strategy in logs.
func (s *TikTokOEmbed) Name() string { return "tiktok_oembed" }

// Parse extracts basic fields from the oEmbed blob.
func (s *TikTokOEmbed) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantTikTokOEmbed {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	body := doc.Body
	title := gjson.Get(body, "title").String()
	if title != "" {
		bag.Set(polis.FieldTitle, title)
		bag.Set(polis.FieldContent, title)
		if tags := derive.ExtractHashtags(title); len(tags) > 0 {
			bag.Set(polis.FieldHashtags, tags)
		}
	}

	// The author_url path segment after "@" is the stable username; the
	// display name is only a fallback.
	if authorURL := gjson.Get(body, "author_url").String(); strings.Contains(authorURL, "@") {
		parts := strings.Split(authorURL, "@")
		bag.Set(polis.FieldAuthor, strings.TrimSuffix(parts[len(parts)-1], "/"))
	} else {
		setString(bag, polis.FieldAuthor, gjson.Get(body, "author_name"))
	}

	return bag, nil
}

func stringList(v gjson.Result) []string {
	var out []string
	v.ForEach(func(_, item gjson.Result) bool {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
