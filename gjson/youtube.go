package gjson

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/derive"
	"github.com/tidwall/gjson"
)

// Variant labels for the two Data API responses consumed per extraction.
const (
	VariantYouTubeVideo   = "video"
	VariantYouTubeChannel = "channel"
)

var _ polis.Strategy = (*YouTubeVideo)(nil)

// YouTubeVideo parses a Data API videos.list response. Counter values
// arrive as JSON strings and are coerced to integers.
type YouTubeVideo struct{}

// NewYouTubeVideo creates the strategy.
func NewYouTubeVideo() *YouTubeVideo {
	return &YouTubeVideo{}
}

// Name identifies the strategy in logs.
func (s *YouTubeVideo) Name() string { return "youtube_video" }

// Parse extracts post fields from the video resource.
func (s *YouTubeVideo) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantYouTubeVideo {
		return polis.FieldBag{}, nil
	}

	video := gjson.Get(doc.Body, "items.0")
	if !video.Exists() {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	snippet := video.Get("snippet")
	setString(bag, polis.FieldTitle, snippet.Get("title"))
	setString(bag, polis.FieldContent, snippet.Get("description"))
	setString(bag, polis.FieldAuthor, snippet.Get("channelTitle"))
	setString(bag, polis.FieldPublishDate, snippet.Get("publishedAt"))

	stats := video.Get("statistics")
	setInt(bag, polis.FieldViews, stats.Get("viewCount"))
	setInt(bag, polis.FieldLikes, stats.Get("likeCount"))
	setInt(bag, polis.FieldComments, stats.Get("commentCount"))

	if tags := videoHashtags(snippet); len(tags) > 0 {
		bag.Set(polis.FieldHashtags, tags)
	}

	return bag, nil
}

// videoHashtags merges the video's tag list with hashtags found in its
// description, capped like free-text harvesting.
func videoHashtags(snippet gjson.Result) []string {
	seen := make(map[string]struct{})
	var tags []string
	add := func(tag string) {
		if tag == "#" || tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		if len(tags) < derive.MaxHashtags {
			tags = append(tags, tag)
		}
	}

	snippet.Get("tags").ForEach(func(_, tag gjson.Result) bool {
		add("#" + compactTag(tag.String()))
		return true
	})
	for _, tag := range derive.ExtractHashtags(snippet.Get("description").String()) {
		add(tag)
	}
	return tags
}

func compactTag(tag string) string {
	out := make([]rune, 0, len(tag))
	for _, r := range tag {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}

var _ polis.Strategy = (*YouTubeChannel)(nil)

// YouTubeChannel parses a Data API channels.list response into the OP
// fields. YouTube exposes no subscription count, so author_following stays
// unknown.
type YouTubeChannel struct{}

// NewYouTubeChannel creates the strategy.
func NewYouTubeChannel() *YouTubeChannel {
	return &YouTubeChannel{}
}

// Name identifies the strategy in logs.
func (s *YouTubeChannel) Name() string { return "youtube_channel" }

// Parse extracts OP fields from the channel resource.
func (s *YouTubeChannel) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantYouTubeChannel {
		return polis.FieldBag{}, nil
	}

	channel := gjson.Get(doc.Body, "items.0")
	if !channel.Exists() {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	setString(bag, polis.FieldAuthor, channel.Get("snippet.title"))
	setString(bag, polis.FieldAuthorBio, channel.Get("snippet.description"))
	setInt(bag, polis.FieldAuthorFollowers, channel.Get("statistics.subscriberCount"))
	setInt(bag, polis.FieldAuthorPostCount, channel.Get("statistics.videoCount"))
	return bag, nil
}
