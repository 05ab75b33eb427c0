package gjson

import (
	"html"
	"strings"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/tidwall/gjson"
)

// VariantRedditListing labels the reddit public JSON endpoint response.
const VariantRedditListing = "api"

// Thumbnail placeholders reddit uses instead of real URLs.
var redditThumbnailPlaceholders = map[string]struct{}{
	"self": {}, "default": {}, "nsfw": {}, "spoiler": {},
}

var _ polis.Strategy = (*RedditListing)(nil)

// RedditListing parses the two-element listing array returned by appending
// .json to a reddit post URL. The post lives at the first listing's first
// child; the second element holds comments and is ignored.
type RedditListing struct{}

// NewRedditListing creates the strategy.
func NewRedditListing() *RedditListing {
	return &RedditListing{}
}

// Name identifies the strategy in logs.
func (s *RedditListing) Name() string { return "reddit_listing" }

// Parse extracts post fields from the listing blob.
func (s *RedditListing) Parse(doc polis.RawDocument) (polis.FieldBag, error) {
	if doc.Variant != VariantRedditListing {
		return polis.FieldBag{}, nil
	}

	post := gjson.Get(doc.Body, "0.data.children.0.data")
	if !post.Exists() {
		return polis.FieldBag{}, nil
	}

	bag := polis.FieldBag{}
	setString(bag, polis.FieldTitle, post.Get("title"))
	setString(bag, polis.FieldContent, post.Get("selftext"))
	setString(bag, polis.FieldAuthor, post.Get("author"))
	setInt(bag, polis.FieldLikes, post.Get("ups"))
	setInt(bag, polis.FieldComments, post.Get("num_comments"))
	setInt(bag, polis.FieldShares, post.Get("num_crossposts"))

	if created := post.Get("created_utc"); created.Exists() {
		ts := time.Unix(int64(created.Float()), 0).UTC()
		bag.Set(polis.FieldPublishDate, ts.Format(time.RFC3339))
	}
	if permalink := post.Get("permalink"); permalink.Exists() {
		bag.Set(polis.FieldURL, "https://reddit.com"+permalink.String())
	}
	if isVideo := post.Get("is_video"); isVideo.Exists() {
		bag.Set(polis.FieldIsVideo, isVideo.Bool())
	}
	setString(bag, polis.FieldPostHint, post.Get("post_hint"))

	if tags := flairHashtags(post); len(tags) > 0 {
		bag.Set(polis.FieldHashtags, tags)
	}
	if urls := mediaURLs(post); len(urls) > 0 {
		bag.Set(polis.FieldMediaURLs, urls)
	}

	return bag, nil
}

// flairHashtags converts link and author flair into hashtag form.
func flairHashtags(post gjson.Result) []string {
	var tags []string
	link := post.Get("link_flair_text").String()
	if link != "" {
		tags = append(tags, "#"+flairTag(link))
	}
	author := post.Get("author_flair_text").String()
	if author != "" && author != link {
		tags = append(tags, "#"+flairTag(author))
	}
	return tags
}

func flairTag(flair string) string {
	tag := strings.ReplaceAll(flair, " ", "_")
	return strings.ReplaceAll(tag, "-", "_")
}

// mediaURLs harvests media addresses from link posts, preview images,
// reddit-hosted video, and galleries, deduplicated in document order.
func mediaURLs(post gjson.Result) []string {
	seen := make(map[string]struct{})
	var urls []string
	add := func(u string) {
		if u == "" {
			return
		}
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	if !post.Get("is_self").Bool() {
		add(post.Get("url").String())
	}

	post.Get("preview.images").ForEach(func(_, img gjson.Result) bool {
		add(html.UnescapeString(img.Get("source.url").String()))
		return true
	})

	if post.Get("is_video").Bool() {
		add(post.Get("media.reddit_video.fallback_url").String())
	}

	meta := post.Get("media_metadata")
	post.Get("gallery_data.items").ForEach(func(_, item gjson.Result) bool {
		id := item.Get("media_id").String()
		if id != "" {
			add(html.UnescapeString(meta.Get(id + ".s.u").String()))
		}
		return true
	})

	if thumb := post.Get("thumbnail").String(); thumb != "" {
		if _, placeholder := redditThumbnailPlaceholders[thumb]; !placeholder {
			add(thumb)
		}
	}

	return urls
}
