package platform

import (
	"context"
	"net/url"
	"regexp"

	polis "github.com/kennycode-git/polis-metadata-tool"
	polisgjson "github.com/kennycode-git/polis-metadata-tool/gjson"
	"github.com/tidwall/gjson"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// Video id patterns across the URL shapes youtube serves: short links,
// shorts, embeds, legacy /v/, watch query params, live streams, and
// attribution links.
var youtubeVideoIDRes = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`[?&]v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`attribution_link.*?[?&]v=([a-zA-Z0-9_-]{11})`),
}

var _ polis.Extractor = (*YouTube)(nil)

// YouTube extracts post and channel metadata from the Data API. Two
// documents are fetched per run: the video resource and its channel
// resource for the OP fields.
type YouTube struct {
	video   polis.Fetcher
	channel polis.Fetcher
	apiKey  string
}

// NewYouTube creates the extractor. video and channel fetch the respective
// Data API list endpoints.
func NewYouTube(video, channel polis.Fetcher, apiKey string) *YouTube {
	return &YouTube{video: video, channel: channel, apiKey: apiKey}
}

// Platform returns the platform tag.
func (y *YouTube) Platform() polis.Platform { return polis.PlatformYouTube }

// ValidateURL reports whether a video id can be extracted from url.
func (y *YouTube) ValidateURL(url string) bool {
	return YouTubeVideoID(url) != ""
}

// TargetIdentifier returns empty: Data API responses carry exactly one
// video resource, so there is nothing to disambiguate.
func (y *YouTube) TargetIdentifier(string) string { return "" }

// Fetch retrieves the video resource, then the owning channel resource.
func (y *YouTube) Fetch(ctx context.Context, rawurl string) ([]polis.RawDocument, error) {
	if y.apiKey == "" {
		return nil, polis.Errorf(polis.EACCESS, "youtube extraction requires an API key")
	}

	videoID := YouTubeVideoID(rawurl)
	if videoID == "" {
		return nil, polis.Errorf(polis.EINVALID, "no video id in %q", rawurl)
	}

	video, err := y.video.Fetch(ctx, youtubeAPIBase+"/videos?part=snippet%2Cstatistics&id="+url.QueryEscape(videoID)+"&key="+url.QueryEscape(y.apiKey))
	if err != nil {
		return nil, err
	}
	if !gjson.Get(video.Body, "items.0").Exists() {
		return nil, polis.Errorf(polis.ENOTFOUND, "video %s not found; it may be deleted or private", videoID)
	}

	// The channel document precedes the video document: it carries the OP
	// fields, which the cascade's early exit must not skip.
	var docs []polis.RawDocument
	if channelID := gjson.Get(video.Body, "items.0.snippet.channelId").String(); channelID != "" {
		channel, err := y.channel.Fetch(ctx, youtubeAPIBase+"/channels?part=snippet%2Cstatistics&id="+url.QueryEscape(channelID)+"&key="+url.QueryEscape(y.apiKey))
		if err == nil {
			docs = append(docs, channel)
		}
	}

	return append(docs, video), nil
}

// Strategies returns the parsing strategies in priority order.
func (y *YouTube) Strategies() []polis.Strategy {
	return []polis.Strategy{
		polisgjson.NewYouTubeVideo(),
		polisgjson.NewYouTubeChannel(),
	}
}

// YouTubeVideoID extracts the 11-character video id from any supported URL
// shape. Returns empty when none matches.
func YouTubeVideoID(url string) string {
	for _, re := range youtubeVideoIDRes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
