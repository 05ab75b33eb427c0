package derive

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
)

// TypeHints carries the structured signals a platform exposes about the
// nature of a post.
type TypeHints struct {
	// IsVideo is an explicit video flag (e.g. reddit's is_video).
	IsVideo bool

	// PostHint is a platform-supplied type hint such as "image" or "link".
	PostHint string

	// HasMedia reports whether the post carries media URLs.
	HasMedia bool

	// HasText reports whether the post carries body text.
	HasText bool
}

// DetectPostType classifies a post by platform. Inherently-video platforms
// always yield video, long-form platforms always yield article; platforms
// exposing structured hints walk a fixed decision chain ending in link as
// the residual default; platforms without reliable hints yield unknown.
func DetectPostType(platform polis.Platform, hints TypeHints) polis.PostType {
	switch platform {
	case polis.PlatformTikTok, polis.PlatformYouTube:
		return polis.PostTypeVideo
	case polis.PlatformNews:
		return polis.PostTypeArticle
	case polis.PlatformReddit:
		return detectFromHints(hints)
	default:
		return polis.PostTypeUnknown
	}
}

func detectFromHints(hints TypeHints) polis.PostType {
	if hints.IsVideo {
		return polis.PostTypeVideo
	}
	switch hints.PostHint {
	case "image":
		return polis.PostTypeImage
	case "link":
		return polis.PostTypeLink
	}
	if hints.HasMedia && !hints.HasText {
		return polis.PostTypeImage
	}
	if hints.HasText {
		return polis.PostTypeText
	}
	return polis.PostTypeLink
}
