package derive

import "regexp"

// MaxHashtags caps how many hashtags are harvested from free text.
const MaxHashtags = 10

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags returns the hashtags present in text, in document order,
// each in "#tag" form, capped at MaxHashtags. Duplicates are dropped.
func ExtractHashtags(text string) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, m := range hashtagRe.FindAllStringSubmatch(text, -1) {
		tag := "#" + m[1]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
		if len(tags) == MaxHashtags {
			break
		}
	}
	return tags
}
