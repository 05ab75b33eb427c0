package cascade

import (
	"regexp"
	"strings"
)

// Window is the span, in bytes, searched forward and backward from each
// identifier occurrence when disambiguating co-mingled data blocks.
const Window = 10000

// opaqueIDMaxLen bounds the short alphanumeric tokens (share-link slugs)
// that documents do not index by.
const opaqueIDMaxLen = 15

// OpaqueIdentifier reports whether id is a token the raw document does not
// index by, such as a pfbid-style opaque handle or a short share-link slug.
// Targeted search is skipped for opaque identifiers.
func OpaqueIdentifier(id string) bool {
	if strings.HasPrefix(id, "pfbid") {
		return true
	}
	return !isDigits(id) && len(id) <= opaqueIDMaxLen
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Occurrences returns the byte offsets of every verbatim quoted occurrence
// of targetID in the document body, in document order.
func Occurrences(body, targetID string) []int {
	needle := `"` + targetID + `"`
	var offsets []int
	from := 0
	for {
		i := strings.Index(body[from:], needle)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, from+i)
		from += i + 1
	}
}

// FindNear searches a bounded window around each occurrence of targetID for
// the first submatch of re. At each occurrence the forward window is tried
// before the backward window; occurrences are tried in document order. The
// boolean reports whether any window matched.
func FindNear(body, targetID string, re *regexp.Regexp) (string, bool) {
	for _, pos := range Occurrences(body, targetID) {
		end := min(len(body), pos+Window)
		if m := re.FindStringSubmatch(body[pos:end]); m != nil {
			return m[1], true
		}

		start := max(0, pos-Window)
		if m := re.FindStringSubmatch(body[start:pos]); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Find applies the targeted window search when a usable identifier is
// available and falls back to an untargeted global search over the whole
// document otherwise. The global search is lowest confidence: it may
// attribute the wrong block when several are present.
func Find(body, targetID string, re *regexp.Regexp) (string, bool) {
	if targetID != "" && !OpaqueIdentifier(targetID) {
		if v, ok := FindNear(body, targetID, re); ok {
			return v, true
		}
	}
	if m := re.FindStringSubmatch(body); m != nil {
		return m[1], true
	}
	return "", false
}
