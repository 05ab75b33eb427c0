package derive

import (
	"regexp"
	"strconv"
	"strings"
)

var compactNumberRe = regexp.MustCompile(`^([\d.]+)\s*([KMB])?$`)

// ParseCompactNumber parses human-formatted counts like "1.4K", "2.3M",
// "987", or "12,345" into integers. Returns false when the string does not
// look like a count.
func ParseCompactNumber(s string) (int, bool) {
	s = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if s == "" {
		return 0, false
	}

	m := compactNumberRe.FindStringSubmatch(s)
	if m == nil {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	}

	base, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "K":
		return int(base * 1_000), true
	case "M":
		return int(base * 1_000_000), true
	case "B":
		return int(base * 1_000_000_000), true
	}
	return int(base), true
}
