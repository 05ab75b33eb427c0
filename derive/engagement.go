package derive

import "math"

// Missing marks which engagement inputs were unknown, for diagnostic
// display. It is computed unconditionally, including when no rate can be
// calculated.
type Missing struct {
	Views    bool
	Likes    bool
	Comments bool
	Shares   bool
}

// EngagementRate computes 100 * (likes + comments + shares) / views,
// rounded to two decimals.
//
// The rate is nil when views is nil or zero, and when likes, comments, and
// shares are all nil (no engagement signal whatsoever, which is distinct
// from all-zero). Individually nil engagement inputs are otherwise treated
// as zero.
func EngagementRate(views, likes, comments, shares *int) (*float64, Missing) {
	missing := Missing{
		Views:    views == nil,
		Likes:    likes == nil,
		Comments: comments == nil,
		Shares:   shares == nil,
	}

	if views == nil || *views == 0 {
		return nil, missing
	}
	if likes == nil && comments == nil && shares == nil {
		return nil, missing
	}

	engagements := zeroIfNil(likes) + zeroIfNil(comments) + zeroIfNil(shares)
	rate := math.Round(float64(engagements)/float64(*views)*100*100) / 100
	return &rate, missing
}

func zeroIfNil(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
