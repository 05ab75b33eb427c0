// Package csv exports extraction results as the dual Posts/OPs CSV files.
// Unknown fields export as empty cells, never as zeros, so the CSV keeps
// the null-vs-zero distinction of the record schema.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// PostHeader is the column order of the posts CSV.
var PostHeader = []string{
	"id", "title", "caption", "hashtags", "type", "publish_date",
	"extracted_at", "platform", "views", "likes", "shares", "comments",
	"saves", "reposts", "engagement_rate", "url", "language",
	"op_username", "op_id", "extraction_status", "error_message",
}

// OPHeader is the column order of the original-poster CSV.
var OPHeader = []string{
	"username", "id", "bio", "followers", "following", "post_count",
	"platform",
}

// WritePosts writes the posts CSV, header included, to w.
func WritePosts(w io.Writer, posts []polis.PostRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(PostHeader); err != nil {
		return polis.Errorf(polis.EINTERNAL, "write posts csv header: %v", err)
	}
	for _, p := range posts {
		row := []string{
			p.ID,
			str(p.Title),
			str(p.Caption),
			joinList(p.Hashtags),
			string(p.Type),
			str(p.PublishDate),
			p.ExtractedAt.Format(time.RFC3339),
			string(p.Platform),
			num(p.Views),
			num(p.Likes),
			num(p.Shares),
			num(p.Comments),
			num(p.Saves),
			num(p.Reposts),
			rate(p.EngagementRate),
			p.URL,
			string(p.Language),
			str(p.OPUsername),
			p.OPID,
			string(p.Status),
			p.ErrorMessage,
		}
		if err := cw.Write(row); err != nil {
			return polis.Errorf(polis.EINTERNAL, "write posts csv row: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return polis.Errorf(polis.EINTERNAL, "flush posts csv: %v", err)
	}
	return nil
}

// WriteOPs writes the original-poster CSV, header included, to w.
func WriteOPs(w io.Writer, ops []polis.OPRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OPHeader); err != nil {
		return polis.Errorf(polis.EINTERNAL, "write ops csv header: %v", err)
	}
	for _, op := range ops {
		row := []string{
			str(op.Username),
			op.ID,
			str(op.Bio),
			num(op.Followers),
			num(op.Following),
			num(op.PostCount),
			string(op.Platform),
		}
		if err := cw.Write(row); err != nil {
			return polis.Errorf(polis.EINTERNAL, "write ops csv row: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return polis.Errorf(polis.EINTERNAL, "flush ops csv: %v", err)
	}
	return nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func rate(r *float64) string {
	if r == nil {
		return ""
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
