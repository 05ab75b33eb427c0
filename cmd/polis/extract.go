package main

import (
	"encoding/json"
	"fmt"
	"io"

	polis "github.com/kennycode-git/polis-metadata-tool"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	post, op := deps.Pipeline.Run(deps.Ctx, c.URL)

	if c.JSON {
		pair := struct {
			Post polis.PostRecord `json:"post"`
			OP   polis.OPRecord   `json:"op"`
		}{post, op}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pair); err != nil {
			return err
		}
	} else {
		printPost(deps.Stdout, post, op)
	}

	if post.Status == polis.StatusFailed {
		return fmt.Errorf("extraction failed: %s", post.ErrorMessage)
	}
	return nil
}

func printPost(w io.Writer, post polis.PostRecord, op polis.OPRecord) {
	fmt.Fprintf(w, "status:    %s\n", post.Status)
	fmt.Fprintf(w, "platform:  %s\n", post.Platform)
	fmt.Fprintf(w, "type:      %s\n", post.Type)
	fmt.Fprintf(w, "url:       %s\n", post.URL)
	fmt.Fprintf(w, "title:     %s\n", orDash(post.Title))
	fmt.Fprintf(w, "caption:   %s\n", orDash(post.Caption))
	fmt.Fprintf(w, "author:    %s\n", orDash(op.Username))
	fmt.Fprintf(w, "published: %s\n", orDash(post.PublishDate))
	fmt.Fprintf(w, "views:     %s\n", orDashInt(post.Views))
	fmt.Fprintf(w, "likes:     %s\n", orDashInt(post.Likes))
	fmt.Fprintf(w, "comments:  %s\n", orDashInt(post.Comments))
	fmt.Fprintf(w, "shares:    %s\n", orDashInt(post.Shares))
	if post.EngagementRate != nil {
		fmt.Fprintf(w, "engagement: %.2f%%\n", *post.EngagementRate)
	}
	if post.ErrorMessage != "" {
		fmt.Fprintf(w, "error:     %s\n", post.ErrorMessage)
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func orDashInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}
