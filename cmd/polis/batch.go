package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/csv"
	"github.com/kennycode-git/polis-metadata-tool/pipeline"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(c.File)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %q", c.File)
	}

	batch := &pipeline.Batch{Pipeline: deps.Pipeline, Logger: deps.Logger}
	posts, ops := batch.Run(deps.Ctx, urls)

	if err := writeCSV(c.Posts, posts, nil); err != nil {
		return err
	}
	if err := writeCSV(c.OPs, nil, ops); err != nil {
		return err
	}

	var failed int
	for _, p := range posts {
		if p.Status == polis.StatusFailed {
			failed++
		}
	}
	fmt.Fprintf(deps.Stdout, "extracted %d post(s), %d failed\n", len(posts), failed)
	fmt.Fprintf(deps.Stdout, "wrote %s and %s\n", c.Posts, c.OPs)
	return nil
}

// readURLs loads one URL per line, skipping blanks and # comments.
func readURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read url file: %w", err)
	}
	return urls, nil
}

// writeCSV writes whichever record slice is non-nil to path.
func writeCSV(path string, posts []polis.PostRecord, ops []polis.OPRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if posts != nil {
		err = csv.WritePosts(f, posts)
	} else {
		err = csv.WriteOPs(f, ops)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
