package pipeline

import (
	"context"
	"log/slog"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/bloom"
)

// Batch runs a list of URLs through one Pipeline sequentially, skipping
// duplicates. Sequential execution keeps the politeness pacing meaningful;
// the input order is preserved in the output.
type Batch struct {
	// Pipeline executes each URL. Required.
	Pipeline *Pipeline

	// Dedup filters repeated URLs. Defaults to a fresh deduper per Run.
	Dedup *bloom.Deduper

	// Logger receives batch progress events. Defaults to a discard logger.
	Logger *slog.Logger
}

// Run extracts every distinct URL in urls. Blank entries and duplicates
// are skipped. A cancelled context stops the batch after the current URL;
// records produced so far are returned. The two slices are index-aligned:
// posts[i] and ops[i] form one record pair.
func (b *Batch) Run(ctx context.Context, urls []string) ([]polis.PostRecord, []polis.OPRecord) {
	logger := b.logger()
	dedup := b.Dedup
	if dedup == nil {
		dedup = bloom.NewDeduper(0, 0)
	}

	posts := make([]polis.PostRecord, 0, len(urls))
	ops := make([]polis.OPRecord, 0, len(urls))

	for _, url := range urls {
		if url == "" {
			continue
		}
		if dedup.Seen(url) {
			logger.Debug("skipping duplicate url", "url", url)
			continue
		}
		if ctx.Err() != nil {
			logger.Warn("batch cancelled", "remaining", len(urls)-len(posts))
			break
		}

		post, op := b.Pipeline.Run(ctx, url)
		posts = append(posts, post)
		ops = append(ops, op)
	}

	logger.Info("batch complete", "input", len(urls), "extracted", len(posts))
	return posts, ops
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.New(slog.DiscardHandler)
}
