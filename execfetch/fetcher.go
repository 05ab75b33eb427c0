// Package execfetch provides a subprocess-delegated implementation of
// polis.Fetcher. It spawns an external scraper program, passes the target
// as the final argument, and treats the program's stdout as a JSON raw
// document. Timeouts and failures map onto the delegate error class.
package execfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"time"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/tidwall/gjson"
)

// DefaultTimeout bounds one delegate invocation.
const DefaultTimeout = 30 * time.Second

// Ensure Fetcher implements polis.Fetcher at compile time.
var _ polis.Fetcher = (*Fetcher)(nil)

// Fetcher runs an external scraper process per fetch.
type Fetcher struct {
	program string
	args    []string
	variant string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithArgs sets fixed arguments placed before the target argument.
func WithArgs(args ...string) Option {
	return func(f *Fetcher) { f.args = args }
}

// WithVariant labels the documents this fetcher produces. Defaults to
// "delegate".
func WithVariant(label string) Option {
	return func(f *Fetcher) { f.variant = label }
}

// WithTimeout bounds each invocation. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// NewFetcher creates a delegate fetcher for the given program.
func NewFetcher(program string, opts ...Option) *Fetcher {
	f := &Fetcher{
		program: program,
		variant: "delegate",
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch invokes the delegate with target as its final argument and returns
// its stdout as a raw document. The target is typically a URL but may be
// any token the delegate accepts, such as a username.
func (f *Fetcher) Fetch(ctx context.Context, target string) (polis.RawDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	args := make([]string, 0, len(f.args)+1)
	args = append(args, f.args...)
	args = append(args, target)

	cmd := exec.CommandContext(ctx, f.program, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return polis.RawDocument{}, polis.Errorf(polis.EDELEGATE, "delegate %s timed out after %s", f.program, f.timeout)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return polis.RawDocument{}, polis.Errorf(polis.EDELEGATE, "delegate %s failed: %s", f.program, detail)
	}

	out := stdout.String()
	if !json.Valid([]byte(out)) {
		return polis.RawDocument{}, polis.Errorf(polis.EDELEGATE, "delegate %s produced invalid JSON", f.program)
	}
	if msg := gjson.Get(out, "error"); msg.Exists() {
		return polis.RawDocument{}, polis.Errorf(polis.EDELEGATE, "delegate %s reported: %s", f.program, msg.String())
	}

	return polis.RawDocument{
		Variant: f.variant,
		URL:     target,
		Body:    out,
	}, nil
}
