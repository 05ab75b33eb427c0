package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/config"
	"github.com/kennycode-git/polis-metadata-tool/execfetch"
	"github.com/kennycode-git/polis-metadata-tool/pipeline"
	"github.com/kennycode-git/polis-metadata-tool/platform"
	"github.com/kennycode-git/polis-metadata-tool/readability"
	"github.com/kennycode-git/polis-metadata-tool/resty"
	"github.com/kennycode-git/polis-metadata-tool/retry"
	polislog "github.com/kennycode-git/polis-metadata-tool/slog"
	"github.com/kennycode-git/polis-metadata-tool/trafilatura"
	"github.com/lmittmann/tint"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config used to wire fetchers. Loaded in Run when nil.
	Config *config.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("polis"),
		kong.Description("Social media post metadata extraction tool"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'polis --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Config == nil {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		m.Config = cfg
	}
	deps.Config = m.Config

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(tint.NewHandler(stderr, &tint.Options{Level: level}))

	registry := buildRegistry(m.Config)
	deps.Registry = registry
	deps.Pipeline = &pipeline.Pipeline{
		Registry: polislog.NewLoggingRegistry(registry, deps.Logger),
		Limiter:  newPacer(m.Config.RateLimitDelay),
		Logger:   deps.Logger,
	}

	return kongCtx.Run(deps)
}

// newPacer builds the politeness limiter with its initial token already
// spent, so the first run waits the full delay like every later one.
func newPacer(delay time.Duration) *rate.Limiter {
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.Allow()
	return limiter
}

// buildRegistry wires every platform extractor from the configuration.
func buildRegistry(cfg *config.Config) polis.ExtractorRegistry {
	delays := retry.Backoff(cfg.MaxRetries)
	httpFetcher := func(variant string, opts ...resty.Option) polis.Fetcher {
		base := []resty.Option{
			resty.WithVariant(variant),
			resty.WithUserAgent(cfg.UserAgent),
			resty.WithTimeout(cfg.PerCallTimeout),
		}
		return retry.NewFetcher(resty.NewFetcher(append(base, opts...)...), retry.WithDelays(delays))
	}

	tiktok := platform.NewTikTok(
		execfetch.NewFetcher(filepath.Join(cfg.ScriptDir, "tiktok_post_scraper"),
			execfetch.WithVariant("post"),
			execfetch.WithTimeout(cfg.DelegateTimeout)),
		execfetch.NewFetcher(filepath.Join(cfg.ScriptDir, "tiktok_profile_scraper"),
			execfetch.WithVariant("profile"),
			execfetch.WithTimeout(cfg.DelegateTimeout)),
		httpFetcher("oembed"),
		cfg.RateLimitDelay,
	)

	youtube := platform.NewYouTube(
		httpFetcher("video"),
		httpFetcher("channel"),
		cfg.YouTubeAPIKey,
	)

	facebook := platform.NewFacebook(
		httpFetcher("desktop", resty.WithCookieBlob(cfg.CredentialBlob)),
		httpFetcher("mobile", resty.WithCookieBlob(cfg.CredentialBlob)),
		httpFetcher("mbasic", resty.WithCookieBlob(cfg.CredentialBlob)),
	)

	expander := resty.NewFetcher(
		resty.WithUserAgent(cfg.UserAgent),
		resty.WithTimeout(cfg.PerCallTimeout),
	)
	reddit := platform.NewReddit(httpFetcher("api"), expander)

	news := platform.NewNews(
		httpFetcher("html"),
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
	)

	return platform.NewRegistry(tiktok, youtube, facebook, reddit, news)
}
