// Package config loads tool configuration from the environment, with
// optional .env file support.
package config

import (
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
)

// Defaults applied when the environment does not override them.
const (
	DefaultRateLimitDelay  = 2 * time.Second
	DefaultPerCallTimeout  = 20 * time.Second
	DefaultDelegateTimeout = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config holds the per-run extraction settings. A Config is immutable once
// loaded; it is passed explicitly into fetchers rather than held as shared
// global state.
type Config struct {
	// RateLimitDelay is the politeness delay applied before the first
	// external call of a run and between dependent calls.
	RateLimitDelay time.Duration

	// PerCallTimeout bounds each network call.
	PerCallTimeout time.Duration

	// DelegateTimeout bounds a delegated subprocess call.
	DelegateTimeout time.Duration

	// MaxRetries bounds fetch retries for transient failures.
	MaxRetries int

	// UserAgent is sent on outbound HTTP requests.
	UserAgent string

	// CredentialBlob is opaque per-platform auth data, e.g. a raw
	// "name=value; name2=value2" cookie string.
	CredentialBlob string

	// YouTubeAPIKey authenticates Data API requests.
	YouTubeAPIKey string

	// ScriptDir locates the standalone delegate scrapers.
	ScriptDir string
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		RateLimitDelay:  DefaultRateLimitDelay,
		PerCallTimeout:  DefaultPerCallTimeout,
		DelegateTimeout: DefaultDelegateTimeout,
		MaxRetries:      DefaultMaxRetries,
		UserAgent:       DefaultUserAgent,
	}
}

// Load reads configuration from a .env file (when present) and the process
// environment. Environment values override file values; defaults fill the
// rest.
func Load() (*Config, error) {
	// Missing .env files are fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("RATE_LIMIT_DELAY"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitDelay = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("PER_CALL_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.PerCallTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	cfg.CredentialBlob = os.Getenv("FB_COOKIE_STRING")
	cfg.YouTubeAPIKey = os.Getenv("YOUTUBE_API_KEY")
	cfg.ScriptDir = os.Getenv("SCRAPER_SCRIPT_DIR")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error when the configuration is unusable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.RateLimitDelay, validation.Min(time.Duration(0))),
		validation.Field(&c.PerCallTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.DelegateTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.MaxRetries, validation.Min(0), validation.Max(10)),
		validation.Field(&c.UserAgent, validation.Required),
	)
}
