package main

import (
	"context"
	"io"
	"log/slog"

	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/kennycode-git/polis-metadata-tool/config"
	"github.com/kennycode-git/polis-metadata-tool/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *config.Config
	Logger   *slog.Logger
	Registry polis.ExtractorRegistry
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract   ExtractCmd   `cmd:"" help:"Extract metadata for a single post URL"`
	Batch     BatchCmd     `cmd:"" help:"Extract metadata for every URL in a file and write CSVs"`
	Platforms PlatformsCmd `cmd:"" help:"List supported platforms"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Post URL"`
	JSON bool   `short:"j" help:"Print the record pair as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File  string `arg:"" help:"File with one post URL per line"`
	Posts string `default:"posts.csv" help:"Posts CSV output path"`
	OPs   string `name:"ops" default:"ops.csv" help:"Original-poster CSV output path"`
}

// PlatformsCmd is the "platforms" subcommand.
type PlatformsCmd struct{}
