package main

import (
	"context"
	"io"
	"log/slog"

	"stackdigest"
	"stackdigest/config"
	"stackdigest/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   *config.Config
	Logger   *slog.Logger
	Articles stackdigest.ArticleService
	Runs     stackdigest.RunService
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Path to YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Run  RunCmd  `cmd:"" help:"Execute one ingestion run: scrape, summarize, send digest"`
	Runs RunsCmd `cmd:"" help:"Show recent run records"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Extractor string `default:"substack" enum:"substack,readability,trafilatura" help:"Content extraction strategy (substack, readability, trafilatura)"`
	Fetcher   string `default:"browser" enum:"browser,http" help:"Page fetch strategy (browser executes JavaScript, http does not)"`
	DigestDir string `help:"Write the digest to an HTML file in this directory when mail is not configured" type:"path"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"10" help:"Number of runs to show"`
}
