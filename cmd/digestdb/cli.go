package main

import (
	"context"
	"io"

	"stackdigest"
	"stackdigest/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Articles stackdigest.ArticleService
	Runs     stackdigest.RunService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config string `short:"c" help:"Path to YAML config file" type:"path"`

	Tables TablesCmd `cmd:"" help:"List database tables"`
	Table  TableCmd  `cmd:"" help:"Show a table's columns and sample rows"`
	Runs   RunsCmd   `cmd:"" help:"Show recent run records"`
	Today  TodayCmd  `cmd:"" help:"Show today's digest entries"`
	Search SearchCmd `cmd:"" help:"Search stored articles"`
	Stats  StatsCmd  `cmd:"" help:"Show database statistics"`
}

// TablesCmd is the "tables" subcommand.
type TablesCmd struct{}

// TableCmd is the "table" subcommand.
type TableCmd struct {
	Name string `arg:"" help:"Table name (articles, summaries, execution_logs)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"10" help:"Number of runs to show"`
}

// TodayCmd is the "today" subcommand.
type TodayCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Substring to match against titles and content"`
	Limit int    `short:"n" default:"20" help:"Maximum number of results"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
