// Command digestdb is a read-only viewer for the article store. It exists
// for poking at what the unattended runs have been collecting without
// opening a sqlite shell.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"stackdigest"
	"stackdigest/config"
	"stackdigest/sqlite"
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
	DB *sqlite.DB

	ArticleService stackdigest.ArticleService
	RunService     stackdigest.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("digestdb"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'digestdb --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STACKDIGEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Runs = m.RunService

	return kongCtx.Run(deps)
}
