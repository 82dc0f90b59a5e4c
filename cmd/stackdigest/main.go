package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"stackdigest"
	"stackdigest/config"
	"stackdigest/fs"
	"stackdigest/goquery"
	"stackdigest/html"
	sdhttp "stackdigest/http"
	"stackdigest/openrouter"
	"stackdigest/pipeline"
	"stackdigest/readability"
	"stackdigest/rod"
	sdslog "stackdigest/slog"
	"stackdigest/smtp"
	"stackdigest/sqlite"
	"stackdigest/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config used by commands. Loaded during Run().
	Config *config.Config

	// SQLite database used by the storage services.
	DB *sqlite.DB

	// Services for end-to-end testing.
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
		kong.Name("stackdigest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'stackdigest --help' to see available commands")
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
	m.Config = cfg
	deps.Config = cfg

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	m.DB = sqlite.NewDB(cfg.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STACKDIGEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cfg.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.Articles = m.ArticleService
	deps.Runs = m.RunService

	if cmd == "run" {
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set OPENROUTER_API_KEY. Get a key at https://openrouter.ai/keys")
			return err
		}

		var fetcher stackdigest.Fetcher
		if cli.Run.Fetcher == "http" {
			fetcher = sdhttp.NewFetcher(sdhttp.WithTimeout(cfg.PageTimeout()))
		} else {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browser
		}
		defer fetcher.Close()

		var extractor stackdigest.Extractor
		switch cli.Run.Extractor {
		case "readability":
			extractor = readability.NewExtractor()
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}

		var summarizer stackdigest.Summarizer = openrouter.NewSummarizer(
			cfg.OpenRouter.APIKey,
			openrouterOptions(cfg)...,
		)
		summarizer = sdslog.NewLoggingSummarizer(summarizer, deps.Logger)

		var notifier stackdigest.Notifier
		switch {
		case cfg.Mail.Configured():
			notifier = sdslog.NewLoggingNotifier(
				smtp.NewNotifier(cfg.Mail.From, cfg.Mail.Password, cfg.Mail.Recipient,
					smtp.WithAddr(cfg.Mail.SMTPAddr)),
				deps.Logger,
			)
		case cli.Run.DigestDir != "":
			notifier = sdslog.NewLoggingNotifier(fs.NewDigestWriter(cli.Run.DigestDir), deps.Logger)
		default:
			deps.Logger.Info("mail credentials not set, digest delivery disabled")
		}

		deps.Pipeline = &pipeline.Pipeline{
			Fetcher:     rod.NewLoggingFetcher(fetcher, deps.Logger),
			Links:       goquery.NewLinkExtractor(),
			Extractor:   extractor,
			Summarizer:  summarizer,
			Composer:    html.NewComposer(),
			Notifier:    notifier,
			Articles:    m.ArticleService,
			Runs:        m.RunService,
			SearchURL:   cfg.SearchURL,
			MaxArticles: cfg.MaxArticles,
			Concurrency: cfg.Concurrency,
			PageTimeout: cfg.PageTimeout(),
			Limiter:     pipeline.NewDomainLimiter(1.0),
			Logger:      deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// openrouterOptions translates config overrides into client options.
func openrouterOptions(cfg *config.Config) []openrouter.Option {
	var opts []openrouter.Option
	if cfg.OpenRouter.Endpoint != "" {
		opts = append(opts, openrouter.WithEndpoint(cfg.OpenRouter.Endpoint))
	}
	if cfg.OpenRouter.Model != "" {
		opts = append(opts, openrouter.WithModel(cfg.OpenRouter.Model))
	}
	return opts
}
