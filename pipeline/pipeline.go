// Package pipeline orchestrates an unattended ingestion run: discover
// article links from a search listing, extract and store readable text,
// summarize the stored backlog, and email the day's digest.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"stackdigest"
)

// DefaultMaxArticles caps how many article links a run will take from the
// search listing.
const DefaultMaxArticles = 80

// DefaultConcurrency is the number of article pages fetched in parallel.
const DefaultConcurrency = 10

// Pipeline wires together the stages of an ingestion run. Every field
// except Notifier, Limiter, Logger and Now is required; a nil Notifier
// skips digest delivery, which keeps runs useful on hosts without mail
// credentials.
type Pipeline struct {
	Fetcher    stackdigest.Fetcher
	Links      stackdigest.LinkExtractor
	Extractor  stackdigest.Extractor
	Summarizer stackdigest.Summarizer
	Composer   stackdigest.Composer
	Notifier   stackdigest.Notifier
	Articles   stackdigest.ArticleService
	Runs       stackdigest.RunService

	SearchURL   string
	MaxArticles int
	Concurrency int
	PageTimeout time.Duration

	Limiter *DomainLimiter
	Logger  *slog.Logger

	// Now is the clock used for the run date and the digest window.
	// Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a single run.
type Result struct {
	Scraped    int
	Summarized int
	Notified   bool
	Elapsed    time.Duration
}

// scrapeResult holds the outcome of processing a single article URL.
type scrapeResult struct {
	url   string
	title string
	text  string
	err   error
}

// Run executes one ingestion run. The stages run in order and a stage
// failure aborts the run, but the counters accumulated so far are still
// written to the run log together with the error. A run interrupted by
// context cancellation returns without writing a run record.
//
// Individual articles never abort a run: a page that fails to fetch,
// yields no extractable content, or cannot be summarized is logged and
// skipped, and the next run picks it up again through the backlog.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	begin := p.now()
	res := &Result{}

	runErr := p.run(ctx, res)
	res.Elapsed = p.now().Sub(begin)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := &stackdigest.RunRecord{
		RunDate:        begin,
		Scraped:        res.Scraped,
		Summarized:     res.Summarized,
		Notified:       res.Notified,
		ElapsedSeconds: res.Elapsed.Seconds(),
	}
	if runErr != nil {
		rec.Error = runErr.Error()
	}
	if err := p.Runs.RecordRun(ctx, rec); err != nil {
		p.logger().Error("recording run", "err", err)
	}

	return res, runErr
}

// run executes the stages, converting a panic anywhere in the run into an
// error so the deferred run record in Run still gets written.
func (p *Pipeline) run(ctx context.Context, res *Result) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stackdigest.Errorf(stackdigest.EINTERNAL, "run panicked: %v", r)
		}
	}()

	if err := p.scrape(ctx, res); err != nil {
		return err
	}
	if err := p.summarize(ctx, res); err != nil {
		return err
	}
	return p.notify(ctx, res)
}

// scrape discovers article links from the search listing and stores the
// readable text of each article. Failing to fetch the listing itself is
// fatal; failures on individual articles are logged and skipped.
func (p *Pipeline) scrape(ctx context.Context, res *Result) error {
	searchHTML, err := p.fetchPage(ctx, p.SearchURL)
	if err != nil {
		return fmt.Errorf("fetching search listing: %w", err)
	}

	max := p.MaxArticles
	if max <= 0 {
		max = DefaultMaxArticles
	}
	links, err := p.Links.ExtractLinks(searchHTML, max)
	if err != nil {
		return fmt.Errorf("extracting article links: %w", err)
	}
	if len(links) == 0 {
		p.logger().Info("no article links found", "url", p.SearchURL)
		return nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan scrapeResult, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, link := range links {
			link := link
			g.Go(func() error {
				resultCh <- p.scrapeURL(gctx, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Upserts are serialized here so the store sees one writer.
	for r := range resultCh {
		if r.err != nil {
			if stackdigest.ErrorCode(r.err) == stackdigest.ENOTFOUND {
				p.logger().Info("no extractable content", "url", r.url)
			} else {
				p.logger().Warn("scrape failed", "url", r.url, "err", r.err)
			}
			continue
		}

		article := &stackdigest.Article{
			URL:     r.url,
			Title:   r.title,
			Content: r.text,
		}
		if err := p.Articles.UpsertArticle(ctx, article); err != nil {
			return fmt.Errorf("storing article %s: %w", r.url, err)
		}
		res.Scraped++
	}

	return nil
}

// scrapeURL fetches and extracts a single article page.
func (p *Pipeline) scrapeURL(ctx context.Context, articleURL string) scrapeResult {
	r := scrapeResult{url: articleURL}

	html, err := p.fetchPage(ctx, articleURL)
	if err != nil {
		r.err = err
		return r
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		r.err = err
		return r
	}

	r.title = extracted.Title
	r.text = extracted.Text
	return r
}

// fetchPage applies rate limiting and the per-page timeout around a fetch.
func (p *Pipeline) fetchPage(ctx context.Context, rawURL string) (string, error) {
	if p.Limiter != nil {
		if host := hostOf(rawURL); host != "" {
			if err := p.Limiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
	}

	if p.PageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.PageTimeout)
		defer cancel()
	}

	return p.Fetcher.Fetch(ctx, rawURL)
}

// summarize works through the unprocessed backlog, which includes articles
// left behind by earlier runs. A failed summarization leaves the article
// unprocessed so the next run retries it; a failed store write is fatal.
func (p *Pipeline) summarize(ctx context.Context, res *Result) error {
	articles, err := p.Articles.FindUnprocessed(ctx)
	if err != nil {
		return fmt.Errorf("loading backlog: %w", err)
	}

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return err
		}

		summary, err := p.Summarizer.Summarize(ctx, article.Content)
		if err != nil {
			p.logger().Warn("summarize failed", "url", article.URL, "err", err)
			continue
		}

		if _, err := p.Articles.AttachSummary(ctx, article.ID, summary); err != nil {
			return fmt.Errorf("storing summary for %s: %w", article.URL, err)
		}
		res.Summarized++
	}

	return nil
}

// notify composes and sends the digest of summaries created during the
// run's day. Delivery is skipped when mail is not configured or when the
// day produced no summaries.
func (p *Pipeline) notify(ctx context.Context, res *Result) error {
	if p.Notifier == nil {
		p.logger().Info("email not configured, skipping digest")
		return nil
	}

	day := p.now()
	entries, err := p.Articles.SummariesForDay(ctx, day)
	if err != nil {
		return fmt.Errorf("loading digest entries: %w", err)
	}
	if len(entries) == 0 {
		p.logger().Info("no summaries for today, skipping digest")
		return nil
	}

	subject := fmt.Sprintf("AI Article Summaries - %s", day.Format("2006-01-02"))
	body := p.Composer.Compose(entries, day)

	if err := p.Notifier.Notify(ctx, subject, body); err != nil {
		return fmt.Errorf("sending digest: %w", err)
	}

	res.Notified = true
	return nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// hostOf returns the host portion of rawURL, or "" if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
