package stackdigest

import (
	"context"
	"time"
)

// Article represents a scraped article page. Identity is the URL, kept
// case- and fragment-sensitive exactly as received.
type Article struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
	Processed   bool      `json:"processed"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Content == "" {
		return Errorf(EINVALID, "article content required")
	}
	return nil
}

// ArticleService manages persisted articles and their summaries.
// The store is the exclusive owner of persisted state; one instance
// serves a single pipeline run at a time (single-writer semantics).
type ArticleService interface {
	// UpsertArticle inserts or replaces an article keyed by URL.
	// Re-ingesting a known URL replaces title, content and capture time
	// and resets the processed flag to false. The article's ID, hash and
	// capture time are populated on return.
	UpsertArticle(ctx context.Context, article *Article) error

	// FindUnprocessed returns the summarization backlog: all articles
	// with processed=false, most recently captured first.
	FindUnprocessed(ctx context.Context) ([]*Article, error)

	// AttachSummary writes a summary row for the article and flips its
	// processed flag in a single transaction. Partial application is
	// never observable. Returns ENOTFOUND if the article does not exist.
	AttachSummary(ctx context.Context, articleID int64, text string) (*Summary, error)

	// SummariesForDay returns digest entries for summaries whose creation
	// date equals day's calendar date (UTC), newest first.
	SummariesForDay(ctx context.Context, day time.Time) ([]*DigestEntry, error)

	// FindArticles retrieves articles matching the filter, most recently
	// captured first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// Counts returns the total number of stored articles and summaries.
	Counts(ctx context.Context) (articles, summaries int, err error)
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	// Search matches case-insensitively against title or content.
	Search string

	// Processed, when set, filters by processed state.
	Processed *bool

	Limit  int
	Offset int
}
