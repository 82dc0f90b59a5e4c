package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cespare/xxhash/v2"

	"stackdigest"
)

// Compile-time interface verification.
var _ stackdigest.ArticleService = (*ArticleService)(nil)

// ArticleService implements stackdigest.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// UpsertArticle inserts or replaces an article keyed by URL. Re-ingesting
// a known URL replaces title, content, hash and capture time and resets
// the processed flag to false.
func (s *ArticleService) UpsertArticle(ctx context.Context, article *stackdigest.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ScrapedAt = s.db.Now().UTC()
	article.ContentHash = hashContent(article.Content)
	article.Processed = false

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO articles (url, title, content, content_hash, scraped_at, processed)
		VALUES (?, ?, ?, ?, ?, 0)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at,
			processed = 0
		RETURNING id
	`, article.URL, article.Title, article.Content, article.ContentHash,
		article.ScrapedAt.Format(time.RFC3339)).Scan(&article.ID)

	return err
}

// FindUnprocessed returns the summarization backlog, most recently
// captured first.
func (s *ArticleService) FindUnprocessed(ctx context.Context) ([]*stackdigest.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, title, content, content_hash, scraped_at, processed
		FROM articles
		WHERE processed = 0
		ORDER BY scraped_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// AttachSummary writes the summary row and flips the owning article's
// processed flag in one transaction. Either both changes commit or
// neither does.
func (s *ArticleService) AttachSummary(ctx context.Context, articleID int64, text string) (*stackdigest.Summary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	summary := &stackdigest.Summary{
		ArticleID: articleID,
		Text:      text,
		CreatedAt: s.db.Now().UTC(),
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO summaries (article_id, summary, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, summary.ArticleID, summary.Text, summary.CreatedAt.Format(time.RFC3339)).Scan(&summary.ID); err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, "UPDATE articles SET processed = 1 WHERE id = ?", articleID)
	if err != nil {
		return nil, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "article %d not found", articleID)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return summary, nil
}

// SummariesForDay returns digest entries for summaries created on day's
// calendar date (UTC), newest first.
func (s *ArticleService) SummariesForDay(ctx context.Context, day time.Time) ([]*stackdigest.DigestEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.title, a.url, s.summary, s.created_at
		FROM summaries s
		JOIN articles a ON s.article_id = a.id
		WHERE date(s.created_at) = ?
		ORDER BY s.created_at DESC, s.id DESC
	`, day.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*stackdigest.DigestEntry
	for rows.Next() {
		var entry stackdigest.DigestEntry
		var createdAt string

		if err := rows.Scan(&entry.Title, &entry.URL, &entry.Summary, &createdAt); err != nil {
			return nil, err
		}

		entry.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// FindArticles retrieves articles matching the filter, most recently
// captured first. The filtered query is built with squirrel since the
// predicate set varies by caller.
func (s *ArticleService) FindArticles(ctx context.Context, filter stackdigest.ArticleFilter) ([]*stackdigest.Article, error) {
	qb := sq.Select("id", "url", "title", "content", "content_hash", "scraped_at", "processed").
		From("articles").
		OrderBy("scraped_at DESC, id DESC")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		qb = qb.Where(sq.Or{sq.Like{"title": pattern}, sq.Like{"content": pattern}})
	}
	if filter.Processed != nil {
		processed := 0
		if *filter.Processed {
			processed = 1
		}
		qb = qb.Where(sq.Eq{"processed": processed})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

// Counts returns the total number of stored articles and summaries.
func (s *ArticleService) Counts(ctx context.Context) (articles, summaries int, err error) {
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&articles); err != nil {
		return 0, 0, err
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM summaries").Scan(&summaries); err != nil {
		return 0, 0, err
	}
	return articles, summaries, nil
}

// scanArticles reads article rows into domain values.
func scanArticles(rows *sql.Rows) ([]*stackdigest.Article, error) {
	var articles []*stackdigest.Article
	for rows.Next() {
		var article stackdigest.Article
		var scrapedAt string

		if err := rows.Scan(&article.ID, &article.URL, &article.Title, &article.Content,
			&article.ContentHash, &scrapedAt, &article.Processed); err != nil {
			return nil, err
		}

		var err error
		article.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}
