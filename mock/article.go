package mock

import (
	"context"
	"time"

	"stackdigest"
)

var _ stackdigest.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of stackdigest.ArticleService.
type ArticleService struct {
	UpsertArticleFn   func(ctx context.Context, article *stackdigest.Article) error
	FindUnprocessedFn func(ctx context.Context) ([]*stackdigest.Article, error)
	AttachSummaryFn   func(ctx context.Context, articleID int64, text string) (*stackdigest.Summary, error)
	SummariesForDayFn func(ctx context.Context, day time.Time) ([]*stackdigest.DigestEntry, error)
	FindArticlesFn    func(ctx context.Context, filter stackdigest.ArticleFilter) ([]*stackdigest.Article, error)
	CountsFn          func(ctx context.Context) (int, int, error)
}

func (s *ArticleService) UpsertArticle(ctx context.Context, article *stackdigest.Article) error {
	return s.UpsertArticleFn(ctx, article)
}

func (s *ArticleService) FindUnprocessed(ctx context.Context) ([]*stackdigest.Article, error) {
	return s.FindUnprocessedFn(ctx)
}

func (s *ArticleService) AttachSummary(ctx context.Context, articleID int64, text string) (*stackdigest.Summary, error) {
	return s.AttachSummaryFn(ctx, articleID, text)
}

func (s *ArticleService) SummariesForDay(ctx context.Context, day time.Time) ([]*stackdigest.DigestEntry, error) {
	return s.SummariesForDayFn(ctx, day)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter stackdigest.ArticleFilter) ([]*stackdigest.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) Counts(ctx context.Context) (int, int, error) {
	return s.CountsFn(ctx)
}
