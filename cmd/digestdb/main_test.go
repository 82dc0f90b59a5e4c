package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/sqlite"

	main "stackdigest/cmd/digestdb"
)

// seedDB creates a database at path with one summarized article and one run.
func seedDB(t *testing.T, path string) {
	t.Helper()

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()

	ctx := context.Background()
	articles := sqlite.NewArticleService(db)

	article := &stackdigest.Article{
		URL:     "https://example.com/deep-learning",
		Title:   "Deep Learning Trends",
		Content: "A long discussion of deep learning trends.",
	}
	require.NoError(t, articles.UpsertArticle(ctx, article))
	_, err := articles.AttachSummary(ctx, article.ID, "Trends, summarized.")
	require.NoError(t, err)

	runs := sqlite.NewRunService(db)
	require.NoError(t, runs.RecordRun(ctx, &stackdigest.RunRecord{
		Scraped:        1,
		Summarized:     1,
		Notified:       false,
		ElapsedSeconds: 12.3,
	}))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestDigestDB(t *testing.T) {
	t.Run("tables lists row counts", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "tables")
		require.NoError(t, err)
		assert.Contains(t, out, "articles")
		assert.Contains(t, out, "summaries")
		assert.Contains(t, out, "execution_logs")
	})

	t.Run("table shows schema and sample rows", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "table", "articles")
		require.NoError(t, err)
		assert.Contains(t, out, "Schema for articles")
		assert.Contains(t, out, "content_hash")
		assert.Contains(t, out, "example.com/deep-learning")
	})

	t.Run("table rejects unknown names", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		_, err := run(t, "table", "sqlite_master")
		require.Error(t, err)
		assert.Equal(t, stackdigest.EINVALID, stackdigest.ErrorCode(err))
	})

	t.Run("runs shows the execution log", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "runs")
		require.NoError(t, err)
		assert.Contains(t, out, "12.3s")
	})

	t.Run("today shows entries created today", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "today")
		require.NoError(t, err)
		assert.Contains(t, out, "Deep Learning Trends")
		assert.Contains(t, out, "Trends, summarized.")
	})

	t.Run("search matches titles", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "search", "deep learning")
		require.NoError(t, err)
		assert.Contains(t, out, "Deep Learning Trends")

		out, err = run(t, "search", "quantum")
		require.NoError(t, err)
		assert.Contains(t, out, "No articles matching")
	})

	t.Run("stats reports counts and backlog", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)
		seedDB(t, dbPath)

		out, err := run(t, "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "articles")
		assert.Contains(t, out, "summaries")
		assert.Contains(t, out, "backlog")
	})
}
