package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stackdigest/sqlite"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(":memory:")
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()

		var articleCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&articleCount)
		require.NoError(t, err)

		var summaryCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM summaries").Scan(&summaryCount)
		require.NoError(t, err)

		var logCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM execution_logs").Scan(&logCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})
}
