package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdigest"
	"stackdigest/sqlite"

	main "stackdigest/cmd/stackdigest"
)

func TestMain_Run(t *testing.T) {
	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Setenv("STACKDIGEST_DB", filepath.Join(t.TempDir(), "test.db"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), nil, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Setenv("STACKDIGEST_DB", filepath.Join(t.TempDir(), "test.db"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

		require.NoError(t, err)
	})

	t.Run("runs command with empty log", func(t *testing.T) {
		t.Setenv("STACKDIGEST_DB", filepath.Join(t.TempDir(), "test.db"))

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"runs"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No runs recorded yet")
	})

	t.Run("runs command lists recorded runs", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		t.Setenv("STACKDIGEST_DB", dbPath)

		// Seed a run record through the storage layer
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		runs := sqlite.NewRunService(db)
		require.NoError(t, runs.RecordRun(context.Background(), &stackdigest.RunRecord{
			RunDate:        time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
			Scraped:        3,
			Summarized:     2,
			Notified:       true,
			ElapsedSeconds: 42.5,
		}))
		require.NoError(t, db.Close())

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"runs"}, &stdout, &stderr)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "2025-06-15")
		assert.Contains(t, out, "scraped=3")
		assert.Contains(t, out, "summarized=2")
		assert.Contains(t, out, "sent=true")
	})

	t.Run("run command requires api key", func(t *testing.T) {
		t.Setenv("STACKDIGEST_DB", filepath.Join(t.TempDir(), "test.db"))
		t.Setenv("OPENROUTER_API_KEY", "")

		m := main.NewMain()
		var stdout, stderr bytes.Buffer
		err := m.Run(context.Background(), []string{"run"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
	})
}
