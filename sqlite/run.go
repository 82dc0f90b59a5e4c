package sqlite

import (
	"context"
	"database/sql"
	"time"

	"stackdigest"
)

// Compile-time interface verification.
var _ stackdigest.RunService = (*RunService)(nil)

// RunService implements stackdigest.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// RecordRun appends a run record to the execution log.
func (s *RunService) RecordRun(ctx context.Context, rec *stackdigest.RunRecord) error {
	rec.CreatedAt = s.db.Now().UTC()
	if rec.RunDate.IsZero() {
		rec.RunDate = rec.CreatedAt
	}

	var errMsg any
	if rec.Error != "" {
		errMsg = rec.Error
	}

	return s.db.QueryRowContext(ctx, `
		INSERT INTO execution_logs
			(run_date, articles_scraped, articles_summarized, email_sent,
			 execution_time_seconds, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, rec.RunDate.UTC().Format("2006-01-02"), rec.Scraped, rec.Summarized,
		rec.Notified, rec.ElapsedSeconds, errMsg,
		rec.CreatedAt.Format(time.RFC3339)).Scan(&rec.ID)
}

// RecentRuns returns the most recent run records, newest first.
func (s *RunService) RecentRuns(ctx context.Context, limit int) ([]*stackdigest.RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_date, articles_scraped, articles_summarized, email_sent,
		       execution_time_seconds, error_message, created_at
		FROM execution_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*stackdigest.RunRecord
	for rows.Next() {
		var rec stackdigest.RunRecord
		var runDate, createdAt string
		var errMsg sql.NullString

		if err := rows.Scan(&rec.ID, &runDate, &rec.Scraped, &rec.Summarized,
			&rec.Notified, &rec.ElapsedSeconds, &errMsg, &createdAt); err != nil {
			return nil, err
		}

		rec.RunDate, err = time.Parse("2006-01-02", runDate)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}
		rec.Error = errMsg.String

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}
