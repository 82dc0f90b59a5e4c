// Package slog provides logging decorators for pipeline dependencies.
package slog

import (
	"context"
	"log/slog"
	"time"

	"stackdigest"
)

// Ensure LoggingSummarizer implements stackdigest.Summarizer.
var _ stackdigest.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   stackdigest.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next stackdigest.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs input and output sizes and delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"input_bytes", len(text),
			"output_bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text)
}
