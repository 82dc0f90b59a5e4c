package slog

import (
	"context"
	"log/slog"
	"time"

	"stackdigest"
)

// Ensure LoggingNotifier implements stackdigest.Notifier.
var _ stackdigest.Notifier = (*LoggingNotifier)(nil)

// LoggingNotifier wraps a Notifier with debug logging.
type LoggingNotifier struct {
	next   stackdigest.Notifier
	logger *slog.Logger
}

// NewLoggingNotifier creates a new LoggingNotifier.
func NewLoggingNotifier(next stackdigest.Notifier, logger *slog.Logger) *LoggingNotifier {
	return &LoggingNotifier{next: next, logger: logger}
}

// Notify logs the delivery attempt and delegates to the wrapped notifier.
func (n *LoggingNotifier) Notify(ctx context.Context, subject, htmlBody string) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("notify",
			"subject", subject,
			"body_bytes", len(htmlBody),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Notify(ctx, subject, htmlBody)
}
