package mock

import (
	"context"
	"time"

	"stackdigest"
)

var _ stackdigest.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of stackdigest.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, subject, htmlBody string) error
}

func (n *Notifier) Notify(ctx context.Context, subject, htmlBody string) error {
	return n.NotifyFn(ctx, subject, htmlBody)
}

var _ stackdigest.Composer = (*Composer)(nil)

// Composer is a mock implementation of stackdigest.Composer.
type Composer struct {
	ComposeFn func(entries []*stackdigest.DigestEntry, day time.Time) string
}

func (c *Composer) Compose(entries []*stackdigest.DigestEntry, day time.Time) string {
	return c.ComposeFn(entries, day)
}
