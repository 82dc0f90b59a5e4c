package stackdigest

import "context"

// Notifier delivers a rendered digest to its recipient.
type Notifier interface {
	// Notify sends a single HTML-bearing message.
	Notify(ctx context.Context, subject, htmlBody string) error
}
