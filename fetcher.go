package stackdigest

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content; the search listing and article pages both require it.
type Fetcher interface {
	// Fetch navigates to the URL, waits for rendering and network
	// activity to settle, and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
