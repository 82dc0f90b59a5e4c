// Package rod fetches rendered HTML through headless Chrome. Substack pages
// build most of their content client-side, so a plain HTTP GET returns a
// near-empty shell; driving a real browser is the only reliable way to see
// the listing and the article bodies.
package rod

import (
	"context"
	"time"

	"stackdigest"
)

// DefaultSettleDuration is how long the network must stay quiet after load
// before a page is considered fully rendered.
const DefaultSettleDuration = 300 * time.Millisecond

// Ensure Fetcher implements stackdigest.Fetcher at compile time.
var _ stackdigest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Pages are considered ready once the load event has fired and the network
// has been idle for the settle duration, which lets client-side rendered
// listings finish populating. Fetcher is safe for concurrent use by multiple
// goroutines.
type Fetcher struct {
	manager     *BrowserManager
	settle      time.Duration
	managerOpts []ManagerOption
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithSettleDuration sets the network-idle window waited after page load.
// Defaults to DefaultSettleDuration.
func WithSettleDuration(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithManagerMaxPages sets the page budget of the underlying browser before
// it is recycled.
func WithManagerMaxPages(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, WithMaxPages(n))
	}
}

func (f *Fetcher) applyDefaults() {
	if f.settle == 0 {
		f.settle = DefaultSettleDuration
	}
}

// NewFetcher launches a managed headless Chrome browser. Close must be
// called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}
	f.applyDefaults()

	manager, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to the URL, waits for the load event plus a quiet network
// window, and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.NewPage(ctx)
	if err != nil {
		return "", err
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", err
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Let in-flight XHR and late script-driven inserts finish before
	// reading the DOM.
	wait := page.WaitRequestIdle(f.settle, nil, nil, nil)
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
