package stackdigest

// ExtractResult holds the readable content extracted from an article page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// Text is the article body as a single whitespace-normalized blob.
	// Downstream stages treat it as opaque prose.
	Text string
}

// Extractor extracts readable article text from rendered HTML, stripping
// share bars, comment threads, navigation and other non-article chrome.
type Extractor interface {
	// Extract processes raw HTML and returns the article body.
	// When no content container is present, or every candidate element
	// is excluded, it returns an ENOTFOUND-coded error so callers can
	// distinguish "nothing to store" from a transient extraction bug.
	Extract(html string) (*ExtractResult, error)
}
