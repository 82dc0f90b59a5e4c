package stackdigest

// LinkExtractor pulls candidate article URLs out of a rendered
// search-listing page. The result is deduplicated, preserves document
// order, contains absolute http(s) URLs only, and is capped at max.
type LinkExtractor interface {
	ExtractLinks(html string, max int) ([]string, error)
}
