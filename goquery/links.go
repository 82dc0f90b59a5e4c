package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"stackdigest"
	"stackdigest/bloom"
)

// DefaultLinkSelector targets anchors inside search-result post containers.
// The class names are site-specific and expected to change; override with
// WithLinkSelector when they do.
const DefaultLinkSelector = `div.reader2-post-container a[href^="https://"]`

// Bloom filter sizing for per-call link deduplication.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// Ensure LinkExtractor implements stackdigest.LinkExtractor at compile time.
var _ stackdigest.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor pulls candidate article URLs out of a rendered
// search-listing page.
type LinkExtractor struct {
	linkSelector string
}

// LinkOption configures a LinkExtractor.
type LinkOption func(*LinkExtractor)

// WithLinkSelector overrides the anchor selector.
func WithLinkSelector(selector string) LinkOption {
	return func(e *LinkExtractor) {
		e.linkSelector = selector
	}
}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor(opts ...LinkOption) *LinkExtractor {
	e := &LinkExtractor{linkSelector: DefaultLinkSelector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractLinks parses HTML and returns up to max absolute article URLs in
// document order. Duplicates are dropped via an approximate seen-filter;
// URLs are kept exactly as received (no fragment or case rewriting, since
// article identity is the URL as published).
func (e *LinkExtractor) ExtractLinks(html string, max int) ([]string, error) {
	if max <= 0 {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "max must be positive")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := bloom.NewSeenFilter(seenExpectedURLs, seenFalsePositiveRate)
	var urls []string

	doc.Find(e.linkSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists {
			return true
		}
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "https://") && !strings.HasPrefix(href, "http://") {
			return true
		}
		if seen.Seen(href) {
			return true
		}
		urls = append(urls, href)
		return len(urls) < max
	})

	return urls, nil
}
