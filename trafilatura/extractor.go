// Package trafilatura extracts readable article text using the
// go-trafilatura content extraction library. It trades the precision of
// the Substack-specific selectors for coverage of arbitrary page layouts.
package trafilatura

import (
	"regexp"
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"stackdigest"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Ensure Extractor implements stackdigest.Extractor at compile time.
var _ stackdigest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the readable text. Pages where
// trafilatura finds no main content yield a not-found coded error so
// callers can skip them without treating the page as a failure.
func (e *Extractor) Extract(rawHTML string) (*stackdigest.ExtractResult, error) {
	if rawHTML == "" {
		return nil, stackdigest.Errorf(stackdigest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "no content found: %v", err)
	}

	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(result.ContentText, " "))
	if text == "" {
		return nil, stackdigest.Errorf(stackdigest.ENOTFOUND, "no content found")
	}

	return &stackdigest.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}
